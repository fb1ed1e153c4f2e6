// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opcode

import (
	"fmt"

	"github.com/dspemu/extjit/dsp"
)

// Format an extended-op byte in assembler syntax.
func Format(ext uint8) string {
	op := Decode(ext)

	switch op.Family() {
	case FamilyNop:
		return op.String()

	case FamilyAddr:
		return fmt.Sprintf("%s %s", op, dsp.AddrReg(uint16(ext)))

	case FamilyMove:
		return fmt.Sprintf("%s %s, %s", op, dsp.AXL0+dsp.Reg(ext>>2&3), dsp.ACL0+dsp.Reg(ext&3))

	case FamilyStore:
		return fmt.Sprintf("%s @%s, %s", op, dsp.AddrReg(uint16(ext)), dsp.ACL0+dsp.Reg(ext>>3&3))

	case FamilyLoad:
		return fmt.Sprintf("%s %s, @%s", op, dsp.AXL0+dsp.Reg(ext>>3&7), dsp.AddrReg(uint16(ext)))

	case FamilyLoadStore:
		return fmt.Sprintf("%s %s, %s", op, dsp.AXL0+dsp.Reg(ext>>4&3), dsp.ACM0+dsp.Reg(ext&1))

	default:
		d, r := dsp.Reg(ext>>5&1), dsp.Reg(ext>>4&1)
		if ext&3 == 3 {
			return fmt.Sprintf("%s %s, %s, @%s", op, dsp.AXH0+r, dsp.AXL0+r, dsp.AR0+d)
		}
		return fmt.Sprintf("%s %s, %s, @%s", op, dsp.AXL0+2*d, dsp.AXL1+2*r, dsp.AddrReg(uint16(ext)))
	}
}
