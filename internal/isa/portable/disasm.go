// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package portable

import (
	"encoding/binary"
	"fmt"

	"github.com/dspemu/extjit/dsp"
	"github.com/dspemu/extjit/internal/gen"
	"github.com/dspemu/extjit/internal/gen/reg"
	"github.com/pkg/errors"
)

// Insn is a disassembled instruction.
type Insn struct {
	Addr int
	Len  int
	Text string
}

// Disassemble text into one Insn per instruction.
func Disassemble(text []byte) (list []Insn, err error) {
	for pc := 0; pc < len(text); {
		op := opcode(text[pc])
		if !op.valid() {
			err = errors.Errorf("invalid opcode 0x%02x at 0x%x", byte(op), pc)
			return
		}

		size := op.size()
		if pc+size > len(text) {
			err = errors.Errorf("truncated instruction at 0x%x", pc)
			return
		}

		list = append(list, Insn{pc, size, format(op, text[pc+1:pc+size], pc+size)})
		pc += size
	}
	return
}

func format(op opcode, a []byte, next int) string {
	name := insns[op].name

	switch insns[op].layout {
	case layoutR:
		return fmt.Sprintf("%-8s %s", name, reg.R(a[0]))

	case layoutRR:
		return fmt.Sprintf("%-8s %s, %s", name, reg.R(a[0]), reg.R(a[1]))

	case layoutRIndex:
		return fmt.Sprintf("%-8s %s, $%s", name, reg.R(a[0]), dsp.Reg(a[1]))

	case layoutIndex:
		return fmt.Sprintf("%-8s $%s", name, dsp.Reg(a[0]))

	case layoutIndexR:
		return fmt.Sprintf("%-8s $%s, %s", name, dsp.Reg(a[0]), reg.R(a[1]))

	case layoutIndexImm16:
		return fmt.Sprintf("%-8s $%s, 0x%04x", name, dsp.Reg(a[0]), binary.LittleEndian.Uint16(a[1:]))

	case layoutRImm8:
		return fmt.Sprintf("%-8s %s, %d", name, reg.R(a[0]), a[1])

	case layoutRImm32:
		return fmt.Sprintf("%-8s %s, 0x%x", name, reg.R(a[0]), binary.LittleEndian.Uint32(a[1:]))

	case layoutRel32:
		return fmt.Sprintf("%-8s 0x%x", name, next+int(int32(binary.LittleEndian.Uint32(a))))

	case layoutHookImm16:
		return fmt.Sprintf("%-8s %s, 0x%04x", name, gen.Hook(a[0]), binary.LittleEndian.Uint16(a[1:]))

	default:
		return name
	}
}
