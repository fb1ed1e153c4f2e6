// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"github.com/dspemu/extjit/dsp"
)

// 0000 01rr
func genDecrement(c *Coder, ext uint8) {
	c.ISA.DecrementAddr(&c.Prog, dsp.AddrReg(uint16(ext)))
}

// 0000 10rr
func genIncrement(c *Coder, ext uint8) {
	c.ISA.IncrementAddr(&c.Prog, dsp.AddrReg(uint16(ext)))
}

// 0000 11rr
func genIncrease(c *Coder, ext uint8) {
	c.ISA.IncreaseAddr(&c.Prog, dsp.AddrReg(uint16(ext)))
}

// advance an addressing register after a memory access, either by one or by
// the paired indexing register.
func advance(c *Coder, ar dsp.Reg, index bool) {
	if index {
		c.ISA.IncreaseAddr(&c.Prog, ar)
	} else {
		c.ISA.IncrementAddr(&c.Prog, ar)
	}
}
