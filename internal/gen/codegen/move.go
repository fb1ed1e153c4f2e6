// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"github.com/dspemu/extjit/dsp"
)

// 0001 ddss
func genMove(c *Coder, in *Insn, ext uint8) {
	dst := dsp.AXL0 + dsp.Reg((ext>>2)&3)
	src := dsp.ACL0 + dsp.Reg(ext&3)

	stageFromReg(c, in, dst, src)
}

// 001s s0dd (s), 001s s1dd (sn)
func genStore(c *Coder, ext uint8) {
	ar := dsp.AddrReg(uint16(ext))
	src := dsp.ACL0 + dsp.Reg((ext>>3)&3)

	store(c, ar, src)
	advance(c, ar, ext&0x04 != 0)
}

// 01dd d0ss (l), 01dd d1ss (ln)
func genLoad(c *Coder, in *Insn, ext uint8) {
	ar := dsp.AddrReg(uint16(ext))
	dst := dsp.AXL0 + dsp.Reg((ext>>3)&7)

	stageFromMem(c, in, dst, ar)
	if dst.Saturates() {
		captureStatus(c)
	}

	advance(c, ar, ext&0x04 != 0)
}

// store a register (saturated if it is an accumulator mid-word) to the
// address held by an addressing register.
func store(c *Coder, ar, src dsp.Reg) {
	value := c.Prog.Regs.Alloc()
	c.ISA.ReadReg(&c.Prog, value, src, true)

	addr := c.Prog.Regs.Alloc()
	c.ISA.ReadReg(&c.Prog, addr, ar, false)

	c.ISA.Store(&c.Prog, addr, value)

	c.Prog.Regs.Free(addr)
	c.Prog.Regs.Free(value)
}
