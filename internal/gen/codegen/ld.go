// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"github.com/dspemu/extjit/dsp"
	"github.com/dspemu/extjit/internal/gen"
	"github.com/dspemu/extjit/internal/gen/condition"
	"github.com/dspemu/extjit/internal/gen/debug"
	"github.com/dspemu/extjit/internal/gen/reg"
)

// 11dr mnss
//
// The first word is loaded via the pointer selected by ss into the primary
// destination.  The second word is loaded via ar3, unless the pointer and ar3
// address the same memory page: then the first pointer is used for both.
//
// When ss is 3, the pointer is ar0 or ar1 (selected by d) and both words go
// to the halves of auxiliary register r.
func genDualLoad(c *Coder, in *Insn, ext uint8) {
	d := (ext >> 5) & 1
	r := (ext >> 4) & 1

	var ptr, primary, secondary dsp.Reg

	if ext&3 != 3 {
		ptr = dsp.AddrReg(uint16(ext))
		primary = dsp.AXL0 + dsp.Reg(d<<1)
		secondary = dsp.AXL1 + dsp.Reg(r<<1)
	} else {
		ptr = dsp.AddrReg(uint16(d))
		primary = dsp.AXH0 + dsp.Reg(r)
		secondary = dsp.AXL0 + dsp.Reg(r)
	}

	stageFromMem(c, in, primary, ptr)

	testSamePage(c, ptr, dsp.AR3)

	var same, other Writeback

	gen.Diamond(&c.Prog, c.ISA, condition.Zero,
		func() {
			same = in.WB
			stageSecondaryFromMem(c, &same, secondary, ptr)
		},
		func() {
			other = in.WB
			stageSecondaryFromMem(c, &other, secondary, dsp.AR3)
		},
	)

	in.WB = joinWriteback(same, other)

	advance(c, ptr, ext&0x04 != 0)
	advance(c, dsp.AR3, ext&0x08 != 0)
}

// testSamePage sets condition.Zero if two addressing registers point to the
// same memory page.
func testSamePage(c *Coder, a, b dsp.Reg) {
	if debug.Enabled {
		debug.Printf("same page test: %s, %s", a, b)
	}

	tmp := c.Prog.Regs.Alloc()

	c.ISA.ReadReg(&c.Prog, reg.Scratch, a, false)
	c.ISA.ReadReg(&c.Prog, tmp, b, false)
	c.ISA.Xor(&c.Prog, reg.Scratch, tmp)

	c.Prog.Regs.Free(tmp)

	c.ISA.TestImm(&c.Prog, reg.Scratch, uint32(dsp.PageMask))
}
