// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"fmt"

	"github.com/dspemu/extjit/dsp"
	"github.com/dspemu/extjit/internal/gen"
	"github.com/dspemu/extjit/internal/gen/condition"
	"github.com/dspemu/extjit/internal/gen/debug"
	"github.com/dspemu/extjit/internal/gen/reg"
	"github.com/dspemu/extjit/internal/pan"
)

// stageFromReg reads a register (saturated if it is an accumulator mid-word)
// into the low half of the stage register.
func stageFromReg(c *Coder, in *Insn, dst, src dsp.Reg) {
	c.ISA.ReadReg(&c.Prog, reg.Stage, src, true)
	in.setPrimary(dst)
}

// stageFromMem loads a word into the low half of the stage register.  The
// high half is cleared.
func stageFromMem(c *Coder, in *Insn, dst, ar dsp.Reg) {
	loadVia(c, ar)
	c.ISA.Move(&c.Prog, reg.Stage, reg.Result)
	in.setPrimary(dst)
}

// stageSecondaryFromMem loads a word into the high half of the stage
// register.
func stageSecondaryFromMem(c *Coder, wb *Writeback, dst, ar dsp.Reg) {
	loadSecondary(c, ar)
	wb.setSecondary(dst)
}

// loadSecondary emits the load without touching the compilation context.
func loadSecondary(c *Coder, ar dsp.Reg) {
	loadVia(c, ar)
	c.ISA.ShiftLeft(&c.Prog, reg.Result, SlotHighShift)
	c.ISA.Or(&c.Prog, reg.Stage, reg.Result)
}

// loadVia loads the word addressed by an addressing register into
// reg.Result.
func loadVia(c *Coder, ar dsp.Reg) {
	addr := c.Prog.Regs.Alloc()
	c.ISA.ReadReg(&c.Prog, addr, ar, false)
	c.ISA.Load(&c.Prog, addr)
	c.Prog.Regs.Free(addr)
}

// captureStatus copies the status register into the high half of the stage
// register, for deciding about 40-bit sign extension at flush time.
func captureStatus(c *Coder) {
	c.ISA.ReadReg(&c.Prog, reg.Scratch, dsp.SR, false)
	c.ISA.ShiftLeft(&c.Prog, reg.Scratch, SlotHighShift)
	c.ISA.Or(&c.Prog, reg.Stage, reg.Scratch)
}

// joinWriteback merges the contexts of two diamond arms.
func joinWriteback(a, b Writeback) Writeback {
	if a != b {
		pan.Panic(fmt.Errorf("diamond arms staged different write-backs: %v, %v", a, b))
	}
	return a
}

func genFlush(c *Coder, in *Insn) {
	wb := in.WB

	if debug.Enabled && !wb.Empty() {
		debug.Printf("flush: %s, %s", wb.Primary, wb.Secondary)
	}

	if wb.Primary != dsp.None {
		c.ISA.WriteReg(&c.Prog, wb.Primary, reg.Stage)

		if wb.Primary.Saturates() && wb.Secondary == dsp.None {
			n := wb.Primary.Acc()

			c.ISA.TestImm(&c.Prog, reg.Stage, SlotMode40)
			gen.IfThen(&c.Prog, c.ISA, condition.NonZero, func() {
				c.ISA.Move(&c.Prog, reg.Scratch, reg.Stage)
				c.ISA.SignExtend16(&c.Prog, reg.Scratch)
				c.ISA.ShiftRight(&c.Prog, reg.Scratch, SlotHighShift)
				c.ISA.WriteReg(&c.Prog, dsp.AccHigh(n), reg.Scratch)
				c.ISA.WriteRegImm(&c.Prog, dsp.AccLow(n), 0)
			})
		}
	}
	in.WB.Primary = dsp.None

	if wb.Secondary != dsp.None {
		c.ISA.Move(&c.Prog, reg.Scratch, reg.Stage)
		c.ISA.ShiftRight(&c.Prog, reg.Scratch, SlotHighShift)
		c.ISA.WriteReg(&c.Prog, wb.Secondary, reg.Scratch)
	}
	in.WB.Secondary = dsp.None
}
