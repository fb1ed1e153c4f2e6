// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package amd64 generates x86-64 machine code for extended ops.
//
// The DSP register file is an array of 16-bit words at RegRegisters.
// Operations which need more than a few instructions are implemented by
// run-time routines, called through the table at RegRoutines.
package amd64

import (
	"github.com/dspemu/extjit/dsp"
	"github.com/dspemu/extjit/internal/gen"
	"github.com/dspemu/extjit/internal/gen/condition"
	"github.com/dspemu/extjit/internal/gen/reg"
	"github.com/dspemu/extjit/internal/isa/amd64/in"
	"github.com/dspemu/extjit/internal/pan"
	"github.com/pkg/errors"
)

type MacroAssembler struct{}

func (MacroAssembler) ReadReg(p *gen.Prog, r reg.R, index dsp.Reg, saturate bool) {
	if saturate && index.Saturates() {
		callRoutineWithIndex(p, RoutineReadSaturated, uint8(index))
		asm.Move(p, r, RegResult)
		return
	}

	in.MOVZX16.RegMemDisp(&p.Text, in.Size32, r, in.BaseRegisters, regDisp(uint8(index)))
}

func (MacroAssembler) WriteReg(p *gen.Prog, index dsp.Reg, r reg.R) {
	in.MOV16mr.RegMemDisp(&p.Text, r, in.BaseRegisters, regDisp(uint8(index)))
}

func (MacroAssembler) WriteRegImm(p *gen.Prog, index dsp.Reg, value uint16) {
	in.MOV16i.MemDispImm(&p.Text, in.BaseRegisters, regDisp(uint8(index)), value)
}

func (MacroAssembler) IncrementAddr(p *gen.Prog, ar dsp.Reg) {
	callRoutineWithIndex(p, RoutineIncrement, uint8(ar))
}

func (MacroAssembler) DecrementAddr(p *gen.Prog, ar dsp.Reg) {
	callRoutineWithIndex(p, RoutineDecrement, uint8(ar))
}

func (MacroAssembler) IncreaseAddr(p *gen.Prog, ar dsp.Reg) {
	callRoutineWithIndex(p, RoutineIncrease, uint8(ar))
}

func (MacroAssembler) Move(p *gen.Prog, target, source reg.R) {
	if target != source {
		in.MOV.RegReg(&p.Text, in.Size32, target, source)
	}
}

func (MacroAssembler) MoveImm(p *gen.Prog, target reg.R, value uint32) {
	in.MOVi.RegImm32(&p.Text, target, value)
}

func (MacroAssembler) ZeroExtend16(p *gen.Prog, r reg.R) {
	in.MOVZX16.RegReg(&p.Text, in.Size32, r, r)
}

func (MacroAssembler) SignExtend16(p *gen.Prog, r reg.R) {
	in.MOVSX16.RegReg(&p.Text, in.Size32, r, r)
}

func (MacroAssembler) ShiftLeft(p *gen.Prog, r reg.R, count uint8) {
	in.SHLi.RegImm8(&p.Text, in.Size32, r, count)
}

func (MacroAssembler) ShiftRight(p *gen.Prog, r reg.R, count uint8) {
	in.SHRi.RegImm8(&p.Text, in.Size32, r, count)
}

func (MacroAssembler) Or(p *gen.Prog, target, source reg.R) {
	in.OR.RegReg(&p.Text, in.Size32, target, source)
}

func (MacroAssembler) Xor(p *gen.Prog, target, source reg.R) {
	in.XOR.RegReg(&p.Text, in.Size32, target, source)
}

func (MacroAssembler) TestImm(p *gen.Prog, r reg.R, mask uint32) {
	in.TESTi.RegImm32(&p.Text, in.Size32, r, mask)
}

func (MacroAssembler) PushRegs(p *gen.Prog, regs []reg.R) {
	for _, r := range regs {
		in.PUSHo.Reg(&p.Text, r)
	}
}

func (MacroAssembler) PopRegs(p *gen.Prog, regs []reg.R) {
	for i := len(regs) - 1; i >= 0; i-- {
		in.POPo.Reg(&p.Text, regs[i])
	}
}

// CallHook calls an interpreter entry point.  Hooks may clobber all
// caller-saved registers.
func (MacroAssembler) CallHook(p *gen.Prog, hook gen.Hook, word uint16) {
	in.MOVi.RegImm32(&p.Text, RegHookArg, uint32(word))
	callRoutine(p, RoutineHooks+Routine(hook))
}

func (MacroAssembler) BranchIfStub(p *gen.Prog, cond condition.C) int32 {
	switch cond {
	case condition.Zero:
		return in.JEcd.Stub32(&p.Text)

	case condition.NonZero:
		return in.JNEcd.Stub32(&p.Text)

	default:
		pan.Panic(errors.Errorf("unsupported branch condition: %d", cond))
		return 0
	}
}

func (MacroAssembler) JumpStub(p *gen.Prog) int32 {
	return in.JMPcd.Stub32(&p.Text)
}

var asm MacroAssembler
