// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package portable

import (
	"github.com/dspemu/extjit/dsp"
	"github.com/dspemu/extjit/internal/gen"
	"github.com/dspemu/extjit/internal/gen/condition"
	"github.com/dspemu/extjit/internal/gen/reg"
)

// MacroAssembler emits portable bytecode.
type MacroAssembler struct{}

func put(p *gen.Prog, op opcode, operands ...byte) {
	b := p.Text.Extend(1 + len(operands))
	b[0] = byte(op)
	copy(b[1:], operands)
}

func (MacroAssembler) ReadReg(p *gen.Prog, r reg.R, index dsp.Reg, saturate bool) {
	op := opReadReg
	if saturate && index.Saturates() {
		op = opReadSat
	}
	put(p, op, byte(r), byte(index))
}

func (MacroAssembler) WriteReg(p *gen.Prog, index dsp.Reg, r reg.R) {
	put(p, opWriteReg, byte(index), byte(r))
}

func (MacroAssembler) WriteRegImm(p *gen.Prog, index dsp.Reg, value uint16) {
	put(p, opWriteImm, byte(index))
	p.Text.PutUint16(value)
}

func (MacroAssembler) IncrementAddr(p *gen.Prog, ar dsp.Reg) {
	put(p, opIncrement, byte(ar))
}

func (MacroAssembler) DecrementAddr(p *gen.Prog, ar dsp.Reg) {
	put(p, opDecrement, byte(ar))
}

func (MacroAssembler) IncreaseAddr(p *gen.Prog, ar dsp.Reg) {
	put(p, opIncrease, byte(ar))
}

func (MacroAssembler) Load(p *gen.Prog, addr reg.R) {
	put(p, opLoad, byte(addr))
}

func (MacroAssembler) Store(p *gen.Prog, addr, value reg.R) {
	put(p, opStore, byte(addr), byte(value))
}

func (MacroAssembler) Move(p *gen.Prog, target, source reg.R) {
	if target != source {
		put(p, opMove, byte(target), byte(source))
	}
}

func (MacroAssembler) MoveImm(p *gen.Prog, target reg.R, value uint32) {
	put(p, opMoveImm, byte(target))
	p.Text.PutUint32(value)
}

func (MacroAssembler) ZeroExtend16(p *gen.Prog, r reg.R) {
	put(p, opZeroExt16, byte(r))
}

func (MacroAssembler) SignExtend16(p *gen.Prog, r reg.R) {
	put(p, opSignExt16, byte(r))
}

func (MacroAssembler) ShiftLeft(p *gen.Prog, r reg.R, count uint8) {
	put(p, opShl, byte(r), count)
}

func (MacroAssembler) ShiftRight(p *gen.Prog, r reg.R, count uint8) {
	put(p, opShr, byte(r), count)
}

func (MacroAssembler) Or(p *gen.Prog, target, source reg.R) {
	put(p, opOr, byte(target), byte(source))
}

func (MacroAssembler) Xor(p *gen.Prog, target, source reg.R) {
	put(p, opXor, byte(target), byte(source))
}

func (MacroAssembler) TestImm(p *gen.Prog, r reg.R, mask uint32) {
	put(p, opTest, byte(r))
	p.Text.PutUint32(mask)
}

func (MacroAssembler) PushRegs(p *gen.Prog, regs []reg.R) {
	for _, r := range regs {
		put(p, opPush, byte(r))
	}
}

func (MacroAssembler) PopRegs(p *gen.Prog, regs []reg.R) {
	for i := len(regs) - 1; i >= 0; i-- {
		put(p, opPop, byte(regs[i]))
	}
}

func (MacroAssembler) CallHook(p *gen.Prog, hook gen.Hook, word uint16) {
	put(p, opCall, byte(hook))
	p.Text.PutUint16(word)
}

// BranchIfStub emits a conditional branch with a placeholder displacement.
func (MacroAssembler) BranchIfStub(p *gen.Prog, cond condition.C) int32 {
	op := opJz
	if cond == condition.NonZero {
		op = opJnz
	}
	put(p, op)
	p.Text.PutUint32(0)
	return p.Text.Addr
}

func (MacroAssembler) JumpStub(p *gen.Prog) int32 {
	put(p, opJmp)
	p.Text.PutUint32(0)
	return p.Text.Addr
}
