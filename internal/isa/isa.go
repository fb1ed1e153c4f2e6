// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package isa declares the contract between the extended-op code generator
// and a host instruction set backend.
//
// Generated code runs with the DSP register file and a routine table
// reachable through host registers (see reglayout).  Operations which are
// implemented by calling a run-time routine (saturating reads, addressing
// register updates, memory access) may clobber reg.Result; all other host
// registers survive them.
package isa

import (
	"github.com/dspemu/extjit/dsp"
	"github.com/dspemu/extjit/internal/gen"
	"github.com/dspemu/extjit/internal/gen/reg"
)

// RegisterFile accesses DSP registers.
type RegisterFile interface {
	// ReadReg zero-extends a DSP register into r.  If saturate is set and
	// index names an accumulator mid-word, the value is clamped according to
	// the 40-bit mode of the status register.
	ReadReg(p *gen.Prog, r reg.R, index dsp.Reg, saturate bool)

	// WriteReg stores the low 16 bits of r.
	WriteReg(p *gen.Prog, index dsp.Reg, r reg.R)

	WriteRegImm(p *gen.Prog, index dsp.Reg, value uint16)
}

// AddrUpdater advances addressing registers in place, wrapping according to
// the paired wrapping register.
type AddrUpdater interface {
	IncrementAddr(p *gen.Prog, ar dsp.Reg)
	DecrementAddr(p *gen.Prog, ar dsp.Reg)
	IncreaseAddr(p *gen.Prog, ar dsp.Reg) // by paired indexing register
}

// Memory accesses DSP data memory.
type Memory interface {
	// Load a word from the address in r.  The result is zero-extended into
	// reg.Result.
	Load(p *gen.Prog, addr reg.R)

	// Store the low 16 bits of value.  The operands must be distinct and
	// neither may be reg.Arg.
	Store(p *gen.Prog, addr, value reg.R)
}

// ALU operates on 32-bit host registers.
type ALU interface {
	Move(p *gen.Prog, target, source reg.R)
	MoveImm(p *gen.Prog, target reg.R, value uint32)
	ZeroExtend16(p *gen.Prog, r reg.R)
	SignExtend16(p *gen.Prog, r reg.R)
	ShiftLeft(p *gen.Prog, r reg.R, count uint8)
	ShiftRight(p *gen.Prog, r reg.R, count uint8) // logical
	Or(p *gen.Prog, target, source reg.R)
	Xor(p *gen.Prog, target, source reg.R)

	// TestImm sets condition.Zero if r&mask is zero.
	TestImm(p *gen.Prog, r reg.R, mask uint32)
}

// Calls into foreign code.
type Calls interface {
	PushRegs(p *gen.Prog, regs []reg.R)
	PopRegs(p *gen.Prog, regs []reg.R) // in push order
	CallHook(p *gen.Prog, hook gen.Hook, word uint16)
}

type MacroAssembler interface {
	RegisterFile
	AddrUpdater
	Memory
	ALU
	Calls
	gen.Brancher
}
