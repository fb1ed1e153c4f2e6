// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interp executes extended ops against a dsp.State.  Register writes
// (including addressing register updates) are collected into a write-back
// log and applied after the main operation; memory stores are immediate.
package interp

import (
	"fmt"

	"github.com/dspemu/extjit/dsp"
	"github.com/dspemu/extjit/internal/opcode"
)

const logSize = 4

type logEntry struct {
	reg   dsp.Reg
	value uint16
}

// Interpreter is the fallback implementation invoked by generated code.
type Interpreter struct {
	State *dsp.State

	log    [logSize]logEntry
	n      int
	zeroed bool
}

func New(s *dsp.State) *Interpreter {
	return &Interpreter{State: s}
}

// Pending returns the number of logged writes.
func (i *Interpreter) Pending() int {
	return i.n
}

func (i *Interpreter) push(r dsp.Reg, value uint16) {
	if i.n == logSize {
		panic(fmt.Errorf("write-back log overflow at %s", r))
	}
	i.log[i.n] = logEntry{r, value}
	i.n++
}

// ZeroWriteback clears the destination registers of logged writes.  It is
// called by the main op after reading its operands, so that applying the
// log can combine with main op results by OR.
func (i *Interpreter) ZeroWriteback(word uint16) {
	for _, e := range i.log[:i.n] {
		i.State.R[e.reg] = 0
	}
	i.zeroed = i.n > 0
}

// ApplyWriteback commits the log and empties it.
func (i *Interpreter) ApplyWriteback(word uint16) {
	for _, e := range i.log[:i.n] {
		if i.zeroed {
			i.State.WriteReg(e.reg, i.State.R[e.reg]|e.value)
		} else {
			i.State.WriteReg(e.reg, e.value)
		}
	}
	i.n = 0
	i.zeroed = false
}

// ExecuteExt runs the extended op of an instruction word.  Loads and
// register reads observe the state before the instruction.
func (i *Interpreter) ExecuteExt(word uint16) {
	ext := opcode.ExtIndex(word)
	s := i.State

	switch op := opcode.Decode(ext); op {
	case opcode.Nop:

	case opcode.Dr:
		ar := dsp.AddrReg(uint16(ext))
		i.push(ar, dsp.DecrementAddr(s.R[ar], s.R[ar.Wrap()]))

	case opcode.Ir:
		ar := dsp.AddrReg(uint16(ext))
		i.push(ar, dsp.IncrementAddr(s.R[ar], s.R[ar.Wrap()]))

	case opcode.Nr:
		ar := dsp.AddrReg(uint16(ext))
		i.push(ar, increased(s, ar))

	case opcode.Mv:
		dst := dsp.AXL0 + dsp.Reg((ext>>2)&3)
		src := dsp.ACL0 + dsp.Reg(ext&3)
		i.push(dst, s.ReadRegSaturated(src))

	case opcode.S, opcode.Sn:
		ar := dsp.AddrReg(uint16(ext))
		src := dsp.ACL0 + dsp.Reg((ext>>3)&3)
		s.Mem.Store(s.R[ar], s.ReadRegSaturated(src))
		i.push(ar, advanced(s, ar, op == opcode.Sn))

	case opcode.L, opcode.Ln:
		ar := dsp.AddrReg(uint16(ext))
		dst := dsp.AXL0 + dsp.Reg((ext>>3)&7)
		value := s.Load(ar)

		if dst.Saturates() && s.R[dsp.SR]&dsp.SRMode40 != 0 {
			n := dst.Acc()
			i.push(dsp.AccHigh(n), signWord(value))
			i.push(dst, value)
			i.push(dsp.AccLow(n), 0)
		} else {
			i.push(dst, value)
		}
		i.push(ar, advanced(s, ar, op == opcode.Ln))

	case opcode.Ls, opcode.Sl, opcode.Lsn, opcode.Sln, opcode.Lsm, opcode.Slm, opcode.Lsnm, opcode.Slnm:
		dst := dsp.AXL0 + dsp.Reg((ext>>4)&3)
		src := dsp.ACM0 + dsp.Reg(ext&1)

		storeAR, loadAR := dsp.AR3, dsp.AR0
		if ext&0x02 != 0 {
			storeAR, loadAR = dsp.AR0, dsp.AR3
		}

		s.Mem.Store(s.R[storeAR], s.ReadRegSaturated(src))
		i.push(dst, s.Load(loadAR))
		i.push(dsp.AR3, advanced(s, dsp.AR3, ext&0x08 != 0))
		i.push(dsp.AR0, advanced(s, dsp.AR0, ext&0x04 != 0))

	default: // dual load
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

		i.push(primary, s.Load(ptr))
		if dsp.SamePage(s.R[ptr], s.R[dsp.AR3]) {
			i.push(secondary, s.Load(ptr))
		} else {
			i.push(secondary, s.Load(dsp.AR3))
		}
		i.push(ptr, advanced(s, ptr, ext&0x04 != 0))
		i.push(dsp.AR3, advanced(s, dsp.AR3, ext&0x08 != 0))
	}
}

// Step executes a whole instruction without a main op.
func (i *Interpreter) Step(word uint16) {
	i.ExecuteExt(word)
	i.ApplyWriteback(word)
}

func increased(s *dsp.State, ar dsp.Reg) uint16 {
	return dsp.IncreaseAddr(s.R[ar], s.R[ar.Wrap()], int16(s.R[ar.Index()]))
}

func advanced(s *dsp.State, ar dsp.Reg, index bool) uint16 {
	if index {
		return increased(s, ar)
	}
	return dsp.IncrementAddr(s.R[ar], s.R[ar.Wrap()])
}

func signWord(value uint16) uint16 {
	if value&0x8000 != 0 {
		return 0xffff
	}
	return 0
}
