// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsp

// State is the architectural register file together with data memory.  It
// defines the reference semantics which generated code must reproduce.
type State struct {
	R   [NumRegs]uint16
	Mem Memory
}

// NewState returns a reset state: all registers zero except the wrapping
// registers, which disable circular addressing.
func NewState(mem Memory) *State {
	s := &State{Mem: mem}
	for r := WR0; r <= WR3; r++ {
		s.R[r] = 0xffff
	}
	return s
}

// Clone copies the register file.  Memory is shared.
func (s *State) Clone() *State {
	c := *s
	return &c
}

func (s *State) ReadReg(r Reg) uint16 {
	return s.R[r]
}

// ReadRegSaturated reads a register, clamping accumulator mid-words when the
// accumulator does not fit in 32 bits and 40-bit mode is enabled.
func (s *State) ReadRegSaturated(r Reg) uint16 {
	if !r.Saturates() {
		return s.R[r]
	}

	if s.R[SR]&SRMode40 != 0 {
		acc := s.Acc(r.Acc())
		if acc != int64(int32(acc)) {
			if acc > 0 {
				return 0x7fff
			}
			return 0x8000
		}
	}

	return s.R[r]
}

// WriteReg stores a value.  Accumulator high words are 8 bits wide and hold
// the sign extension of bit 7.
func (s *State) WriteReg(r Reg, value uint16) {
	if r == ACH0 || r == ACH1 {
		value = uint16(int16(int8(value)))
	}
	s.R[r] = value
}

// Acc returns the 40-bit accumulator n sign-extended to 64 bits.
func (s *State) Acc(n int) int64 {
	h := int64(int8(s.R[AccHigh(n)]))
	m := int64(s.R[AccMid(n)])
	l := int64(s.R[AccLow(n)])
	return h<<32 | m<<16 | l
}

// SetAcc writes all three words of accumulator n.
func (s *State) SetAcc(n int, value int64) {
	s.WriteReg(AccHigh(n), uint16(value>>32))
	s.R[AccMid(n)] = uint16(value >> 16)
	s.R[AccLow(n)] = uint16(value)
}

// Addressing register updates.  The argument names AR0..AR3.

func (s *State) IncrementAddr(ar Reg) {
	s.R[ar] = IncrementAddr(s.R[ar], s.R[ar.Wrap()])
}

func (s *State) DecrementAddr(ar Reg) {
	s.R[ar] = DecrementAddr(s.R[ar], s.R[ar.Wrap()])
}

func (s *State) IncreaseAddr(ar Reg) {
	s.R[ar] = IncreaseAddr(s.R[ar], s.R[ar.Wrap()], int16(s.R[ar.Index()]))
}

// Load reads data memory at the address held by an addressing register.
func (s *State) Load(ar Reg) uint16 {
	return s.Mem.Load(s.R[ar])
}
