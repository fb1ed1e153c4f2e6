// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsp

import (
	"testing"
)

func TestRegNames(t *testing.T) {
	for r := Reg(0); r < NumRegs; r++ {
		x, ok := ParseReg(r.String())
		if !ok || x != r {
			t.Errorf("%s: %v %v", r, x, ok)
		}
	}

	if _, ok := ParseReg("ac2.m"); ok {
		t.Error("ac2.m parsed")
	}
	if s := None.String(); s != "none" {
		t.Error(s)
	}
}

func TestSaturates(t *testing.T) {
	for r := Reg(0); r < NumRegs; r++ {
		if r.Saturates() != (r == ACM0 || r == ACM1) {
			t.Error(r)
		}
	}
}

func TestNewState(t *testing.T) {
	s := NewState(NewRAM())
	for r := Reg(0); r < NumRegs; r++ {
		expect := uint16(0)
		if r >= WR0 && r <= WR3 {
			expect = 0xffff
		}
		if v := s.ReadReg(r); v != expect {
			t.Errorf("%s = 0x%04x", r, v)
		}
	}
}

func TestWriteAccHigh(t *testing.T) {
	s := NewState(NewRAM())

	s.WriteReg(ACH0, 0x0080)
	if v := s.ReadReg(ACH0); v != 0xff80 {
		t.Errorf("0x%04x", v)
	}

	s.WriteReg(ACH1, 0xff7f)
	if v := s.ReadReg(ACH1); v != 0x007f {
		t.Errorf("0x%04x", v)
	}

	s.WriteReg(AXH0, 0x0080)
	if v := s.ReadReg(AXH0); v != 0x0080 {
		t.Errorf("0x%04x", v)
	}
}

func TestReadRegSaturated(t *testing.T) {
	for _, x := range []struct {
		sr    uint16
		acc   int64
		value uint16
	}{
		{0, 0x00_1234_5678, 0x1234},
		{0, 0x01_1234_5678, 0x1234},
		{SRMode40, 0x00_1234_5678, 0x1234},
		{SRMode40, 0x00_8000_0000, 0x7fff},
		{SRMode40, 0x01_0000_0000, 0x7fff},
		{SRMode40, -0x8000_0000, 0x8000},
		{SRMode40, -0x8000_0001, 0x8000},
		{SRMode40, -1, 0xffff},
	} {
		for n := 0; n < 2; n++ {
			s := NewState(NewRAM())
			s.R[SR] = x.sr
			s.SetAcc(n, x.acc)

			if acc := s.Acc(n); acc != x.acc {
				t.Errorf("acc%d = 0x%x (expected 0x%x)", n, acc, x.acc)
			}
			if v := s.ReadRegSaturated(AccMid(n)); v != x.value {
				t.Errorf("sr=0x%04x acc%d=0x%x: 0x%04x (expected 0x%04x)", x.sr, n, x.acc, v, x.value)
			}
			if v := s.ReadRegSaturated(AccLow(n)); v != uint16(x.acc) {
				t.Errorf("low word saturated: 0x%04x", v)
			}
		}
	}
}

func TestStateAddr(t *testing.T) {
	s := NewState(NewRAM())
	s.R[AR2] = 5

	s.DecrementAddr(AR2)
	if s.R[AR2] != 4 {
		t.Error(s.R[AR2])
	}

	s.IncrementAddr(AR2)
	s.IncrementAddr(AR2)
	if s.R[AR2] != 6 {
		t.Error(s.R[AR2])
	}

	s.R[IX2] = 0xfffd
	s.IncreaseAddr(AR2)
	if s.R[AR2] != 3 {
		t.Error(s.R[AR2])
	}

	for r := AR0; r <= AR3; r++ {
		if r != AR2 && s.R[r] != 0 {
			t.Error(r, s.R[r])
		}
	}
}

func TestAccessLog(t *testing.T) {
	l := &AccessLog{Memory: NewRAM()}
	l.Store(0x10, 0xbeef)
	if v := l.Load(0x10); v != 0xbeef {
		t.Error(v)
	}
	if l.Len() != 2 || l.Loads[0] != 0x10 || l.Stores[0] != (Access{0x10, 0xbeef}) {
		t.Error(l)
	}
}
