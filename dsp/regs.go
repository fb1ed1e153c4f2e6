// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dsp describes the architectural state of the emulated DSP: register
// indices, status register bits, data memory, and the reference semantics of
// register file access and addressing-register arithmetic.
package dsp

import (
	"fmt"
)

// Reg is an index into the DSP register file.
type Reg uint8

const (
	AR0 = Reg(0x00)
	AR1 = Reg(0x01)
	AR2 = Reg(0x02)
	AR3 = Reg(0x03)

	IX0 = Reg(0x04)
	IX1 = Reg(0x05)
	IX2 = Reg(0x06)
	IX3 = Reg(0x07)

	WR0 = Reg(0x08)
	WR1 = Reg(0x09)
	WR2 = Reg(0x0a)
	WR3 = Reg(0x0b)

	ST0 = Reg(0x0c)
	ST1 = Reg(0x0d)
	ST2 = Reg(0x0e)
	ST3 = Reg(0x0f)

	ACH0 = Reg(0x10)
	ACH1 = Reg(0x11)

	CR = Reg(0x12)
	SR = Reg(0x13)

	PRODL  = Reg(0x14)
	PRODM  = Reg(0x15)
	PRODH  = Reg(0x16)
	PRODM2 = Reg(0x17)

	AXL0 = Reg(0x18)
	AXL1 = Reg(0x19)
	AXH0 = Reg(0x1a)
	AXH1 = Reg(0x1b)

	ACL0 = Reg(0x1c)
	ACL1 = Reg(0x1d)
	ACM0 = Reg(0x1e)
	ACM1 = Reg(0x1f)

	NumRegs = 32

	// None is not a register.  It marks an unused write-back destination.
	None = Reg(0xff)
)

// Status register bits.
const (
	SRMode40 = uint16(0x4000) // 16-bit accumulator loads sign-extend across 40 bits
)

// PageMask selects the page-selecting high bits of a data memory address.
const PageMask = uint16(0xfc00)

var regNames = [NumRegs]string{
	"ar0", "ar1", "ar2", "ar3",
	"ix0", "ix1", "ix2", "ix3",
	"wr0", "wr1", "wr2", "wr3",
	"st0", "st1", "st2", "st3",
	"ac0.h", "ac1.h",
	"cr", "sr",
	"prod.l", "prod.m1", "prod.h", "prod.m2",
	"ax0.l", "ax1.l", "ax0.h", "ax1.h",
	"ac0.l", "ac1.l", "ac0.m", "ac1.m",
}

func (r Reg) String() string {
	switch {
	case r < NumRegs:
		return regNames[r]

	case r == None:
		return "none"

	default:
		return fmt.Sprintf("reg(0x%02x)", uint8(r))
	}
}

// ParseReg looks up a register by its lower-case name (e.g. "ax0.h").
func ParseReg(name string) (Reg, bool) {
	for i, s := range regNames {
		if s == name {
			return Reg(i), true
		}
	}
	return None, false
}

// AddrReg returns the addressing register ARn.
func AddrReg(n uint16) Reg { return AR0 + Reg(n&3) }

// Index returns the indexing register paired with an addressing register.
func (r Reg) Index() Reg { return r - AR0 + IX0 }

// Wrap returns the wrapping register paired with an addressing register.
func (r Reg) Wrap() Reg { return r - AR0 + WR0 }

// IsAddr reports whether the register is one of AR0..AR3.
func (r Reg) IsAddr() bool { return r <= AR3 }

// Saturates reports whether reading the register is subject to accumulator
// saturation (ACM0 and ACM1).
func (r Reg) Saturates() bool { return r == ACM0 || r == ACM1 }

// Acc returns the accumulator number of ACHn, ACMn or ACLn.
func (r Reg) Acc() int {
	switch r {
	case ACH0, ACM0, ACL0:
		return 0

	case ACH1, ACM1, ACL1:
		return 1

	default:
		panic(fmt.Sprintf("%s is not an accumulator register", r))
	}
}

// AccHigh, AccMid and AccLow name the parts of accumulator n.
func AccHigh(n int) Reg { return ACH0 + Reg(n&1) }
func AccMid(n int) Reg  { return ACM0 + Reg(n&1) }
func AccLow(n int) Reg  { return ACL0 + Reg(n&1) }

// SamePage reports whether two data memory addresses share a memory page.
func SamePage(a, b uint16) bool {
	return (a^b)&PageMask == 0
}
