// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opcode decodes the extended-operation field of DSP instruction
// words.
package opcode

import (
	"fmt"
)

// Op is an extended operation mnemonic.
type Op uint8

const (
	Nop = Op(iota)

	Dr // decrement addressing register
	Ir // increment addressing register
	Nr // add indexing register to addressing register

	Mv // move accumulator word to auxiliary register

	S  // store, post-increment
	Sn // store, post-index
	L  // load, post-increment
	Ln // load, post-index

	Ls   // load via ar0, store via ar3
	Sl   // store via ar0, load via ar3
	Lsn  // ar0 advances by ix0
	Sln  //
	Lsm  // ar3 advances by ix3
	Slm  //
	Lsnm // both advance by index
	Slnm //

	Ld   // dual load via ar0..ar2 and ar3
	Ldn  // pointer advances by index
	Ldm  // ar3 advances by ix3
	Ldnm //

	Ldax   // dual load via ar0/ar1 and ar3 into one auxiliary register
	Ldaxn  //
	Ldaxm  //
	Ldaxnm //

	NumOps
)

var Strings = [NumOps]string{
	Nop:    "nop",
	Dr:     "dr",
	Ir:     "ir",
	Nr:     "nr",
	Mv:     "mv",
	S:      "s",
	Sn:     "sn",
	L:      "l",
	Ln:     "ln",
	Ls:     "ls",
	Sl:     "sl",
	Lsn:    "lsn",
	Sln:    "sln",
	Lsm:    "lsm",
	Slm:    "slm",
	Lsnm:   "lsnm",
	Slnm:   "slnm",
	Ld:     "ld",
	Ldn:    "ldn",
	Ldm:    "ldm",
	Ldnm:   "ldnm",
	Ldax:   "ldax",
	Ldaxn:  "ldaxn",
	Ldaxm:  "ldaxm",
	Ldaxnm: "ldaxnm",
}

func (op Op) String() string {
	if op < NumOps {
		return Strings[op]
	}
	return fmt.Sprintf("op(%d)", uint8(op))
}

// ParseOp looks up a mnemonic.
func ParseOp(name string) (Op, bool) {
	for op, s := range Strings {
		if s == name {
			return Op(op), true
		}
	}
	return 0, false
}

// Family groups mnemonics which share an encoding layout.
type Family uint8

const (
	FamilyNop = Family(iota)
	FamilyAddr
	FamilyMove
	FamilyStore
	FamilyLoad
	FamilyLoadStore
	FamilyDualLoad

	NumFamilies
)

var familyStrings = [NumFamilies]string{
	FamilyNop:       "nop",
	FamilyAddr:      "addressing",
	FamilyMove:      "move",
	FamilyStore:     "store",
	FamilyLoad:      "load",
	FamilyLoadStore: "load-store",
	FamilyDualLoad:  "dual-load",
}

func (f Family) String() string {
	if f < NumFamilies {
		return familyStrings[f]
	}
	return fmt.Sprintf("family(%d)", uint8(f))
}

func (op Op) Family() Family {
	switch {
	case op == Nop:
		return FamilyNop
	case op <= Nr:
		return FamilyAddr
	case op == Mv:
		return FamilyMove
	case op <= Sn:
		return FamilyStore
	case op <= Ln:
		return FamilyLoad
	case op <= Slnm:
		return FamilyLoadStore
	default:
		return FamilyDualLoad
	}
}
