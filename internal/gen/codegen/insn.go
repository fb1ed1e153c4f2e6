// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"fmt"

	"github.com/dspemu/extjit/dsp"
	"github.com/dspemu/extjit/internal/opcode"
	"github.com/dspemu/extjit/internal/pan"
)

// Writeback names the destinations of values held in the stage register.
// dsp.None means that nothing is staged.
type Writeback struct {
	Primary   dsp.Reg // low half
	Secondary dsp.Reg // high half
}

var noWriteback = Writeback{dsp.None, dsp.None}

func (wb Writeback) Empty() bool {
	return wb == noWriteback
}

// Insn is the compilation context of one DSP instruction.  It is created by
// MakeInsn and consumed by Coder.Flush.
type Insn struct {
	Word  uint16
	Entry opcode.Entry
	WB    Writeback

	applied bool
}

func MakeInsn(word uint16, entry opcode.Entry) Insn {
	return Insn{
		Word:  word,
		Entry: entry,
		WB:    noWriteback,
	}
}

func (in *Insn) Ext() uint8 {
	return opcode.ExtIndex(in.Word)
}

func (in *Insn) setPrimary(r dsp.Reg) {
	in.WB.setPrimary(r)
}

func (in *Insn) setSecondary(r dsp.Reg) {
	in.WB.setSecondary(r)
}

func (wb *Writeback) setPrimary(r dsp.Reg) {
	if wb.Primary != dsp.None {
		pan.Panic(fmt.Errorf("primary write-back to %s staged over %s", r, wb.Primary))
	}
	wb.Primary = r
}

func (wb *Writeback) setSecondary(r dsp.Reg) {
	if wb.Secondary != dsp.None {
		pan.Panic(fmt.Errorf("secondary write-back to %s staged over %s", r, wb.Secondary))
	}
	wb.Secondary = r
}

// Slot is the run-time content of the stage register.  The low half holds
// the primary value.  The high half holds either the secondary value or, for
// a lone accumulator mid-word load, the status register captured at load
// time.
type Slot uint32

const (
	SlotHighShift = 16
	SlotMode40    = uint32(dsp.SRMode40) << SlotHighShift
)

func (s Slot) Primary() uint16   { return uint16(s) }
func (s Slot) Secondary() uint16 { return uint16(s >> SlotHighShift) }
func (s Slot) Status() uint16    { return uint16(s >> SlotHighShift) }
func (s Slot) Mode40() bool      { return uint32(s)&SlotMode40 != 0 }
