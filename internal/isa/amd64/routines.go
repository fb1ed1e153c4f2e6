// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package amd64

import (
	"github.com/dspemu/extjit/internal/gen"
	"github.com/dspemu/extjit/internal/isa/amd64/in"
)

// Routine is an index into the table of 64-bit function pointers at
// RegRoutines.  Routines take their argument in RegResult and preserve every
// register except RegResult.
type Routine uint8

const (
	RoutineReadSaturated = Routine(iota) // eax: register index => eax: value
	RoutineIncrement                     // eax: addressing register index
	RoutineDecrement                     // eax: addressing register index
	RoutineIncrease                      // eax: addressing register index
	RoutineLoad                          // eax: address => eax: word
	RoutineStore                         // eax: address, edx: word
	RoutineHooks                         // first interpreter hook

	// Hook entries follow the C calling convention, with the instruction
	// word as the first argument.
	NumRoutines = RoutineHooks + Routine(gen.NumHooks)
)

var routineNames = [RoutineHooks]string{
	RoutineReadSaturated: "read_saturated",
	RoutineIncrement:     "increment",
	RoutineDecrement:     "decrement",
	RoutineIncrease:      "increase",
	RoutineLoad:          "load",
	RoutineStore:         "store",
}

func (r Routine) String() string {
	switch {
	case r < RoutineHooks:
		return routineNames[r]
	case r < NumRoutines:
		return gen.Hook(r - RoutineHooks).String()
	default:
		return "<invalid routine>"
	}
}

// RoutineDisp is the displacement of a routine table entry.
func RoutineDisp(r Routine) int32 {
	return int32(r) * 8
}

// RoutineAt maps a table displacement back to a routine.
func RoutineAt(disp int64) (r Routine, ok bool) {
	if disp < 0 || disp%8 != 0 || disp/8 >= int64(NumRoutines) {
		return
	}
	return Routine(disp / 8), true
}

func callRoutine(p *gen.Prog, r Routine) {
	in.CALL.MemDisp(&p.Text, in.BaseRoutines, RoutineDisp(r))
}

// callRoutineWithIndex passes a DSP register index to a routine.
func callRoutineWithIndex(p *gen.Prog, r Routine, index uint8) {
	in.MOVi.RegImm32(&p.Text, RegResult, uint32(index))
	callRoutine(p, r)
}
