// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package amd64

import (
	"github.com/dspemu/extjit/internal/gen"
	"github.com/dspemu/extjit/internal/gen/reg"
	"github.com/dspemu/extjit/internal/pan"
	"github.com/pkg/errors"
)

var errStoreOverlap = errors.New("store operands overlap")

func (MacroAssembler) Load(p *gen.Prog, addr reg.R) {
	asm.Move(p, RegResult, addr)
	callRoutine(p, RoutineLoad)
}

// Store moves value before addr, so addr may be in RegResult.
func (MacroAssembler) Store(p *gen.Prog, addr, value reg.R) {
	if addr == RegArg || value == RegArg || addr == value {
		pan.Panic(errStoreOverlap)
	}

	asm.Move(p, RegArg, value)
	asm.Move(p, RegResult, addr)
	callRoutine(p, RoutineStore)
}
