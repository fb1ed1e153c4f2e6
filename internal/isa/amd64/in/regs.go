// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

import (
	"github.com/dspemu/extjit/internal/gen/reg"
	"github.com/dspemu/extjit/internal/isa/reglayout"
)

const (
	RegResult    = reg.Result
	RegScratch   = reg.Scratch
	RegArg       = reg.Arg
	RegStage     = reg.Stage
	RegHookArg   = reg.R(7) // rdi
	RegRoutines  = reg.R(reglayout.Routines)
	RegRegisters = reg.R(reglayout.Registers)
)

// BaseReg is a register which may be used as a memory operand base without
// a SIB byte.
type BaseReg reg.R

const (
	BaseRoutines  = BaseReg(RegRoutines)
	BaseRegisters = BaseReg(RegRegisters)
)
