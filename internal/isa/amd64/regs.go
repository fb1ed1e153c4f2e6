// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package amd64

import (
	"github.com/dspemu/extjit/internal/gen/reg"
	"github.com/dspemu/extjit/internal/isa/amd64/in"
)

const (
	RegResult    = in.RegResult    // rax: routine argument and return value
	RegScratch   = in.RegScratch   // rcx
	RegArg       = in.RegArg       // rdx: value operand of store routine
	RegStage     = in.RegStage     // rbx
	RegStackPtr  = reg.R(4)        // rsp
	_            = reg.R(5)        // rbp
	_            = reg.R(6)        // rsi       <- AllocIntFirst
	RegHookArg   = in.RegHookArg   // rdi: instruction word passed to hooks
	_            = reg.R(8)        // r8
	_            = reg.R(9)        // r9
	_            = reg.R(10)       // r10
	_            = reg.R(11)       // r11
	_            = reg.R(12)       // r12
	_            = reg.R(13)       // r13       <- AllocIntLast
	RegRoutines  = in.RegRoutines  // r14
	RegRegisters = in.RegRegisters // r15
)

// regDisp is the displacement of a DSP register from RegRegisters.
func regDisp(index uint8) int32 {
	return int32(index) * 2
}
