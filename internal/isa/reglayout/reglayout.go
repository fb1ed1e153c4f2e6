// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reglayout assigns roles to host registers.  The numbering follows
// x86-64 register encoding; the portable backend uses the same numbers.
package reglayout

const (
	Result  = 0 // rax: routine return value and argument
	Scratch = 1 // rcx
	Arg     = 2 // rdx: value operand of store routine
	Stage   = 3 // rbx: deferred write-back holding value

	AllocIntFirst = 6  // rsi
	AllocIntLast  = 13 // r13

	// Host registers 14 and 15 point to the routine table and the DSP
	// register file.
	Routines  = 14
	Registers = 15

	Radix = 16
)

// CallerSaved registers are clobbered by calls into foreign code.
const CallerSaved = uint32(1<<0 | 1<<1 | 1<<2 | 1<<6 | 1<<7 | 1<<8 | 1<<9 | 1<<10 | 1<<11)
