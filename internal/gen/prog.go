// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"github.com/dspemu/extjit/internal/code"
	"github.com/dspemu/extjit/internal/gen/regalloc"
)

// Prog is the code generation state shared by all instructions of a block.
type Prog struct {
	Text code.Buf
	Regs regalloc.Allocator
}

// Hook identifies an interpreter entry point callable from generated code.
// Hooks receive the DSP instruction word.
type Hook uint8

const (
	HookExecute        = Hook(iota) // execute extended op into write-back log
	HookZeroWriteback               // zero destinations of logged writes
	HookApplyWriteback              // commit write-back log

	NumHooks
)

var hookNames = [NumHooks]string{
	HookExecute:        "execute",
	HookZeroWriteback:  "zero_writeback",
	HookApplyWriteback: "apply_writeback",
}

func (h Hook) String() string {
	if h < NumHooks {
		return hookNames[h]
	}
	return "<invalid hook>"
}
