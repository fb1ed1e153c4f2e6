// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codegen compiles extended operations.
//
// An extended op reads its operands before the main op of the same
// instruction runs, but its register writes must not become visible until
// after the main op has read its own operands.  Begin emits the reads and
// memory accesses, and leaves up to two register values in the stage
// register.  The caller then emits the main op, which must preserve the
// stage register, and finally Flush commits the staged values.
package codegen

import (
	"fmt"

	"github.com/dspemu/extjit/internal/gen"
	"github.com/dspemu/extjit/internal/gen/debug"
	"github.com/dspemu/extjit/internal/isa"
	"github.com/dspemu/extjit/internal/opcode"
	"github.com/dspemu/extjit/internal/pan"
)

// Coder generates code for a sequence of instructions.
type Coder struct {
	Prog gen.Prog
	ISA  isa.MacroAssembler
}

// Begin emits the extended op.
func (c *Coder) Begin(in *Insn) {
	if debug.Enabled {
		debug.Printf("%s ext op 0x%04x (%s)", in.Entry.Op, in.Word, in.Entry.Kind)
		debug.Depth++
	}

	if in.Entry.Kind == opcode.Fallback {
		genHookCall(c, gen.HookExecute, in.Word)
	} else {
		snapshot := c.Prog.Regs.Snapshot()
		genOp(c, in, in.Ext())
		if !c.Prog.Regs.Matches(snapshot) {
			pan.Panic(fmt.Errorf("%s leaked host registers", in.Entry.Op))
		}
	}

	if debug.Enabled {
		debug.Depth--
		debug.Printf("staged: %s, %s", in.WB.Primary, in.WB.Secondary)
	}
}

// ZeroWriteback emits the clearing of pending destination registers.  It is
// only meaningful for interpreted ops; natively staged values are applied by
// assignment.
func (c *Coder) ZeroWriteback(in *Insn) {
	if in.Entry.Kind == opcode.Fallback && !in.applied {
		genHookCall(c, gen.HookZeroWriteback, in.Word)
	}
}

// Flush emits the commit of staged values.  It resets the context; calling it
// again emits nothing.
func (c *Coder) Flush(in *Insn) {
	if in.Entry.Kind == opcode.Fallback {
		if !in.applied {
			genHookCall(c, gen.HookApplyWriteback, in.Word)
			in.applied = true
		}
		return
	}

	genFlush(c, in)
}

func genOp(c *Coder, in *Insn, ext uint8) {
	switch op := in.Entry.Op; op {
	case opcode.Nop:
	case opcode.Dr:
		genDecrement(c, ext)
	case opcode.Ir:
		genIncrement(c, ext)
	case opcode.Nr:
		genIncrease(c, ext)
	case opcode.Mv:
		genMove(c, in, ext)
	case opcode.S, opcode.Sn:
		genStore(c, ext)
	case opcode.L, opcode.Ln:
		genLoad(c, in, ext)
	case opcode.Ls, opcode.Sl, opcode.Lsn, opcode.Sln, opcode.Lsm, opcode.Slm, opcode.Lsnm, opcode.Slnm:
		genLoadStore(c, in, ext)
	case opcode.Ld, opcode.Ldn, opcode.Ldm, opcode.Ldnm, opcode.Ldax, opcode.Ldaxn, opcode.Ldaxm, opcode.Ldaxnm:
		genDualLoad(c, in, ext)
	default:
		pan.Panic(fmt.Errorf("unknown extended op: %s", op))
	}
}
