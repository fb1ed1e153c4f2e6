// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package portable implements a compact bytecode backend and its executor.
// The bytecode mirrors the host register model of the native backends, so
// the register discipline of generated code can be checked on any host.
package portable

type opcode byte

const (
	opReadReg   = opcode(iota + 1) // r, index
	opReadSat                      // r, index
	opWriteReg                     // index, r
	opWriteImm                     // index, imm16
	opIncrement                    // index
	opDecrement                    // index
	opIncrease                     // index
	opLoad                         // addr
	opStore                        // addr, value
	opMove                         // target, source
	opMoveImm                      // r, imm32
	opZeroExt16                    // r
	opSignExt16                    // r
	opShl                          // r, count
	opShr                          // r, count
	opOr                           // target, source
	opXor                          // target, source
	opTest                         // r, imm32
	opJz                           // rel32
	opJnz                          // rel32
	opJmp                          // rel32
	opPush                         // r
	opPop                          // r
	opCall                         // hook, word16

	numOpcodes
)

// Operand layouts.
type layout uint8

const (
	layoutNone = layout(iota)
	layoutR
	layoutRR
	layoutRIndex
	layoutIndex
	layoutIndexR
	layoutIndexImm16
	layoutRImm8
	layoutRImm32
	layoutRel32
	layoutHookImm16
)

var layoutSizes = [...]int{
	layoutNone:       1,
	layoutR:          2,
	layoutRR:         3,
	layoutRIndex:     3,
	layoutIndex:      2,
	layoutIndexR:     3,
	layoutIndexImm16: 4,
	layoutRImm8:      3,
	layoutRImm32:     6,
	layoutRel32:      5,
	layoutHookImm16:  4,
}

type insnInfo struct {
	name   string
	layout layout
}

var insns = [numOpcodes]insnInfo{
	opReadReg:   {"readreg", layoutRIndex},
	opReadSat:   {"readsat", layoutRIndex},
	opWriteReg:  {"writereg", layoutIndexR},
	opWriteImm:  {"writeimm", layoutIndexImm16},
	opIncrement: {"inc", layoutIndex},
	opDecrement: {"dec", layoutIndex},
	opIncrease:  {"increase", layoutIndex},
	opLoad:      {"load", layoutR},
	opStore:     {"store", layoutRR},
	opMove:      {"mov", layoutRR},
	opMoveImm:   {"movi", layoutRImm32},
	opZeroExt16: {"zext16", layoutR},
	opSignExt16: {"sext16", layoutR},
	opShl:       {"shl", layoutRImm8},
	opShr:       {"shr", layoutRImm8},
	opOr:        {"or", layoutRR},
	opXor:       {"xor", layoutRR},
	opTest:      {"test", layoutRImm32},
	opJz:        {"jz", layoutRel32},
	opJnz:       {"jnz", layoutRel32},
	opJmp:       {"jmp", layoutRel32},
	opPush:      {"push", layoutR},
	opPop:       {"pop", layoutR},
	opCall:      {"call", layoutHookImm16},
}

func (op opcode) valid() bool {
	return op > 0 && op < numOpcodes
}

func (op opcode) size() int {
	return layoutSizes[insns[op].layout]
}
