// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

import (
	"encoding/binary"

	"github.com/dspemu/extjit/internal/code"
	"github.com/dspemu/extjit/internal/gen/reg"
)

func bit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

type output struct {
	buf    [16]byte
	offset uint8
}

func (o *output) len() int { return int(o.offset) }

func (o *output) copy(target []byte) {
	if debugEnabled {
		debugPrintInsn(o.buf[:o.offset])
	}
	copy(target, o.buf[:o.offset])
}

func (o *output) byte(b byte) {
	o.buf[o.offset] = b
	o.offset++
}

// word appends the two bytes of a big-endian word.
func (o *output) word(w uint16) {
	binary.BigEndian.PutUint16(o.buf[o.offset:], w)
	o.offset += 2
}

func (o *output) rexIf(wrxb rexWRXB) {
	o.buf[o.offset] = Rex | byte(wrxb)
	o.offset += bit(wrxb != 0)
}

func (o *output) mod(mod Mod, ro ModRO, rm ModRM) {
	o.buf[o.offset] = byte(mod) | byte(ro) | byte(rm)
	o.offset++
}

func (o *output) int8(val int8) {
	o.buf[o.offset] = uint8(val)
	o.offset++
}

func (o *output) int16(val int16) {
	binary.LittleEndian.PutUint16(o.buf[o.offset:], uint16(val))
	o.offset += 2
}

func (o *output) int32(val int32) {
	binary.LittleEndian.PutUint32(o.buf[o.offset:], uint32(val))
	o.offset += 4
}

func (o *output) int(val int32, size uint8) {
	// Little-endian byte order works for any size
	binary.LittleEndian.PutUint32(o.buf[o.offset:], uint32(val))
	o.offset += size
}

// O

type O byte

func (op O) Reg(text *code.Buf, r reg.R) {
	var o output
	o.rexIf(regRexB(r))
	o.byte(byte(op) + byte(r)&7)
	o.copy(text.Extend(o.len()))
}

// M

type M uint16 // opcode byte and ModRO byte

func (op M) MemDisp(text *code.Buf, base BaseReg, disp int32) {
	var mod, dispSize = dispModSize(disp)
	var o output
	o.rexIf(regRexB(reg.R(base)))
	o.byte(byte(op >> 8))
	o.mod(mod, ModRO(op), regRM(reg.R(base)))
	o.int(disp, dispSize)
	o.copy(text.Extend(o.len()))
}

// RM

type RM byte    // opcode byte
type RM2 uint16 // two opcode bytes

func (op RM) RegReg(text *code.Buf, s Size, r, r2 reg.R) {
	var o output
	o.rexIf(sizeRexW(s) | regRexR(r) | regRexB(r2))
	o.byte(byte(op))
	o.mod(ModReg, regRO(r), regRM(r2))
	o.copy(text.Extend(o.len()))
}

func (op RM2) RegReg(text *code.Buf, s Size, r, r2 reg.R) {
	var o output
	o.rexIf(sizeRexW(s) | regRexR(r) | regRexB(r2))
	o.word(uint16(op))
	o.mod(ModReg, regRO(r), regRM(r2))
	o.copy(text.Extend(o.len()))
}

func (op RM2) RegMemDisp(text *code.Buf, s Size, r reg.R, base BaseReg, disp int32) {
	var mod, dispSize = dispModSize(disp)
	var o output
	o.rexIf(sizeRexW(s) | regRexR(r) | regRexB(reg.R(base)))
	o.word(uint16(op))
	o.mod(mod, regRO(r), regRM(reg.R(base)))
	o.int(disp, dispSize)
	o.copy(text.Extend(o.len()))
}

// RM instructions with 16-bit operand size

type RMdata16 byte // opcode byte

func (op RMdata16) RegMemDisp(text *code.Buf, r reg.R, base BaseReg, disp int32) {
	var mod, dispSize = dispModSize(disp)
	var o output
	o.byte(0x66)
	o.rexIf(regRexR(r) | regRexB(reg.R(base)))
	o.byte(byte(op))
	o.mod(mod, regRO(r), regRM(reg.R(base)))
	o.int(disp, dispSize)
	o.copy(text.Extend(o.len()))
}

// OI

type OI byte

func (op OI) RegImm32(text *code.Buf, r reg.R, val uint32) {
	var o output
	o.rexIf(regRexB(r))
	o.byte(byte(op) + byte(r)&7)
	o.int32(int32(val))
	o.copy(text.Extend(o.len()))
}

// MI

type MI uint32 // opcode bytes for 32-bit value and 8-bit value; and common ModRO byte

func (op MI) RegImm8(text *code.Buf, s Size, r reg.R, val uint8) {
	var o output
	o.rexIf(sizeRexW(s) | regRexB(r))
	o.byte(byte(op >> 8))
	o.mod(ModReg, ModRO(op), regRM(r))
	o.int8(int8(val))
	o.copy(text.Extend(o.len()))
}

func (op MI) RegImm32(text *code.Buf, s Size, r reg.R, val uint32) {
	var o output
	o.rexIf(sizeRexW(s) | regRexB(r))
	o.byte(byte(op >> 16))
	o.mod(ModReg, ModRO(op), regRM(r))
	o.int32(int32(val))
	o.copy(text.Extend(o.len()))
}

// MI instructions with 16-bit operand size

type MI16 uint16 // opcode byte and ModRO byte

func (op MI16) MemDispImm(text *code.Buf, base BaseReg, disp int32, val uint16) {
	var mod, dispSize = dispModSize(disp)
	var o output
	o.byte(0x66)
	o.rexIf(regRexB(reg.R(base)))
	o.byte(byte(op >> 8))
	o.mod(mod, ModRO(op), regRM(reg.R(base)))
	o.int(disp, dispSize)
	o.int16(int16(val))
	o.copy(text.Extend(o.len()))
}

// D

type Dd byte    // opcode byte
type D2d uint16 // two opcode bytes

// Stub32 emits a branch which targets itself, and returns the address after
// it.
func (op Dd) Stub32(text *code.Buf) int32 {
	const insnSize = 5

	var o output
	o.byte(byte(op))
	o.int32(-insnSize) // infinite loop as placeholder
	o.copy(text.Extend(o.len()))
	return text.Addr
}

func (op D2d) Stub32(text *code.Buf) int32 {
	const insnSize = 6

	var o output
	o.word(uint16(op))
	o.int32(-insnSize) // infinite loop as placeholder
	o.copy(text.Extend(o.len()))
	return text.Addr
}
