// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsp

// Memory is the DSP's 16-bit word-addressed data memory.
type Memory interface {
	Load(addr uint16) uint16
	Store(addr, value uint16)
}

// RAM is a flat data memory covering the whole 16-bit address space.
type RAM []uint16

// NewRAM allocates 64k words.
func NewRAM() RAM {
	return make(RAM, 1<<16)
}

func (m RAM) Load(addr uint16) uint16 { return m[addr] }
func (m RAM) Store(addr, value uint16) { m[addr] = value }

// AccessLog wraps Memory and records every access.
type AccessLog struct {
	Memory
	Loads  []uint16 // addresses
	Stores []Access
}

type Access struct {
	Addr  uint16
	Value uint16
}

func (l *AccessLog) Load(addr uint16) uint16 {
	l.Loads = append(l.Loads, addr)
	return l.Memory.Load(addr)
}

func (l *AccessLog) Store(addr, value uint16) {
	l.Stores = append(l.Stores, Access{addr, value})
	l.Memory.Store(addr, value)
}

// Len is the number of loads and stores recorded.
func (l *AccessLog) Len() int {
	return len(l.Loads) + len(l.Stores)
}
