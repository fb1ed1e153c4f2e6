// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opcode

// Kind of code generation for an extended op.
type Kind uint8

const (
	Native   = Kind(iota) // compiled into host instructions
	Fallback              // delegated to the interpreter via hooks
)

func (k Kind) String() string {
	if k == Native {
		return "native"
	}
	return "fallback"
}

// Entry of the extended-op table.  A fallback entry carries nothing but the
// instruction word at code generation time.
type Entry struct {
	Op   Op
	Kind Kind
}

// Table maps extended-op bytes to entries.  It is immutable after
// construction.
type Table struct {
	entries [256]Entry
}

// MakeTable with every operation compiled natively except those listed.
func MakeTable(interpret ...Op) (t Table) {
	var fallback [NumOps]bool
	for _, op := range interpret {
		fallback[op] = true
	}

	for i := range t.entries {
		op := Decode(uint8(i))
		kind := Native
		if fallback[op] {
			kind = Fallback
		}
		t.entries[i] = Entry{op, kind}
	}
	return
}

// Lookup the entry for an instruction word.
func (t *Table) Lookup(word uint16) Entry {
	return t.entries[ExtIndex(word)]
}

// Entry for an extended-op byte.
func (t *Table) Entry(ext uint8) Entry {
	return t.entries[ext]
}
