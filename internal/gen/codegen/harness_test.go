// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"math/rand"
	"testing"

	"github.com/dspemu/extjit/buffer"
	"github.com/dspemu/extjit/dsp"
	"github.com/dspemu/extjit/internal/gen/regalloc"
	"github.com/dspemu/extjit/internal/interp"
	"github.com/dspemu/extjit/internal/isa/portable"
	"github.com/dspemu/extjit/internal/opcode"
	"github.com/stretchr/testify/require"
)

// testMem has deterministic initial contents and records stores.
type testMem struct {
	seed   uint16
	stores map[uint16]uint16
	loads  []uint16
}

func newTestMem(seed uint16) *testMem {
	return &testMem{seed: seed, stores: make(map[uint16]uint16)}
}

func (m *testMem) Load(addr uint16) uint16 {
	m.loads = append(m.loads, addr)
	if v, ok := m.stores[addr]; ok {
		return v
	}
	return (addr * 0x9e37) ^ m.seed
}

func (m *testMem) Store(addr, value uint16) {
	m.stores[addr] = value
}

func newCoder() *Coder {
	c := &Coder{ISA: portable.MacroAssembler{}}
	c.Prog.Text.Buffer = buffer.NewDynamic(nil)
	c.Prog.Regs = regalloc.Make()
	return c
}

func randomState(r *rand.Rand, mem dsp.Memory) *dsp.State {
	s := dsp.NewState(mem)
	for i := range s.R {
		s.R[i] = uint16(r.Uint32())
	}
	return s
}

// compile one instruction.  The main op callback runs between Begin and
// Flush.
func compile(t *testing.T, table *opcode.Table, word uint16, mainOp func(c *Coder, in *Insn)) (*Coder, *Insn) {
	t.Helper()

	c := newCoder()
	in := MakeInsn(word, table.Lookup(word))

	c.Begin(&in)
	if mainOp != nil {
		mainOp(c, &in)
	}
	c.Flush(&in)

	require.True(t, in.WB.Empty())
	return c, &in
}

// run compiled code against a state with an interpreter for the hooks.
func run(t *testing.T, c *Coder, s *dsp.State) *portable.Machine {
	t.Helper()

	m := portable.NewMachine(s, interp.New(s))
	require.NoError(t, m.Run(c.Prog.Text.Bytes()))
	return m
}

// execute one instruction with the native table and return the state.
func execute(t *testing.T, word uint16, s *dsp.State) *portable.Machine {
	t.Helper()

	table := opcode.MakeTable()
	c, _ := compile(t, &table, word, nil)
	return run(t, c, s)
}
