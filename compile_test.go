// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extjit

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/dspemu/extjit/buffer"
	"github.com/dspemu/extjit/dsp"
	"github.com/dspemu/extjit/errors"
	"github.com/dspemu/extjit/internal/interp"
	"github.com/dspemu/extjit/internal/isa/amd64"
	"github.com/dspemu/extjit/internal/isa/portable"
	"github.com/dspemu/extjit/internal/opcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPortableCompiler(t *testing.T, interpret ...string) *Compiler {
	t.Helper()

	c, err := NewCompiler(&Config{Backend: BackendPortable, Interpret: interpret})
	require.NoError(t, err)
	return c
}

func runPortable(t *testing.T, c *Compiler, s *dsp.State) {
	t.Helper()

	m := portable.NewMachine(s, interp.New(s))
	require.NoError(t, m.Run(c.Text()))
}

func TestDefaults(t *testing.T) {
	c, err := NewCompiler(nil)
	require.NoError(t, err)
	assert.IsType(t, amd64.MacroAssembler{}, c.ISA())
	assert.Empty(t, c.Text())
}

func TestInvalidConfig(t *testing.T) {
	_, err := NewCompiler(&Config{Interpret: []string{"nope"}})
	assert.NotNil(t, errors.AsConfigError(err))
}

func TestUnflushed(t *testing.T) {
	c := newPortableCompiler(t)

	require.NoError(t, c.Begin(0x0011))
	assert.Equal(t, ErrUnflushed, c.Begin(0x0011))

	require.NoError(t, c.Flush())
	require.NoError(t, c.Flush())
	require.NoError(t, c.Begin(0x0011))
}

func TestNotBegun(t *testing.T) {
	c := newPortableCompiler(t)

	assert.Equal(t, ErrNotBegun, c.ZeroWriteback())
	assert.Equal(t, ErrNotBegun, c.Emit([]byte{0x90}))
	assert.NoError(t, c.Flush())
	assert.Empty(t, c.Text())
}

func TestStaged(t *testing.T) {
	c := newPortableCompiler(t)

	p, s := c.Staged()
	assert.Equal(t, dsp.None, p)
	assert.Equal(t, dsp.None, s)

	require.NoError(t, c.Begin(0x00c0)) // ld ax0.l, ax1.l, @ar0
	p, s = c.Staged()
	assert.Equal(t, dsp.AXL0, p)
	assert.Equal(t, dsp.AXL1, s)

	require.NoError(t, c.Flush())
	p, s = c.Staged()
	assert.Equal(t, dsp.None, p)
	assert.Equal(t, dsp.None, s)
}

func TestInterpretedStagesNothing(t *testing.T) {
	c := newPortableCompiler(t, "ld")

	require.NoError(t, c.Begin(0x00c0))
	p, s := c.Staged()
	assert.Equal(t, dsp.None, p)
	assert.Equal(t, dsp.None, s)
	require.NoError(t, c.ZeroWriteback())
	require.NoError(t, c.Flush())
}

func TestDualLoadSamePage(t *testing.T) {
	for _, interpret := range [][]string{nil, {"ld"}} {
		mem := dsp.NewRAM()
		mem.Store(0x0100, 0xcafe)
		mem.Store(0x0103, 0xbeef)

		s := dsp.NewState(mem)
		s.R[dsp.AR0] = 0x0100
		s.R[dsp.AR3] = 0x0103

		c := newPortableCompiler(t, interpret...)
		require.NoError(t, c.Compile(0x00c0))
		runPortable(t, c, s)

		assert.Equal(t, uint16(0xcafe), s.R[dsp.AXL0], "interpret %v", interpret)
		assert.Equal(t, uint16(0xcafe), s.R[dsp.AXL1], "interpret %v", interpret)
		assert.Equal(t, uint16(0x0101), s.R[dsp.AR0], "interpret %v", interpret)
		assert.Equal(t, uint16(0x0104), s.R[dsp.AR3], "interpret %v", interpret)
	}
}

func TestSequence(t *testing.T) {
	s := dsp.NewState(dsp.NewRAM())
	s.R[dsp.ACL1] = 0x1234
	s.R[dsp.AR2] = 5

	c := newPortableCompiler(t)
	require.NoError(t, c.Compile(
		0x0011, // mv ax0.l, ac1.l
		0x0006, // dr ar2
		0x0000, // nop
	))
	runPortable(t, c, s)

	assert.Equal(t, uint16(0x1234), s.R[dsp.AXL0])
	assert.Equal(t, uint16(4), s.R[dsp.AR2])
}

func TestEmit(t *testing.T) {
	c, err := NewCompiler(nil)
	require.NoError(t, err)

	require.NoError(t, c.Begin(0x0011))
	n := len(c.Text())
	require.NoError(t, c.Emit([]byte{0x90}))
	require.NoError(t, c.Flush())

	assert.Equal(t, byte(0x90), c.Text()[n])
	assert.Greater(t, len(c.Text()), n+1)
}

func TestBufferLimit(t *testing.T) {
	c, err := NewCompiler(&Config{Backend: BackendPortable, MaxTextSize: 8})
	require.NoError(t, err)

	err = c.Compile(0x00c0)
	require.Error(t, err)
	assert.NotNil(t, errors.AsBufferError(err))
	assert.False(t, errors.Internal(err))

	assert.Equal(t, err, c.Begin(0x0000))
	assert.Equal(t, err, c.Flush())
}

func TestStaticBuffer(t *testing.T) {
	c, err := NewCompiler(&Config{Text: buffer.NewStatic(make([]byte, 0, 4096))})
	require.NoError(t, err)
	require.NoError(t, c.Compile(0x0011, 0x00c0))
	assert.NotEmpty(t, c.Text())
}

func TestLogger(t *testing.T) {
	var out bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c, err := NewCompiler(&Config{Backend: BackendPortable, Logger: log})
	require.NoError(t, err)
	require.NoError(t, c.Compile(0x0011))

	assert.Contains(t, out.String(), `"module":"extjit"`)
	assert.Contains(t, out.String(), `"msg":"begin"`)
	assert.Contains(t, out.String(), `"op":"mv"`)
	assert.Contains(t, out.String(), `"primary":"ax0.l"`)
}

func FuzzCompile(f *testing.F) {
	f.Add([]byte{0x00, 0xc0, 0x00, 0x11}, uint16(0x0100), uint16(0x0103))
	f.Add([]byte{0x00, 0x9e, 0x30, 0x4a}, uint16(0x0400), uint16(0x0100))

	var names []string
	for op := opcode.Op(0); op < opcode.NumOps; op++ {
		names = append(names, op.String())
	}

	f.Fuzz(func(t *testing.T, data []byte, ar0, ar3 uint16) {
		var words []uint16
		for i := 0; i+1 < len(data) && len(words) < 32; i += 2 {
			words = append(words, uint16(data[i])<<8|uint16(data[i+1]))
		}

		var results [2]*dsp.State
		var stores [2][]dsp.Access

		for i, interpret := range [][]string{nil, names} {
			c := newPortableCompiler(t, interpret...)
			require.NoError(t, c.Compile(words...))

			ram := dsp.NewRAM()
			for addr := range ram {
				ram[addr] = uint16(addr) ^ 0x5a5a
			}
			mem := &dsp.AccessLog{Memory: ram}

			s := dsp.NewState(mem)
			s.R[dsp.AR0] = ar0
			s.R[dsp.AR3] = ar3
			s.R[dsp.IX0] = 3
			s.R[dsp.ACM0] = 0x7fff
			runPortable(t, c, s)

			results[i] = s
			stores[i] = mem.Stores
		}

		assert.Equal(t, results[1].R, results[0].R)
		assert.Equal(t, stores[1], stores[0])
	})
}
