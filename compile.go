// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extjit

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dspemu/extjit/buffer"
	"github.com/dspemu/extjit/dsp"
	"github.com/dspemu/extjit/internal/gen/codegen"
	"github.com/dspemu/extjit/internal/gen/regalloc"
	"github.com/dspemu/extjit/internal/isa"
	"github.com/dspemu/extjit/internal/isa/amd64"
	"github.com/dspemu/extjit/internal/isa/portable"
	"github.com/dspemu/extjit/internal/opcode"
	"github.com/dspemu/extjit/internal/pan"
	"github.com/pkg/errors"
)

var (
	ErrUnflushed = errors.New("extjit: previous instruction has not been flushed")
	ErrNotBegun  = errors.New("extjit: no instruction in progress")
)

// Compiler generates code for the extended-op part of DSP instructions.
// Each instruction is compiled in three steps: Begin, the caller's main op,
// and Flush.  A Compiler is not safe for concurrent use.
//
// After an error, the compiler is unusable and every method returns the same
// error.
type Compiler struct {
	log   *slog.Logger
	table opcode.Table
	coder codegen.Coder
	insn  codegen.Insn
	open  bool
	err   error
}

// NewCompiler validates the configuration.  The config may be nil.
func NewCompiler(config *Config) (*Compiler, error) {
	if config == nil {
		config = new(Config)
	}
	table, err := config.Table()
	if err != nil {
		return nil, err
	}

	log := config.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	log = log.With(slog.String("module", "extjit"))

	c := &Compiler{
		log:   log,
		table: table,
	}

	switch config.backend() {
	case BackendAMD64:
		c.coder.ISA = amd64.MacroAssembler{}
	case BackendPortable:
		c.coder.ISA = portable.MacroAssembler{}
	}

	switch {
	case config.Text != nil:
		c.coder.Prog.Text.Buffer = config.Text
	case config.MaxTextSize > 0:
		c.coder.Prog.Text.Buffer = buffer.NewLimited(nil, config.MaxTextSize)
	default:
		c.coder.Prog.Text.Buffer = buffer.NewDynamic(nil)
	}
	c.coder.Prog.Text.Addr = int32(len(c.coder.Prog.Text.Bytes()))
	c.coder.Prog.Regs = regalloc.Make()

	log.Debug("compiler created",
		slog.String("backend", config.backend()),
		slog.Any("interpret", config.Interpret))

	return c, nil
}

// ISA used for code generation.
func (c *Compiler) ISA() isa.MacroAssembler {
	return c.coder.ISA
}

// Begin the instruction with the given word.  Operand reads and memory
// accesses of the extended op are emitted; register writes are deferred until
// Flush.
func (c *Compiler) Begin(word uint16) (err error) {
	if c.err != nil {
		return c.err
	}
	if c.open {
		return ErrUnflushed
	}

	defer func() {
		if err = pan.Error(recover()); err != nil {
			c.fail(err)
		}
	}()

	c.insn = codegen.MakeInsn(word, c.table.Lookup(word))
	c.open = true

	c.log.Debug("begin",
		slog.String("word", fmt.Sprintf("0x%04x", word)),
		slog.String("op", c.insn.Entry.Op.String()),
		slog.String("kind", c.insn.Entry.Kind.String()))

	c.coder.Begin(&c.insn)
	return
}

// ZeroWriteback clears the destination registers of an interpreted extended
// op.  It emits nothing for natively compiled ops.
func (c *Compiler) ZeroWriteback() (err error) {
	if c.err != nil {
		return c.err
	}
	if !c.open {
		return ErrNotBegun
	}

	defer func() {
		if err = pan.Error(recover()); err != nil {
			c.fail(err)
		}
	}()

	c.coder.ZeroWriteback(&c.insn)
	return
}

// Emit main op code between Begin and Flush.  The code must preserve the
// stage register.
func (c *Compiler) Emit(code []byte) (err error) {
	if c.err != nil {
		return c.err
	}
	if !c.open {
		return ErrNotBegun
	}

	defer func() {
		if err = pan.Error(recover()); err != nil {
			c.fail(err)
		}
	}()

	copy(c.coder.Prog.Text.Extend(len(code)), code)
	return
}

// Staged destination registers of the current instruction.  dsp.None means
// that nothing is staged.
func (c *Compiler) Staged() (primary, secondary dsp.Reg) {
	if !c.open {
		return dsp.None, dsp.None
	}
	return c.insn.WB.Primary, c.insn.WB.Secondary
}

// Flush the staged register writes of the current instruction.  Flushing
// when no instruction is in progress does nothing.
func (c *Compiler) Flush() (err error) {
	if c.err != nil {
		return c.err
	}
	if !c.open {
		return nil
	}

	defer func() {
		if err = pan.Error(recover()); err != nil {
			c.fail(err)
		}
	}()

	c.log.Debug("flush",
		slog.String("primary", c.insn.WB.Primary.String()),
		slog.String("secondary", c.insn.WB.Secondary.String()))

	c.coder.Flush(&c.insn)
	c.coder.Prog.Regs.CheckNoneAllocated()
	c.open = false
	return
}

// Compile instructions without main ops.
func (c *Compiler) Compile(words ...uint16) error {
	for _, word := range words {
		if err := c.Begin(word); err != nil {
			return err
		}
		if err := c.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// Text returns the generated code.
func (c *Compiler) Text() []byte {
	return c.coder.Prog.Text.Bytes()
}

func (c *Compiler) fail(err error) {
	c.log.Debug("compilation failed", slog.Any("error", err))
	c.err = err
	c.open = false
}

