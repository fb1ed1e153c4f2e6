// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extjit

import (
	"io"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/dspemu/extjit/internal/code"
	"github.com/dspemu/extjit/internal/opcode"
	"golang.org/x/xerrors"
)

// Backend names.
const (
	BackendAMD64    = "amd64"
	BackendPortable = "portable"
)

// CodeBuffer receives generated code.  Implementations are in the buffer
// package.
type CodeBuffer = code.Buffer

// Config for a compiler.  Zero values are replaced with effective defaults.
type Config struct {
	Backend     string       // Defaults to BackendAMD64.
	Interpret   []string     // Mnemonics which are delegated to the interpreter.
	MaxTextSize int          // Limits the default text buffer if positive.
	Text        CodeBuffer   // Defaults to dynamically sized buffer.
	Logger      *slog.Logger // Discards by default.
}

type configFile struct {
	Compiler struct {
		Backend     string   `toml:"backend"`
		Interpret   []string `toml:"interpret"`
		MaxTextSize int      `toml:"max_text_size"`
	} `toml:"compiler"`
}

// LoadConfig parses TOML:
//
//	[compiler]
//	backend = "portable"
//	interpret = ["ld", "ldax"]
//	max_text_size = 65536
//
// Unknown keys are errors.
func LoadConfig(r io.Reader) (*Config, error) {
	var f configFile

	meta, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, configErrorf("config: %w", err)
	}
	if keys := meta.Undecoded(); len(keys) > 0 {
		return nil, configErrorf("config: unknown key %q", keys[0].String())
	}

	c := &Config{
		Backend:     f.Compiler.Backend,
		Interpret:   f.Compiler.Interpret,
		MaxTextSize: f.Compiler.MaxTextSize,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	switch c.Backend {
	case "", BackendAMD64, BackendPortable:
	default:
		return configErrorf("config: unknown backend %q", c.Backend)
	}

	if c.MaxTextSize < 0 {
		return configErrorf("config: negative max_text_size %d", c.MaxTextSize)
	}

	_, err := c.interpretOps()
	return err
}

// Table validates the configuration and builds the extended-op table it
// describes.  Errors are ConfigErrors.
func (c *Config) Table() (opcode.Table, error) {
	if err := c.validate(); err != nil {
		return opcode.Table{}, err
	}

	ops, err := c.interpretOps()
	if err != nil {
		return opcode.Table{}, err
	}
	return opcode.MakeTable(ops...), nil
}

func (c *Config) interpretOps() (ops []opcode.Op, err error) {
	for _, name := range c.Interpret {
		op, ok := opcode.ParseOp(name)
		if !ok {
			return nil, configErrorf("config: unknown extended op %q", name)
		}
		ops = append(ops, op)
	}
	return
}

func (c *Config) backend() string {
	if c.Backend == "" {
		return BackendAMD64
	}
	return c.Backend
}

type configError struct {
	err error
}

func configErrorf(format string, args ...any) error {
	return &configError{xerrors.Errorf(format, args...)}
}

func (e *configError) Error() string       { return e.err.Error() }
func (e *configError) ConfigError() string { return e.err.Error() }
func (e *configError) Unwrap() error       { return xerrors.Unwrap(e.err) }
