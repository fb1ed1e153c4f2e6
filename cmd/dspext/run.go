// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dspemu/extjit"
	"github.com/dspemu/extjit/dsp"
	"github.com/dspemu/extjit/internal/interp"
	"github.com/dspemu/extjit/internal/isa/portable"
	"github.com/spf13/cobra"
)

func newRunCommand(opts *options) *cobra.Command {
	var (
		sets []string
		mems []string
	)

	cmd := &cobra.Command{
		Use:   "run WORD...",
		Short: "Compile instruction words and execute them on a fresh DSP state",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := parseWords(args)
			if err != nil {
				return err
			}

			config, err := opts.config()
			if err != nil {
				return err
			}
			config.Backend = extjit.BackendPortable

			ram := dsp.NewRAM()
			mem := &dsp.AccessLog{Memory: ram}
			s := dsp.NewState(mem)

			for _, assign := range sets {
				name, value, err := parseAssign(assign)
				if err != nil {
					return err
				}
				r, ok := dsp.ParseReg(name)
				if !ok {
					return fmt.Errorf("unknown register: %s", name)
				}
				s.WriteReg(r, value)
			}

			for _, assign := range mems {
				name, value, err := parseAssign(assign)
				if err != nil {
					return err
				}
				addr, err := strconv.ParseUint(name, 0, 16)
				if err != nil {
					return fmt.Errorf("memory address %q: %w", name, err)
				}
				ram.Store(uint16(addr), value)
			}

			c, err := extjit.NewCompiler(config)
			if err != nil {
				return err
			}
			if err := c.Compile(words...); err != nil {
				return err
			}

			before := s.Clone()

			m := portable.NewMachine(s, interp.New(s))
			if err := m.Run(c.Text()); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i := range s.R {
				if s.R[i] != before.R[i] {
					fmt.Fprintf(w, "%-8s 0x%04x -> 0x%04x\n", dsp.Reg(i), before.R[i], s.R[i])
				}
			}
			for _, addr := range mem.Loads {
				fmt.Fprintf(w, "load     [0x%04x]\n", addr)
			}
			for _, a := range mem.Stores {
				fmt.Fprintf(w, "store    [0x%04x] 0x%04x\n", a.Addr, a.Value)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "initial register value (REG=VALUE)")
	cmd.Flags().StringArrayVar(&mems, "mem", nil, "initial memory word (ADDR=VALUE)")
	return cmd
}

func parseAssign(s string) (name string, value uint16, err error) {
	name, v, ok := strings.Cut(s, "=")
	if !ok {
		err = fmt.Errorf("expected NAME=VALUE: %s", s)
		return
	}

	n, err := strconv.ParseUint(v, 0, 16)
	if err != nil {
		err = fmt.Errorf("value of %s: %w", name, err)
		return
	}

	value = uint16(n)
	return
}
