// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/dspemu/extjit"
	"github.com/dspemu/extjit/disasm"
	"github.com/spf13/cobra"
)

func newCompileCommand(opts *options) *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "compile WORD...",
		Short: "Generate and list code for instruction words",
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
			if backend != "" {
				config.Backend = backend
			}
			if config.Backend == "" {
				config.Backend = extjit.BackendAMD64
			}

			c, err := extjit.NewCompiler(config)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, word := range words {
				start := len(c.Text())
				if err := c.Compile(word); err != nil {
					return err
				}
				fmt.Fprintf(w, "; 0x%04x: %d bytes\n", word, len(c.Text())-start)
			}

			return disasm.Fprint(w, config.Backend, c.Text())
		},
	}

	cmd.Flags().StringVar(&backend, "backend", "", "amd64 or portable")
	return cmd
}
