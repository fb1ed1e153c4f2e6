// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Program dspext decodes, compiles and runs DSP extended ops.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/dspemu/extjit"
	"github.com/dspemu/extjit/internal/opcode"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	verbose    bool
}

func main() {
	if err := newRootCommand(new(options)).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:           "dspext",
		Short:         "DSP extended-op compiler",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "TOML configuration file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newDecodeCommand(opts),
		newCompileCommand(opts),
		newRunCommand(opts),
		newTableCommand(opts),
		newReplCommand(opts),
	)
	return root
}

func (opts *options) config() (*extjit.Config, error) {
	config := new(extjit.Config)

	if opts.configPath != "" {
		f, err := os.Open(opts.configPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		config, err = extjit.LoadConfig(f)
		if err != nil {
			return nil, err
		}
	}

	if opts.verbose {
		config.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return config, nil
}

func (opts *options) table() (opcode.Table, error) {
	config, err := opts.config()
	if err != nil {
		return opcode.Table{}, err
	}
	return config.Table()
}

func parseWord(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("instruction word %q: %w", s, err)
	}
	return uint16(n), nil
}

func parseWords(args []string) (words []uint16, err error) {
	for _, s := range args {
		w, err := parseWord(s)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return
}
