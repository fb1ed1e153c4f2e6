// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

func newReplCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive decode, compile and run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rl, err := readline.NewEx(&readline.Config{
				Prompt:      "dspext> ",
				HistoryFile: filepath.Join(os.TempDir(), "dspext_history"),
			})
			if err != nil {
				return err
			}
			defer rl.Close()

			for {
				line, err := rl.Readline()
				if errors.Is(err, readline.ErrInterrupt) {
					continue
				}
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}

				fields := strings.Fields(line)
				if len(fields) == 0 {
					continue
				}
				switch fields[0] {
				case "quit", "exit":
					return nil
				case "repl":
					continue
				}

				if err := replExec(opts, fields, rl.Stdout()); err != nil {
					fmt.Fprintln(rl.Stderr(), err)
				}
			}
		},
	}
}

// replExec runs a command line with the flags of the session.
func replExec(opts *options, args []string, out io.Writer) error {
	if opts.configPath != "" {
		args = append(args, "--config", opts.configPath)
	}
	if opts.verbose {
		args = append(args, "--verbose")
	}

	cmd := newRootCommand(new(options))
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SilenceErrors = true
	return cmd.Execute()
}
