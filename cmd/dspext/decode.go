// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/dspemu/extjit/internal/opcode"
	"github.com/spf13/cobra"
)

func newDecodeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode WORD...",
		Short: "Show the extended op of instruction words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := parseWords(args)
			if err != nil {
				return err
			}

			table, err := opts.table()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, word := range words {
				ext := opcode.ExtIndex(word)
				entry := table.Entry(ext)
				fmt.Fprintf(w, "0x%04x\text 0x%02x\t%-26s\t%s\t%s\t%s\n",
					word, ext, opcode.Format(ext), opcode.Pattern(entry.Op), entry.Op.Family(), entry.Kind)
			}
			return nil
		},
	}
}
