// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/dspemu/extjit/internal/opcode"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
)

func newTableCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Show the extended-op table by family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := opts.table()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tableTree(&table).String())
			return nil
		},
	}
}

func tableTree(table *opcode.Table) treeprint.Tree {
	tree := treeprint.NewWithRoot("extended ops")

	var families [opcode.NumFamilies]treeprint.Tree
	for f := range families {
		families[f] = tree.AddBranch(opcode.Family(f).String())
	}

	for op := opcode.Op(0); op < opcode.NumOps; op++ {
		exts := opcode.Encodings(op)
		kind := table.Entry(exts[0]).Kind
		families[op.Family()].AddNode(fmt.Sprintf("%-7s %s  %-8s %3d encodings", op, opcode.Pattern(op), kind, len(exts)))
	}

	return tree
}
