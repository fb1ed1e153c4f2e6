// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"github.com/dspemu/extjit/internal/gen/condition"
	"github.com/dspemu/extjit/internal/gen/debug"
	"github.com/dspemu/extjit/internal/gen/link"
)

// Brancher emits branch instructions with placeholder targets.
type Brancher interface {
	// BranchIfStub emits a conditional branch and returns its site.
	BranchIfStub(p *Prog, cond condition.C) int32

	// JumpStub emits an unconditional branch and returns its site.
	JumpStub(p *Prog) int32

	// UpdateBranches patches every site of a bound label.
	UpdateBranches(text []byte, l *link.L)
}

func label(p *Prog, l *link.L) {
	if debug.Enabled {
		debug.Printf("label at 0x%x", p.Text.Addr)
	}

	l.Bind(p.Text.Addr)
}

// Diamond emits a fork on cond followed by a join.  The taken arm runs when
// cond holds.  Both arms start and end with the register allocation state
// which was current before the fork.
func Diamond(p *Prog, b Brancher, cond condition.C, taken, notTaken func()) {
	var takenLabel, end link.L

	snapshot := p.Regs.Snapshot()

	if debug.Enabled {
		debug.Printf("diamond on %s", cond)
		debug.Depth++
	}

	takenLabel.AddSite(b.BranchIfStub(p, cond))

	notTaken()
	p.Regs.Reconcile(snapshot)
	end.AddSite(b.JumpStub(p))

	label(p, &takenLabel)
	taken()
	p.Regs.Reconcile(snapshot)

	label(p, &end)

	if debug.Enabled {
		debug.Depth--
		debug.Printf("diamond joined")
	}

	b.UpdateBranches(p.Text.Bytes(), &takenLabel)
	b.UpdateBranches(p.Text.Bytes(), &end)
}

// IfThen emits code which runs only when cond holds.
func IfThen(p *Prog, b Brancher, cond condition.C, then func()) {
	var end link.L

	snapshot := p.Regs.Snapshot()

	end.AddSite(b.BranchIfStub(p, condition.Inverted[cond]))
	then()
	p.Regs.Reconcile(snapshot)

	label(p, &end)
	b.UpdateBranches(p.Text.Bytes(), &end)
}
