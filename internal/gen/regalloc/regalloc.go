// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package regalloc hands out host registers for temporary values.
package regalloc

import (
	"github.com/dspemu/extjit/internal/gen/reg"
	"github.com/dspemu/extjit/internal/isa/reglayout"
	"github.com/dspemu/extjit/internal/pan"
	"github.com/pkg/errors"
)

// ErrExhausted is raised when no temporary register is available.
var ErrExhausted = errors.New("host register cache exhausted")

const availMask = uint32(1<<(reglayout.AllocIntLast+1)) - uint32(1<<reglayout.AllocIntFirst)

// State is a snapshot of the allocation bitmap.
type State struct {
	free uint32
}

// Allocator tracks allocatable host registers.  The zero value is not usable.
type Allocator struct {
	avail uint32
	free  uint32
}

func Make() Allocator {
	return Allocator{availMask, availMask}
}

// MakeLimited restricts allocation to the lowest n registers.
func MakeLimited(n int) Allocator {
	var mask uint32
	for r := reglayout.AllocIntFirst; r <= reglayout.AllocIntLast && n > 0; r++ {
		mask |= 1 << r
		n--
	}
	return Allocator{mask, mask}
}

// Alloc the lowest free register.  Panics with ErrExhausted.
func (a *Allocator) Alloc() reg.R {
	for r := reg.R(reglayout.AllocIntFirst); r <= reglayout.AllocIntLast; r++ {
		mask := uint32(1) << r
		if a.free&mask != 0 {
			a.free &^= mask
			return r
		}
	}

	pan.Panic(ErrExhausted)
	panic("unreachable")
}

func (a *Allocator) Free(r reg.R) {
	mask := uint32(1) << r

	if a.avail&mask == 0 {
		return
	}

	if a.free&mask != 0 {
		pan.Panic(errors.Errorf("register %s freed twice", r))
	}

	a.free |= mask
}

// Allocated indicates if the register is currently handed out.
func (a *Allocator) Allocated(r reg.R) bool {
	mask := uint32(1) << r
	return (a.avail&^a.free)&mask != 0
}

// Live registers in ascending order.
func (a *Allocator) Live() (regs []reg.R) {
	live := a.avail &^ a.free
	for r := reg.R(0); live != 0; r++ {
		if live&1 != 0 {
			regs = append(regs, r)
		}
		live >>= 1
	}
	return
}

// Snapshot the allocation state before a control flow fork.
func (a *Allocator) Snapshot() State {
	return State{a.free}
}

// Reconcile the allocation state at the end of a fork arm.  Registers
// allocated since the snapshot are released.  Registers which were live at
// the snapshot must still be live.
func (a *Allocator) Reconcile(s State) {
	if lost := a.free &^ s.free; lost != 0 {
		pan.Panic(errors.Errorf("registers freed inside fork arm: %08x", lost))
	}

	a.free = s.free
}

// Matches reports whether the allocation state equals a snapshot.
func (a *Allocator) Matches(s State) bool {
	return a.free == s.free
}

func (a *Allocator) CheckNoneAllocated() {
	if a.free != a.avail {
		pan.Panic(errors.Errorf("registers still allocated at end of instruction: %08x", a.avail&^a.free))
	}
}
