// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package link

import (
	"github.com/dspemu/extjit/internal/pan"
	"github.com/pkg/errors"
)

// L is a branch target.  Sites are the text addresses immediately after
// branch instructions which jump to Addr.
type L struct {
	Sites []int32
	Addr  int32
	bound bool
}

func (l *L) AddSite(addr int32) {
	l.Sites = append(l.Sites, addr)
}

// Bind the label to a text address.
func (l *L) Bind(addr int32) {
	l.Addr = addr
	l.bound = true
}

func (l *L) Bound() bool {
	return l.bound
}

func (l *L) FinalAddr() int32 {
	if !l.bound {
		pan.Panic(errors.New("link address undefined while updating branch instruction"))
	}
	return l.Addr
}
