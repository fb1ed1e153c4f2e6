// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reg

import (
	"fmt"

	"github.com/dspemu/extjit/internal/isa/reglayout"
)

// R is a host register.
type R byte

func (r R) String() string {
	return fmt.Sprintf("r%d", r)
}

const (
	Result  = R(reglayout.Result)
	Scratch = R(reglayout.Scratch)
	Arg     = R(reglayout.Arg)
	Stage   = R(reglayout.Stage)
)

// Bitmap of registers.
func Bitmap(regs ...R) (mask uint32) {
	for _, r := range regs {
		mask |= 1 << r
	}
	return
}
