// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package amd64

import (
	"encoding/binary"

	"github.com/dspemu/extjit/internal/gen/link"
)

// UpdateBranches modifies 32-bit relocations of JMP and Jcc instructions.
func (MacroAssembler) UpdateBranches(text []byte, l *link.L) {
	labelAddr := l.FinalAddr()
	for _, originAddr := range l.Sites {
		updateAddr32(text, originAddr, labelAddr-originAddr)
	}
}

func updateAddr32(text []byte, addr, value int32) {
	binary.LittleEndian.PutUint32(text[addr-4:addr], uint32(value))
}
