// Copyright (c) 2017 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package portable

import (
	"encoding/binary"

	"github.com/dspemu/extjit/internal/gen/link"
)

// UpdateBranches modifies 32-bit relocations of branch instructions.
func (MacroAssembler) UpdateBranches(text []byte, l *link.L) {
	labelAddr := l.FinalAddr()
	for _, site := range l.Sites {
		binary.LittleEndian.PutUint32(text[site-4:site], uint32(labelAddr-site))
	}
}
