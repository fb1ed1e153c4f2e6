// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package code

import (
	"encoding/binary"
)

// Buffer receives generated machine code.  Implementations may panic (via
// the pan zone) when they run out of space.
type Buffer interface {
	Bytes() []byte
	Extend(n int) []byte
	PutByte(byte)
}

// Buf is an optimized Buffer.  The cached length (Addr) avoids interface
// function calls when recording branch sites.
type Buf struct {
	Buffer
	Addr int32
}

func (buf *Buf) Extend(n int) (b []byte) {
	b = buf.Buffer.Extend(n)
	buf.Addr += int32(n)
	return
}

func (buf *Buf) PutByte(x byte) {
	buf.Buffer.PutByte(x)
	buf.Addr++
}

// PutUint16 in little-endian byte order.
func (buf *Buf) PutUint16(x uint16) {
	binary.LittleEndian.PutUint16(buf.Extend(2), x)
}

// PutUint32 in little-endian byte order.
func (buf *Buf) PutUint32(x uint32) {
	binary.LittleEndian.PutUint32(buf.Extend(4), x)
}
