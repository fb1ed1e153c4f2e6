// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opcode

// ExtIndex extracts the extended-op field of an instruction word.  The field
// is 7 bits wide in the 0x3xxx main-op group and 8 bits wide elsewhere.
func ExtIndex(word uint16) uint8 {
	if word>>12 == 3 {
		return uint8(word & 0x7f)
	}
	return uint8(word)
}

var loadStoreOps = [8]Op{Ls, Sl, Lsn, Sln, Lsm, Slm, Lsnm, Slnm}

// Decode an extended-op byte.  Every byte decodes to some operation.
func Decode(ext uint8) Op {
	switch ext >> 6 {
	case 0:
		switch {
		case ext < 0x04:
			return Nop
		case ext < 0x08:
			return Dr
		case ext < 0x0c:
			return Ir
		case ext < 0x10:
			return Nr
		case ext < 0x20:
			return Mv
		case ext&0x04 == 0:
			return S
		default:
			return Sn
		}

	case 1:
		if ext&0x04 == 0 {
			return L
		}
		return Ln

	case 2:
		return loadStoreOps[(ext>>1)&7]

	default:
		op := Ld
		if ext&3 == 3 {
			op = Ldax
		}
		if ext&0x04 != 0 {
			op += Ldn - Ld
		}
		if ext&0x08 != 0 {
			op += Ldm - Ld
		}
		return op
	}
}

// Encodings lists the extended-op bytes which decode to op.
func Encodings(op Op) (exts []uint8) {
	for i := 0; i < 256; i++ {
		if Decode(uint8(i)) == op {
			exts = append(exts, uint8(i))
		}
	}
	return
}

// Pattern describes the bit layout of an operation's encoding.
func Pattern(op Op) string {
	switch op {
	case Nop:
		return "0000 00xx"
	case Dr:
		return "0000 01rr"
	case Ir:
		return "0000 10rr"
	case Nr:
		return "0000 11rr"
	case Mv:
		return "0001 ddss"
	case S:
		return "001s s0dd"
	case Sn:
		return "001s s1dd"
	case L:
		return "01dd d0ss"
	case Ln:
		return "01dd d1ss"
	case Ld, Ldn, Ldm, Ldnm:
		return "11dr " + dualLoadBits(op-Ld) + "ss"
	case Ldax, Ldaxn, Ldaxm, Ldaxnm:
		return "11dr " + dualLoadBits(op-Ldax) + "11"
	default:
		v := uint8(op - Ls)
		return "10dd " + string([]byte{'0' + (v>>2)&1, '0' + (v>>1)&1, '0' + v&1}) + "s"
	}
}

func dualLoadBits(variant Op) string {
	return string([]byte{'0' + byte(variant>>1)&1, '0' + byte(variant)&1})
}
