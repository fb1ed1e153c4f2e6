// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsp

// Addressing register arithmetic.  The wrapping register wr describes a
// circular buffer of wr+1 words aligned to the next power of two; 0xffff
// (the reset value) yields plain 16-bit modular arithmetic.

// IncrementAddr returns ar+1, wrapped.
func IncrementAddr(ar, wr uint16) uint16 {
	a, w := uint32(ar), uint32(wr)

	n := a + 1
	if n^a > (w|1)<<1 {
		n -= w + 1
	}
	return uint16(n)
}

// DecrementAddr returns ar-1, wrapped.
func DecrementAddr(ar, wr uint16) uint16 {
	a, w := uint32(ar), uint32(wr)

	n := a + w
	if (n^a)&((w|1)<<1) > w {
		n -= w + 1
	}
	return uint16(n)
}

// IncreaseAddr returns ar+ix, wrapped.
func IncreaseAddr(ar, wr uint16, ix int16) uint16 {
	a, w, x := uint32(ar), uint32(wr), uint32(int32(ix))

	mx := (w | 1) << 1
	n := a + x
	carry := (n ^ a ^ x) & mx

	if ix >= 0 {
		if carry > w {
			n -= w + 1
		}
	} else {
		if ((n+w+1)^n)&carry <= w {
			n += w + 1
		}
	}
	return uint16(n)
}
