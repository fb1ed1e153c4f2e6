// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package condition

// C is the outcome of a test instruction.
type C int

const (
	Zero = C(iota) // tested bits are all clear (or compared values are equal)
	NonZero
)

var Inverted = [2]C{
	Zero:    NonZero,
	NonZero: Zero,
}

var strings = []string{
	Zero:    "zero",
	NonZero: "non-zero",
}

func (f C) String() string {
	if i := int(f); i < len(strings) {
		return strings[i]
	} else {
		return "<invalid condition>"
	}
}
