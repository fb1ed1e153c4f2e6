// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pan carries compiler errors through panics.  Only errors raised via
// this zone are recovered by the public API; other panics propagate.
package pan

import (
	"import.name/pan"
)

var z = new(pan.Zone)

var Check = z.Check
var Panic = z.Panic
var Wrap = z.Wrap

// Error converts a recovered value into an error.  It returns nil if x is nil,
// and re-panics if x didn't originate from this zone.
func Error(x any) error {
	return z.Error(x)
}

func Must[T any](x T, err error) T {
	Check(err)
	return x
}
