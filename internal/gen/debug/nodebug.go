// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(debug || gendebug)

package debug

const Enabled = false

var Depth int

func Printf(format string, args ...any) {}
