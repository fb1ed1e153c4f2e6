// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !indebug

package in

const debugEnabled = false

func debugPrintInsn([]byte) {}
