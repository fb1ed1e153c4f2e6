// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package extjit compiles the extended-operation field of DSP instruction
// words into host machine code.
//
// An extended op runs in parallel with the main op of the same instruction:
// it reads register values as they were before the instruction, and its
// register writes become visible only after the main op has read its
// operands.  The Compiler implements this with a deferred write-back:
//
//	c.Begin(word)  // extended op reads, memory accesses, staging
//	c.Emit(mainOp) // caller-generated main op
//	c.Flush()      // staged register writes
//
// Ops which are not compiled natively (see Config.Interpret) call back into
// an interpreter through a routine table.
//
// # Errors
//
// Configuration errors implement the ConfigError method and buffer size
// errors implement the BufferSizeLimit method; see the errors subpackage.
// Other errors indicate a bug in the compiler.
package extjit
