// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"github.com/dspemu/extjit/internal/gen"
	"github.com/dspemu/extjit/internal/gen/debug"
)

// genHookCall calls into the interpreter.  Live temporaries are saved
// around the call.
func genHookCall(c *Coder, hook gen.Hook, word uint16) {
	live := c.Prog.Regs.Live()

	if debug.Enabled {
		debug.Printf("%s hook call saving %d registers", hook, len(live))
	}

	c.ISA.PushRegs(&c.Prog, live)
	c.ISA.CallHook(&c.Prog, hook, word)
	c.ISA.PopRegs(&c.Prog, live)
}
