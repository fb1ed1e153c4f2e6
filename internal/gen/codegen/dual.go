// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codegen

import (
	"github.com/dspemu/extjit/dsp"
)

// 10dd mnls: l selects store via ar0 and load via ar3 (sl variants) instead
// of the opposite, n advances ar0 by ix0 and m advances ar3 by ix3.
func genLoadStore(c *Coder, in *Insn, ext uint8) {
	dst := dsp.AXL0 + dsp.Reg((ext>>4)&3)
	src := dsp.ACM0 + dsp.Reg(ext&1)

	storeAR, loadAR := dsp.AR3, dsp.AR0
	if ext&0x02 != 0 {
		storeAR, loadAR = dsp.AR0, dsp.AR3
	}

	store(c, storeAR, src)
	stageFromMem(c, in, dst, loadAR)

	advance(c, dsp.AR3, ext&0x08 != 0)
	advance(c, dsp.AR0, ext&0x04 != 0)
}
