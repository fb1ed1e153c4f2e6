// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

const (
	// Opcode bits of some instructions are located at this offset in the ModRM
	// byte (ModRO part) or a standalone opcode byte.
	opcodeBase = 3
)

const (
	OR      = RM(0x0b)
	XOR     = RM(0x33)
	PUSHo   = O(0x50)
	POPo    = O(0x58)
	MOV16mr = RMdata16(0x89)
	MOV     = RM(0x8b)
	JEcd    = D2d(0x0f<<8 | 0x84)
	JNEcd   = D2d(0x0f<<8 | 0x85)
	MOVZX16 = RM2(0x0f<<8 | 0xb7)
	MOVSX16 = RM2(0x0f<<8 | 0xbf)
	MOVi    = OI(0xb8)
	SHLi    = MI(0xc1<<8 | 4<<opcodeBase)
	SHRi    = MI(0xc1<<8 | 5<<opcodeBase)
	MOV16i  = MI16(0xc7<<8 | 0<<opcodeBase)
	JMPcd   = Dd(0xe9)
	TESTi   = MI(0xf7<<16 | 0<<opcodeBase)
	CALL    = M(0xff<<8 | 2<<opcodeBase)
)
