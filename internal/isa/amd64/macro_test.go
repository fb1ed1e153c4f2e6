// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package amd64

import (
	"testing"

	"github.com/dspemu/extjit/buffer"
	"github.com/dspemu/extjit/dsp"
	"github.com/dspemu/extjit/internal/gen"
	"github.com/dspemu/extjit/internal/gen/codegen"
	"github.com/dspemu/extjit/internal/gen/condition"
	"github.com/dspemu/extjit/internal/gen/reg"
	"github.com/dspemu/extjit/internal/gen/regalloc"
	"github.com/dspemu/extjit/internal/isa"
	"github.com/dspemu/extjit/internal/opcode"
	"github.com/dspemu/extjit/internal/pan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/arch/x86/x86asm"
)

var _ isa.MacroAssembler = MacroAssembler{}

func newProg() *gen.Prog {
	p := new(gen.Prog)
	p.Text.Buffer = buffer.NewDynamic(nil)
	p.Regs = regalloc.Make()
	return p
}

type decoded struct {
	addr int
	x86asm.Inst
}

func disassemble(t *testing.T, text []byte) (insns []decoded) {
	t.Helper()

	for addr := 0; addr < len(text); {
		inst, err := x86asm.Decode(text[addr:], 64)
		require.NoError(t, err, "at 0x%x", addr)
		insns = append(insns, decoded{addr, inst})
		addr += inst.Len
	}
	return
}

func mem(base x86asm.Reg, disp int64) x86asm.Mem {
	return x86asm.Mem{Base: base, Disp: disp}
}

func expect(t *testing.T, insns []decoded, ops []x86asm.Op, args []x86asm.Args) {
	t.Helper()

	require.Len(t, insns, len(ops))
	for i, x := range insns {
		assert.Equal(t, ops[i], x.Op, "instruction %d", i)
		assert.Equal(t, args[i], x.Args, "instruction %d", i)
	}
}

func TestReadReg(t *testing.T) {
	p := newProg()
	asm.ReadReg(p, reg.R(6), dsp.ACM1, false)
	asm.ReadReg(p, reg.R(8), dsp.ACM1, true)
	asm.ReadReg(p, reg.R(9), dsp.AXL0, true)

	expect(t, disassemble(t, p.Text.Bytes()),
		[]x86asm.Op{x86asm.MOVZX, x86asm.MOV, x86asm.CALL, x86asm.MOV, x86asm.MOVZX},
		[]x86asm.Args{
			{x86asm.ESI, mem(x86asm.R15, 0x3e)},
			{x86asm.EAX, x86asm.Imm(0x1f)},
			{mem(x86asm.R14, 0)},
			{x86asm.R8L, x86asm.EAX},
			{x86asm.R9L, mem(x86asm.R15, 0x30)},
		})
}

func TestWriteReg(t *testing.T) {
	p := newProg()
	asm.WriteReg(p, dsp.AR0, RegStage)
	asm.WriteRegImm(p, dsp.ACL1, 0)

	expect(t, disassemble(t, p.Text.Bytes()),
		[]x86asm.Op{x86asm.MOV, x86asm.MOV},
		[]x86asm.Args{
			{mem(x86asm.R15, 0), x86asm.BX},
			{mem(x86asm.R15, 0x3a), x86asm.Imm(0)},
		})
}

func TestAddrRoutines(t *testing.T) {
	p := newProg()
	asm.IncrementAddr(p, dsp.AR3)
	asm.DecrementAddr(p, dsp.AR0)
	asm.IncreaseAddr(p, dsp.AR2)

	expect(t, disassemble(t, p.Text.Bytes()),
		[]x86asm.Op{x86asm.MOV, x86asm.CALL, x86asm.MOV, x86asm.CALL, x86asm.MOV, x86asm.CALL},
		[]x86asm.Args{
			{x86asm.EAX, x86asm.Imm(3)},
			{mem(x86asm.R14, 8)},
			{x86asm.EAX, x86asm.Imm(0)},
			{mem(x86asm.R14, 16)},
			{x86asm.EAX, x86asm.Imm(2)},
			{mem(x86asm.R14, 24)},
		})
}

func TestMemory(t *testing.T) {
	p := newProg()
	asm.Load(p, reg.R(6))
	asm.Load(p, RegResult)
	asm.Store(p, reg.R(7), RegResult)

	expect(t, disassemble(t, p.Text.Bytes()),
		[]x86asm.Op{x86asm.MOV, x86asm.CALL, x86asm.CALL, x86asm.MOV, x86asm.MOV, x86asm.CALL},
		[]x86asm.Args{
			{x86asm.EAX, x86asm.ESI},
			{mem(x86asm.R14, 32)},
			{mem(x86asm.R14, 32)},
			{x86asm.EDX, x86asm.EAX},
			{x86asm.EAX, x86asm.EDI},
			{mem(x86asm.R14, 40)},
		})
}

func zoneErr(f func()) (err error) {
	defer func() {
		err = pan.Error(recover())
	}()

	f()
	return
}

func TestStoreOverlap(t *testing.T) {
	p := newProg()
	assert.ErrorIs(t, zoneErr(func() { asm.Store(p, RegArg, reg.R(6)) }), errStoreOverlap)
	assert.ErrorIs(t, zoneErr(func() { asm.Store(p, reg.R(6), reg.R(6)) }), errStoreOverlap)
}

func TestBranchConditionUnsupported(t *testing.T) {
	p := newProg()
	assert.Error(t, zoneErr(func() { asm.BranchIfStub(p, condition.C(99)) }))
}

func TestCallHook(t *testing.T) {
	p := newProg()
	live := []reg.R{6, 9, 10}
	asm.PushRegs(p, live)
	asm.CallHook(p, gen.HookApplyWriteback, 0x8011)
	asm.PopRegs(p, live)

	expect(t, disassemble(t, p.Text.Bytes()),
		[]x86asm.Op{x86asm.PUSH, x86asm.PUSH, x86asm.PUSH, x86asm.MOV, x86asm.CALL, x86asm.POP, x86asm.POP, x86asm.POP},
		[]x86asm.Args{
			{x86asm.RSI},
			{x86asm.R9},
			{x86asm.R10},
			{x86asm.EDI, x86asm.Imm(0x8011)},
			{mem(x86asm.R14, 64)},
			{x86asm.R10},
			{x86asm.R9},
			{x86asm.RSI},
		})
}

func TestDiamond(t *testing.T) {
	p := newProg()
	asm.TestImm(p, RegScratch, uint32(dsp.PageMask))
	gen.Diamond(p, asm, condition.Zero,
		func() { asm.MoveImm(p, RegStage, 1) },
		func() { asm.MoveImm(p, RegStage, 2) })
	asm.ShiftLeft(p, RegStage, 16)

	insns := disassemble(t, p.Text.Bytes())
	expect(t, insns,
		[]x86asm.Op{x86asm.TEST, x86asm.JE, x86asm.MOV, x86asm.JMP, x86asm.MOV, x86asm.SHL},
		[]x86asm.Args{
			{x86asm.ECX, x86asm.Imm(0xfc00)},
			{x86asm.Rel(5 + 5)},
			{x86asm.EBX, x86asm.Imm(2)},
			{x86asm.Rel(5)},
			{x86asm.EBX, x86asm.Imm(1)},
			{x86asm.EBX, x86asm.Imm(16)},
		})
}

func TestRoutineNames(t *testing.T) {
	assert.Equal(t, "read_saturated", RoutineReadSaturated.String())
	assert.Equal(t, "execute", RoutineHooks.String())
	assert.Equal(t, "apply_writeback", (NumRoutines - 1).String())
	assert.Equal(t, "<invalid routine>", NumRoutines.String())

	for r := Routine(0); r < NumRoutines; r++ {
		x, ok := RoutineAt(int64(RoutineDisp(r)))
		assert.True(t, ok)
		assert.Equal(t, r, x)
	}

	_, ok := RoutineAt(4)
	assert.False(t, ok)
	_, ok = RoutineAt(int64(RoutineDisp(NumRoutines)))
	assert.False(t, ok)
}

func allOps() (ops []opcode.Op) {
	for op := opcode.Op(0); op < opcode.NumOps; op++ {
		ops = append(ops, op)
	}
	return
}

// TestCompileAll compiles every extended op and checks that the result is
// well-formed machine code which only touches the register file and the
// routine table.
func TestCompileAll(t *testing.T) {
	tables := map[string]opcode.Table{
		"native":   opcode.MakeTable(),
		"fallback": opcode.MakeTable(allOps()...),
	}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			for ext := 0; ext < 256; ext++ {
				c := codegen.Coder{ISA: asm}
				c.Prog.Text.Buffer = buffer.NewDynamic(nil)
				c.Prog.Regs = regalloc.Make()

				in := codegen.MakeInsn(uint16(ext), table.Entry(uint8(ext)))
				c.Begin(&in)
				c.ZeroWriteback(&in)
				c.Flush(&in)
				c.Prog.Regs.CheckNoneAllocated()

				checkText(t, ext, c.Prog.Text.Bytes())
			}
		})
	}
}

func checkText(t *testing.T, ext int, text []byte) {
	t.Helper()

	insns := disassemble(t, text)

	boundaries := map[int]bool{len(text): true}
	for _, x := range insns {
		boundaries[x.addr] = true
	}

	var depth int

	for _, x := range insns {
		for _, arg := range x.Args {
			switch a := arg.(type) {
			case x86asm.Rel:
				target := x.addr + x.Len + int(a)
				assert.True(t, boundaries[target], "ext 0x%02x: branch at 0x%x to 0x%x", ext, x.addr, target)

			case x86asm.Mem:
				switch a.Base {
				case x86asm.R14:
					assert.Equal(t, x86asm.CALL, x.Op)
					_, ok := RoutineAt(a.Disp)
					assert.True(t, ok, "ext 0x%02x: routine displacement %d", ext, a.Disp)

				case x86asm.R15:
					assert.Equal(t, 2, x.MemBytes)
					assert.Zero(t, a.Disp&1)
					assert.Less(t, a.Disp, int64(dsp.NumRegs*2))

				default:
					t.Errorf("ext 0x%02x: memory operand %v", ext, a)
				}
			}
		}

		switch x.Op {
		case x86asm.PUSH:
			depth++
		case x86asm.POP:
			depth--
		}
		assert.GreaterOrEqual(t, depth, 0)
	}

	assert.Zero(t, depth, "ext 0x%02x: unbalanced stack", ext)
}
