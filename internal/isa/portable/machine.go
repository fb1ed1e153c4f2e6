// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package portable

import (
	"encoding/binary"

	"github.com/dspemu/extjit/dsp"
	"github.com/dspemu/extjit/internal/gen"
	"github.com/dspemu/extjit/internal/gen/reg"
	"github.com/dspemu/extjit/internal/isa/reglayout"
	"github.com/pkg/errors"
)

// Poison is written to host registers which a routine or hook is allowed to
// clobber.
const Poison = uint32(0xdeadbeef)

// Hooks are the interpreter entry points of generated code.
type Hooks interface {
	ExecuteExt(word uint16)
	ZeroWriteback(word uint16)
	ApplyWriteback(word uint16)
}

// Machine executes bytecode against DSP state.  Host register contents
// survive between Run calls, like they do between consecutive blocks of
// native code.
type Machine struct {
	State *dsp.State
	Hooks Hooks

	Regs [reglayout.Radix]uint32

	zero  bool
	stack []uint32
}

func NewMachine(s *dsp.State, hooks Hooks) *Machine {
	return &Machine{State: s, Hooks: hooks}
}

// Run text from start to end.
func (m *Machine) Run(text []byte) error {
	for pc := 0; pc < len(text); {
		op := opcode(text[pc])
		if !op.valid() {
			return errors.Errorf("invalid opcode 0x%02x at 0x%x", byte(op), pc)
		}

		size := op.size()
		if pc+size > len(text) {
			return errors.Errorf("truncated %s instruction at 0x%x", insns[op].name, pc)
		}

		a := text[pc+1 : pc+size]
		pc += size

		switch op {
		case opReadReg:
			m.Regs[a[0]] = uint32(m.State.ReadReg(dsp.Reg(a[1])))

		case opReadSat:
			v := m.State.ReadRegSaturated(dsp.Reg(a[1]))
			m.clobberResult()
			m.Regs[a[0]] = uint32(v)

		case opWriteReg:
			m.State.WriteReg(dsp.Reg(a[0]), uint16(m.Regs[a[1]]))

		case opWriteImm:
			m.State.WriteReg(dsp.Reg(a[0]), binary.LittleEndian.Uint16(a[1:]))

		case opIncrement:
			m.State.IncrementAddr(dsp.Reg(a[0]))
			m.clobberResult()

		case opDecrement:
			m.State.DecrementAddr(dsp.Reg(a[0]))
			m.clobberResult()

		case opIncrease:
			m.State.IncreaseAddr(dsp.Reg(a[0]))
			m.clobberResult()

		case opLoad:
			m.Regs[reg.Result] = uint32(m.State.Mem.Load(uint16(m.Regs[a[0]])))

		case opStore:
			m.State.Mem.Store(uint16(m.Regs[a[0]]), uint16(m.Regs[a[1]]))
			m.clobberResult()

		case opMove:
			m.Regs[a[0]] = m.Regs[a[1]]

		case opMoveImm:
			m.Regs[a[0]] = binary.LittleEndian.Uint32(a[1:])

		case opZeroExt16:
			m.Regs[a[0]] = uint32(uint16(m.Regs[a[0]]))

		case opSignExt16:
			m.Regs[a[0]] = uint32(int32(int16(m.Regs[a[0]])))

		case opShl:
			m.Regs[a[0]] <<= a[1] & 31

		case opShr:
			m.Regs[a[0]] >>= a[1] & 31

		case opOr:
			m.Regs[a[0]] |= m.Regs[a[1]]

		case opXor:
			m.Regs[a[0]] ^= m.Regs[a[1]]

		case opTest:
			m.zero = m.Regs[a[0]]&binary.LittleEndian.Uint32(a[1:]) == 0

		case opJz, opJnz, opJmp:
			if op == opJmp || (op == opJz) == m.zero {
				pc += int(int32(binary.LittleEndian.Uint32(a)))
				if pc < 0 || pc > len(text) {
					return errors.Errorf("branch target 0x%x out of range", pc)
				}
			}

		case opPush:
			m.stack = append(m.stack, m.Regs[a[0]])

		case opPop:
			n := len(m.stack) - 1
			if n < 0 {
				return errors.New("stack underflow")
			}
			m.Regs[a[0]] = m.stack[n]
			m.stack = m.stack[:n]

		case opCall:
			if err := m.call(gen.Hook(a[0]), binary.LittleEndian.Uint16(a[1:])); err != nil {
				return err
			}
		}
	}

	if len(m.stack) != 0 {
		return errors.Errorf("%d values left on stack", len(m.stack))
	}
	return nil
}

func (m *Machine) call(hook gen.Hook, word uint16) error {
	if m.Hooks == nil {
		return errors.Errorf("%s hook called without interpreter", hook)
	}

	switch hook {
	case gen.HookExecute:
		m.Hooks.ExecuteExt(word)

	case gen.HookZeroWriteback:
		m.Hooks.ZeroWriteback(word)

	case gen.HookApplyWriteback:
		m.Hooks.ApplyWriteback(word)

	default:
		return errors.Errorf("invalid hook %d", hook)
	}

	for r := range m.Regs {
		if reglayout.CallerSaved&(1<<r) != 0 {
			m.Regs[r] = Poison
		}
	}
	return nil
}

func (m *Machine) clobberResult() {
	m.Regs[reg.Result] = Poison
}
