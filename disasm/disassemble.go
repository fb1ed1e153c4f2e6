// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm lists generated code with branch labels and DSP register
// annotations.
package disasm

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/dspemu/extjit"
	"github.com/dspemu/extjit/dsp"
	"github.com/dspemu/extjit/internal/isa/amd64"
	"github.com/dspemu/extjit/internal/isa/portable"
	"github.com/pkg/errors"
	"golang.org/x/arch/x86/x86asm"
)

// Insn is a decoded instruction.  Target is the branch target address, or -1.
type Insn struct {
	Addr     int
	Len      int
	Mnemonic string
	OpStr    string
	Comment  string
	Target   int
}

// Disassemble text generated by the named backend.
func Disassemble(backend string, text []byte) ([]Insn, error) {
	switch backend {
	case extjit.BackendAMD64:
		return disassembleAMD64(text)

	case extjit.BackendPortable:
		return disassemblePortable(text)

	default:
		return nil, errors.Errorf("unknown backend: %s", backend)
	}
}

func disassembleAMD64(text []byte) (insns []Insn, err error) {
	for addr := 0; addr < len(text); {
		inst, err := x86asm.Decode(text[addr:], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "decode at 0x%x", addr)
		}

		insn := Insn{
			Addr:   addr,
			Len:    inst.Len,
			Target: -1,
		}

		s := x86asm.IntelSyntax(inst, uint64(addr), nil)
		insn.Mnemonic, insn.OpStr, _ = strings.Cut(s, " ")

		for _, arg := range inst.Args {
			switch a := arg.(type) {
			case x86asm.Rel:
				insn.Target = addr + inst.Len + int(a)

			case x86asm.Mem:
				switch a.Base {
				case x86asm.R14:
					if r, ok := amd64.RoutineAt(a.Disp); ok {
						insn.Comment = r.String()
					}

				case x86asm.R15:
					insn.Comment = dsp.Reg(a.Disp / 2).String()
				}
			}
		}

		insns = append(insns, insn)
		addr += inst.Len
	}
	return
}

func disassemblePortable(text []byte) (insns []Insn, err error) {
	list, err := portable.Disassemble(text)
	if err != nil {
		return nil, err
	}

	for _, x := range list {
		insn := Insn{
			Addr:   x.Addr,
			Len:    x.Len,
			Target: -1,
		}

		mnemonic, opstr, _ := strings.Cut(x.Text, " ")
		insn.Mnemonic = mnemonic
		insn.OpStr = strings.TrimSpace(opstr)

		switch mnemonic {
		case "jz", "jnz", "jmp":
			addr, err := strconv.ParseUint(insn.OpStr, 0, 32)
			if err != nil {
				return nil, errors.Wrapf(err, "branch target at 0x%x", x.Addr)
			}
			insn.Target = int(addr)
		}

		insns = append(insns, insn)
	}
	return
}

// Fprint a listing.  Branch targets are replaced with local labels.
func Fprint(w io.Writer, backend string, text []byte) error {
	insns, err := Disassemble(backend, text)
	if err != nil {
		return err
	}

	var addrs []int
	seen := make(map[int]bool)
	for _, insn := range insns {
		if insn.Target >= 0 && !seen[insn.Target] {
			seen[insn.Target] = true
			addrs = append(addrs, insn.Target)
		}
	}
	sort.Ints(addrs)

	labels := make(map[int]string)
	for i, addr := range addrs {
		labels[addr] = fmt.Sprintf(".L%d", i)
	}

	for _, insn := range insns {
		if name, found := labels[insn.Addr]; found {
			fmt.Fprintf(w, "%s:\n", name)
		}

		opstr := insn.OpStr
		if insn.Target >= 0 {
			opstr = labels[insn.Target]
		}

		line := fmt.Sprintf("%08x:\t%s\t%s", insn.Addr, insn.Mnemonic, opstr)
		if insn.Comment != "" {
			line += "\t; " + insn.Comment
		}
		fmt.Fprintln(w, line)
	}

	if name, found := labels[len(text)]; found {
		fmt.Fprintf(w, "%s:\n", name)
	}
	return nil
}
