// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dspemu/extjit/errors"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand(new(options))
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestDecode(t *testing.T) {
	out := execute(t, "decode", "0x0011", "0x00c0")

	for _, s := range []string{"mv ax0.l, ac1.l", "ld ax0.l, ax1.l, @ar0", "move", "dual-load", "native"} {
		if !strings.Contains(out, s) {
			t.Errorf("output lacks %q:\n%s", s, out)
		}
	}
}

func TestDecodeInterpretConfig(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "dspext.toml")
	if err := os.WriteFile(filename, []byte("[compiler]\ninterpret = [\"mv\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := execute(t, "decode", "--config", filename, "0x0011")
	if !strings.Contains(out, "fallback") {
		t.Errorf("output:\n%s", out)
	}
}

func TestCompile(t *testing.T) {
	out := execute(t, "compile", "--backend", "amd64", "0x00c0")
	if !strings.Contains(out, "; 0x00c0:") || !strings.Contains(out, "call") {
		t.Errorf("output:\n%s", out)
	}

	out = execute(t, "compile", "--backend", "portable", "0x0011")
	if !strings.Contains(out, "; 0x0011:") {
		t.Errorf("output:\n%s", out)
	}
}

func TestRun(t *testing.T) {
	out := execute(t, "run",
		"--set", "ar0=0x100",
		"--set", "ar3=0x103",
		"--mem", "0x100=0xcafe",
		"--mem", "0x103=0xbeef",
		"0x00c0")

	for _, s := range []string{
		"ar0      0x0100 -> 0x0101",
		"ar3      0x0103 -> 0x0104",
		"ax0.l    0x0000 -> 0xcafe",
		"ax1.l    0x0000 -> 0xcafe",
		"load     [0x0100]",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("output lacks %q:\n%s", s, out)
		}
	}
}

func TestRunStore(t *testing.T) {
	// s @ar0, ac0.m
	out := execute(t, "run", "--set", "ar0=0x20", "--set", "ac0.m=0x1234", "0x0030")
	if !strings.Contains(out, "store    [0x0020] 0x1234") {
		t.Errorf("output:\n%s", out)
	}
}

func TestTable(t *testing.T) {
	out := execute(t, "table")

	for _, s := range []string{"extended ops", "dual-load", "ldax", "encodings"} {
		if !strings.Contains(out, s) {
			t.Errorf("output lacks %q:\n%s", s, out)
		}
	}
}

func TestBadWord(t *testing.T) {
	cmd := newRootCommand(new(options))
	cmd.SetArgs([]string{"decode", "0x10000"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	if cmd.Execute() == nil {
		t.Error("out-of-range word accepted")
	}
}

func TestConfigErrors(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "dspext.toml")
	if err := os.WriteFile(filename, []byte("[compiler]\ninterpret = [\"nope\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"decode", "table"} {
		args := []string{name, "--config", filename}
		if name == "decode" {
			args = append(args, "0x0011")
		}

		cmd := newRootCommand(new(options))
		cmd.SetArgs(args)
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		if err := cmd.Execute(); errors.AsConfigError(err) == nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}
