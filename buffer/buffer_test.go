// Copyright (c) 2026 The extjit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"errors"
	"testing"

	"github.com/dspemu/extjit/internal/pan"
)

func catch(f func()) (err error) {
	defer func() { err = pan.Error(recover()) }()
	f()
	return
}

func TestDynamic(t *testing.T) {
	d := NewDynamic(nil)

	for i := 0; i < 100; i++ {
		d.PutByte(byte(i))
	}
	copy(d.Extend(3), []byte{1, 2, 3})

	if d.Len() != 103 {
		t.Fatal(d.Len())
	}
	if b := d.Bytes(); b[99] != 99 || b[102] != 3 {
		t.Fatal(b[99:])
	}

	d.Reset()
	if d.Len() != 0 {
		t.Fatal(d.Len())
	}
}

func TestLimited(t *testing.T) {
	l := NewLimited(make([]byte, 0, 2), 5)

	if err := catch(func() { l.Extend(4) }); err != nil {
		t.Fatal(err)
	}
	if err := catch(func() { l.PutByte(0xcc) }); err != nil {
		t.Fatal(err)
	}
	if l.Len() != 5 {
		t.Fatal(l.Len())
	}

	err := catch(func() { l.PutByte(0xcc) })
	if !errors.Is(err, ErrSizeLimit) {
		t.Fatal(err)
	}

	err = catch(func() { l.Extend(1) })
	if !errors.Is(err, ErrSizeLimit) {
		t.Fatal(err)
	}

	l.Reset()
	if err := catch(func() { l.Extend(5) }); err != nil {
		t.Fatal(err)
	}
}

func TestStatic(t *testing.T) {
	s := NewStatic(make([]byte, 1, 4))

	if err := catch(func() { s.Extend(3) }); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 4 || s.Cap() != 4 {
		t.Fatal(s.Len(), s.Cap())
	}

	err := catch(func() { s.PutByte(0) })
	if !errors.Is(err, ErrStaticSize) {
		t.Fatal(err)
	}

	var limit interface{ BufferSizeLimit() string }
	if !errors.As(err, &limit) {
		t.Fatal("size error doesn't implement BufferSizeLimit")
	}
}
