// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors exports error classification without unnecessary
// dependencies.
//
// Errors returned by the compiler are either configuration errors, buffer
// size limit errors, or internal compiler errors (broken invariants of the
// code generator).  Configuration and buffer errors can be recognized with
// the interfaces declared here; anything else indicates a bug.
package errors

import (
	"errors"
)

// ConfigError indicates that the compiler configuration is invalid.  It may
// wrap an underlying error (such as a TOML syntax error).
type ConfigError interface {
	error
	ConfigError() string
}

// BufferError indicates that generated code doesn't fit in the target buffer.
type BufferError interface {
	error
	BufferSizeLimit() string
}

// AsConfigError returns the error if it is a ConfigError or wraps one.
func AsConfigError(err error) ConfigError {
	var e ConfigError
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// AsBufferError returns the error if it is a BufferError or wraps one.
func AsBufferError(err error) BufferError {
	var e BufferError
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// Internal reports whether err is neither a ConfigError nor a BufferError.
func Internal(err error) bool {
	return err != nil && AsConfigError(err) == nil && AsBufferError(err) == nil
}
