// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides the error kinds used throughout the batching
// core, context-wrapped errors that carry a call stack, and helpers for
// logging and asserting on errors. It re-exports the commonly used parts
// of the standard [errors] package so that it can be imported in its place.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error represents an error with a base error and the call stack
// at which it was created.
type Error struct {
	Base  error
	Stack []string
}

// Wrap wraps the given error into an [*Error] carrying the call stack
// if [Debug] is on. It returns nil if the given error is nil and returns
// the error unchanged if it is already an [*Error].
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	res := &Error{Base: err}
	if Debug {
		res.Stack = CallerStack()
	}
	return res
}

// New returns a new error with the given text, wrapped via [Wrap].
func New(text string) error {
	return Wrap(errors.New(text))
}

// Errorf returns a new error with the given format and arguments,
// wrapped via [Wrap]. Use %w with one of the kind sentinels, such as
// [ErrInvalidArgument], so that callers can match on it with [Is].
func Errorf(format string, a ...any) error {
	return Wrap(fmt.Errorf(format, a...))
}

// Error returns the base error string, followed by the stack if present.
func (e *Error) Error() string {
	res := e.Base.Error()
	if len(e.Stack) > 0 {
		res += " (" + strings.Join(e.Stack, ": ") + ")"
	}
	return res
}

// Unwrap returns the underlying base error of the Error.
func (e *Error) Unwrap() error {
	return e.Base
}

// Is is [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join is [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
