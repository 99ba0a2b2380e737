// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Stack returns the stack trace up to the caller of the function
// that called Stack, as a slice of frames.
func Stack() []runtime.Frame {
	callers := make([]uintptr, 10)
	n := runtime.Callers(4, callers)
	// Return now to avoid processing the zero Frame that would
	// otherwise be returned by frames.Next below.
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(callers[:n])
	res := []runtime.Frame{}
	for {
		frame, more := frames.Next()
		// Stop unwinding when we enter package runtime or test,
		// as we only care about errors in the program.
		if strings.Contains(frame.File, "runtime/") || strings.Contains(frame.File, "testing/") {
			break
		}
		res = append(res, frame)
		if !more {
			break
		}
	}
	return res
}

// CallerStack returns the stack of the code that created an error
// as short "file.go:line" strings, innermost first.
func CallerStack() []string {
	frames := Stack()
	res := make([]string, 0, len(frames))
	for _, f := range frames {
		if strings.HasSuffix(f.File, "base/errors/errors.go") || strings.HasSuffix(f.File, "base/errors/stack.go") {
			continue
		}
		res = append(res, filepath.Base(f.File)+":"+strconv.Itoa(f.Line))
	}
	return res
}
