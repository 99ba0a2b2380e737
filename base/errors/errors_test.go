// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKinds(t *testing.T) {
	err := Errorf("handles.Vector.Get: stale handle %d: %w", 7, ErrInvalidArgument)
	assert.True(t, Is(err, ErrInvalidArgument))
	assert.False(t, Is(err, ErrIndexOutOfRange))
	assert.Equal(t, ErrInvalidArgument, Kind(err))

	var e *Error
	assert.True(t, As(err, &e))
	assert.Contains(t, err.Error(), "stale handle 7")

	assert.Nil(t, Wrap(nil))
	assert.Nil(t, Kind(fmt.Errorf("plain")))
	assert.Same(t, err, Wrap(err))
}

func TestStack(t *testing.T) {
	old := Debug
	Debug = true
	defer func() { Debug = old }()

	err := New("boom")
	var e *Error
	assert.True(t, As(err, &e))
	assert.NotEmpty(t, e.Stack)
	assert.Contains(t, e.Stack[0], "errors_test.go")
}

func TestMust(t *testing.T) {
	assert.Panics(t, func() { Must(New("boom")) })
	assert.NotPanics(t, func() { Must(nil) })
	assert.Equal(t, 3, Must1(3, nil))
	assert.Equal(t, 3, Log1(3, New("logged")))
	assert.Equal(t, 4, Ignore1(4, New("ignored")))
}
