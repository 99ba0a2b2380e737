// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"testing"

	"cogentcore.org/batch/base/errors"
	"github.com/stretchr/testify/assert"
)

func TestSpanRange(t *testing.T) {
	sr := SpanRange{Start: 4, Length: 8}
	assert.Equal(t, 12, sr.End())
	assert.False(t, sr.IsEmpty())
	assert.True(t, sr.Contains(SpanRange{Start: 4, Length: 8}))
	assert.True(t, sr.Contains(SpanRange{Start: 6, Length: 2}))
	assert.False(t, sr.Contains(SpanRange{Start: 6, Length: 7}))
	assert.Equal(t, "[4, 12)", sr.String())
	assert.True(t, SpanRange{Start: 3}.IsEmpty())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "Indexed", ContentIndexed.String())
	assert.Equal(t, "Additive", BlendAdditive.String())
	assert.True(t, BlendOpaque.IsOpaque())
	assert.False(t, BlendPremultiplied.IsOpaque())
}

func TestAssert(t *testing.T) {
	if !Checked {
		t.Skip("assertions are compiled out")
	}
	assert.NotPanics(t, func() { Assert(true, "fine") })
	defer func() {
		r := recover()
		err, ok := r.(error)
		assert.True(t, ok)
		assert.ErrorIs(t, err, errors.ErrContract)
		assert.Contains(t, err.Error(), "AddQuad: out of capacity")
	}()
	Assert(false, "AddQuad: out of capacity")
}
