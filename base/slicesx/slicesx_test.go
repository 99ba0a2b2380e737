// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slicesx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLength(t *testing.T) {
	var s []int
	s = SetLength(s, 3)
	assert.Equal(t, 3, len(s))

	s[2] = 2
	s = SetLength(s, 40)
	assert.Equal(t, 40, len(s))
	assert.Equal(t, 2, s[2])

	s = SetLength(s, 4)
	assert.Equal(t, 4, len(s))
	assert.Equal(t, 2, s[2])

	s[3] = 3
	s = SetLength(s, 2)
	s = SetLength(s, 4)
	assert.Equal(t, 0, s[3])
}

func TestRoundUp(t *testing.T) {
	assert.Equal(t, 0, RoundUp(0, 16))
	assert.Equal(t, 16, RoundUp(1, 16))
	assert.Equal(t, 16, RoundUp(16, 16))
	assert.Equal(t, 32, RoundUp(17, 16))
	assert.Equal(t, 5, RoundUp(5, 1))
}

func TestGrowLength(t *testing.T) {
	s := []int{1, 2}
	s = GrowLength(s, 1, 8)
	assert.Equal(t, 2, len(s))
	s = GrowLength(s, 3, 8)
	assert.Equal(t, 8, len(s))
	assert.Equal(t, []int{1, 2}, s[:2])
}
