// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package handles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleBits(t *testing.T) {
	h := MakeHandle(0x123456, 0x7f)
	assert.Equal(t, 0x123456, h.Index())
	assert.Equal(t, uint8(0x7f), h.Version())

	h = MakeHandle(5, 0x80)
	assert.Less(t, int32(h), int32(0), "high versions are negative")
	assert.Equal(t, 5, h.Index())
	assert.Equal(t, uint8(0x80), h.Version())

	assert.Equal(t, IndexMask, Invalid.Index())
	assert.Equal(t, uint8(0xff), Invalid.Version())
	assert.Equal(t, "Handle(invalid)", Invalid.String())
	assert.Equal(t, "Handle(3 v1)", MakeHandle(3, 1).String())
}

func TestNextVersion(t *testing.T) {
	h := MakeHandle(MaxCapacity-1, 0)
	seen := map[uint8]bool{}
	for range 300 {
		h = h.NextVersion()
		assert.NotEqual(t, Invalid, h)
		assert.Equal(t, MaxCapacity-1, h.Index())
		seen[h.Version()] = true
	}
	assert.Len(t, seen, MaxVersion+1)
	assert.Equal(t, uint8(0), MakeHandle(1, MaxVersion).NextVersion().Version())
}
