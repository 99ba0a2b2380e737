// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2(t *testing.T) {
	b := B2Empty()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, Vector2{}, b.Size())

	b.ExpandByPoint(Vec2(10, 20))
	b.ExpandByPoint(Vec2(-5, 40))
	assert.False(t, b.IsEmpty())
	assert.Equal(t, B2(-5, 20, 10, 40), b)
	assert.Equal(t, Vec2(15, 20), b.Size())
	assert.True(t, b.ContainsPoint(Vec2(0, 30)))
	assert.False(t, b.ContainsPoint(Vec2(0, 50)))

	b.ExpandByBox(B2Empty())
	assert.Equal(t, B2(-5, 20, 10, 40), b)
	b.ExpandByBox(B2(0, 0, 1, 1))
	assert.Equal(t, B2(-5, 0, 10, 40), b)
}

func TestVector4Color(t *testing.T) {
	v := NewVector4Color(color.RGBA{255, 0, 0, 255})
	assert.Equal(t, Vec4(1, 0, 0, 1), v)
	assert.True(t, v.IsOpaque())
	assert.False(t, Vec4(1, 1, 1, 0.5).IsOpaque())
	assert.Equal(t, Vec3(1, 2, 3), Vector3FromVector2(Vec2(1, 2), 3))
	assert.Equal(t, float32(3), Abs(-3))
	assert.True(t, IsInf(Infinity, 1))
}
