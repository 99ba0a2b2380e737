// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image/color"
)

// Vector4 is a vector/point in homogeneous coordinates with X, Y, Z and W components.
// It is also used for normalized RGBA colors.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vec4 returns a new [Vector4] with the given x, y, z, and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// NewVector4Color returns a [Vector4] from the given Go color,
// with components normalized to 0-1 and alpha premultiplied
// as in [color.Color.RGBA].
func NewVector4Color(clr color.Color) Vector4 {
	r, g, b, a := clr.RGBA()
	return Vec4(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}

// Set sets this vector X, Y, Z and W components.
func (v *Vector4) Set(x, y, z, w float32) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// IsOpaque returns whether the W (alpha) component is at least 1.
func (v Vector4) IsOpaque() bool {
	return v.W >= 1
}
