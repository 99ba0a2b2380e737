// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides the slice growth helpers shared by the
// containers and batchers, beyond those in the standard [slices] package.
package slicesx

// RoundUp returns the smallest multiple of quantum that is >= n.
// A quantum <= 1 returns n unchanged.
func RoundUp(n, quantum int) int {
	if quantum <= 1 {
		return n
	}
	return ((n + quantum - 1) / quantum) * quantum
}

// SetLength sets the length of the given slice, re-using and preserving
// existing values to the extent possible. New elements are zero.
func SetLength[E any](s []E, n int) []E {
	if len(s) == n {
		return s
	}
	if s == nil {
		return make([]E, n)
	}
	if cap(s) < n {
		ns := make([]E, n)
		copy(ns, s)
		return ns
	}
	old := len(s)
	s = s[:n]
	if n > old {
		clear(s[old:])
	}
	return s
}

// GrowLength makes sure that the given slice has a length of at least
// need, growing it in whole chunks of the given size so that repeated
// small requests do not reallocate every time. Existing values are kept.
func GrowLength[E any](s []E, need, chunk int) []E {
	if need <= len(s) {
		return s
	}
	return SetLength(s, RoundUp(need, chunk))
}
