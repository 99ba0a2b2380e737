// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package handles

// Relocation moves the element at dense position From to position To.
// A plan is a list of relocations that must be applied in order,
// each one patching the lookup entry of the moved element.
type Relocation struct {
	From int
	To   int
}

// PlanRemoveRange appends to dst the relocations that close the gap left
// by removing length elements at start from a dense array of count
// elements, preserving order. The positions [count-length, count) are
// free afterwards. The arguments must already be validated.
func PlanRemoveRange(dst []Relocation, count, start, length int) []Relocation {
	for from := start + length; from < count; from++ {
		dst = append(dst, Relocation{From: from, To: from - length})
	}
	return dst
}

// PlanInsert appends to dst the relocations that open a gap at index in
// a dense array of count elements, by shifting [index, count) up by one.
func PlanInsert(dst []Relocation, count, index int) []Relocation {
	for from := count - 1; from >= index; from-- {
		dst = append(dst, Relocation{From: from, To: from + 1})
	}
	return dst
}

// PlanMove appends to dst the relocations that shift the elements between
// from and to by one toward from, leaving position to free for the element
// that was at from. The element at from must be saved before applying it.
func PlanMove(dst []Relocation, from, to int) []Relocation {
	if from < to {
		for i := from + 1; i <= to; i++ {
			dst = append(dst, Relocation{From: i, To: i - 1})
		}
		return dst
	}
	for i := from - 1; i >= to; i-- {
		dst = append(dst, Relocation{From: i, To: i + 1})
	}
	return dst
}

// PlanSwapRemove appends to dst the relocation that fills the hole at
// index with the last element of a dense array of count elements.
// Nothing is appended when index is the last element.
func PlanSwapRemove(dst []Relocation, count, index int) []Relocation {
	if last := count - 1; index != last {
		dst = append(dst, Relocation{From: last, To: index})
	}
	return dst
}

// Apply applies the given plan to a plain slice, returning the resulting
// arrangement. It is the reference model of what a plan does, without
// any lookup table.
func Apply[E any](s []E, plan []Relocation) []E {
	for _, r := range plan {
		s[r.To] = s[r.From]
	}
	return s
}
