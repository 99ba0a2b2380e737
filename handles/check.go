// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package handles

import "cogentcore.org/batch/base/errors"

// IsConsistent returns whether [Vector.SanityCheck] finds no problem.
func (v *Vector[T]) IsConsistent() bool {
	return v.SanityCheck() == nil
}

// SanityCheck walks every slot and verifies that the handle to index and
// index to handle mappings are mutual inverses, that no handle index is
// claimed twice, and that no handle carries the reserved version.
// It is O(n) and meant for tests and debugging.
func (v *Vector[T]) SanityCheck() error {
	n := len(v.data)
	if v.count < 0 || v.count > n {
		return errors.Errorf("handles.Vector.SanityCheck: count %d is outside of [0, %d]: %w", v.count, n, errors.ErrContract)
	}
	seen := make([]bool, n)
	for i := range v.data {
		h := v.data[i].handle
		if h.Version() > MaxVersion {
			return errors.Errorf("handles.Vector.SanityCheck: slot %d holds %v with a reserved version: %w", i, h, errors.ErrContract)
		}
		idx := h.Index()
		if idx >= n {
			return errors.Errorf("handles.Vector.SanityCheck: slot %d holds %v outside of capacity %d: %w", i, h, n, errors.ErrContract)
		}
		if seen[idx] {
			return errors.Errorf("handles.Vector.SanityCheck: handle index %d is claimed twice: %w", idx, errors.ErrContract)
		}
		seen[idx] = true
		if got := int(v.data[idx].handleToIndex); got != i {
			return errors.Errorf("handles.Vector.SanityCheck: %v at slot %d maps back to slot %d: %w", h, i, got, errors.ErrContract)
		}
	}
	return nil
}
