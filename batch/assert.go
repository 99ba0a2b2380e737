// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import "cogentcore.org/batch/base/errors"

// Assert panics with an [errors.ErrContract] error with the given message
// if cond is false and [Checked] is on. It is used for caller contract
// violations in the per-quad and per-mesh hot paths, so it takes a
// constant message instead of format arguments.
func Assert(cond bool, msg string) {
	if Checked && !cond {
		panic(errors.Errorf("%s: %w", msg, errors.ErrContract))
	}
}
