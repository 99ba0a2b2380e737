// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unchecked

package batch

// Checked is whether the hot path contract assertions are compiled in.
// It is on by default; build with -tags unchecked to turn it off, in which
// case violating a precondition of AddQuad or a mesh builder is undefined.
const Checked = true
