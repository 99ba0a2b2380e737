// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package handles

import "fmt"

// Handle is an opaque, generation stamped reference to an element
// of a [Vector]. Bits 0-23 are the index and bits 24-31 the version.
// Handles with a version of 0x80 or above are negative, so the sign of
// a handle has no meaning; only [Invalid] is special.
type Handle int32

const (
	// IndexBits is the number of bits used for the index of a handle.
	IndexBits = 24

	// IndexMask extracts the index from a handle.
	IndexMask = 1<<IndexBits - 1

	// VersionShift is the bit position of the version of a handle.
	VersionShift = IndexBits

	// MaxVersion is the largest version that is ever handed out.
	// 0xFF is skipped so that no handle ever equals [Invalid].
	MaxVersion = 0xFE

	// MaxCapacity is the maximum number of elements in a [Vector],
	// reflecting the 24 bit index field of a [Handle].
	MaxCapacity = 1 << IndexBits

	// Invalid is the handle value that never refers to anything.
	Invalid Handle = -1
)

// MakeHandle returns the handle with the given index and version.
// The index is masked to 24 bits.
func MakeHandle(index int, version uint8) Handle {
	return Handle(uint32(version)<<VersionShift | uint32(index)&IndexMask)
}

// Index returns the index field of the handle.
func (h Handle) Index() int {
	return int(uint32(h) & IndexMask)
}

// Version returns the version (generation) field of the handle.
func (h Handle) Version() uint8 {
	return uint8(uint32(h) >> VersionShift)
}

// NextVersion returns the handle with the same index and the next
// version, wrapping from [MaxVersion] back to 0.
func (h Handle) NextVersion() Handle {
	v := h.Version()
	if v >= MaxVersion {
		v = 0
	} else {
		v++
	}
	return MakeHandle(h.Index(), v)
}

func (h Handle) String() string {
	if h == Invalid {
		return "Handle(invalid)"
	}
	return fmt.Sprintf("Handle(%d v%d)", h.Index(), h.Version())
}
