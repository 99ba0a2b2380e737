// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import "errors"

// The error kinds. Returned errors wrap exactly one of these,
// so they can be classified with [Is].
var (
	// ErrInvalidArgument is a malformed range or a stale or
	// out-of-range handle passed to a handle-requiring operation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is a position outside of the live range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrCapacityExceeded is a request for more elements than
	// the architectural maximum of a container.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrNotSupported is a request that exceeds the hard limits of
	// a mesh type, such as more vertices than a 16 bit index can address.
	ErrNotSupported = errors.New("not supported")

	// ErrSequence is a begin/end call order violation.
	ErrSequence = errors.New("call sequence violation")

	// ErrContract is a caller contract violation detected by an
	// assertion. It is only ever seen as a panic value.
	ErrContract = errors.New("contract violation")
)

// Kind returns the kind sentinel that err wraps, or nil if
// err does not wrap any of them.
func Kind(err error) error {
	for _, k := range []error{ErrInvalidArgument, ErrIndexOutOfRange, ErrCapacityExceeded, ErrNotSupported, ErrSequence, ErrContract} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
