// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package handles implements [Vector], a densely packed slice of elements
addressed through generational [Handle] values, with O(1) lookup from a
handle to its element. It is the registry mechanism for scene objects,
textures, sprites and materials, whose handles are resolved while the
batchers build a frame.

Elements always occupy positions [0, Count()) with no holes, so they can
be iterated in a cache friendly way. Removing an element bumps the version
of its handle, so stale handles are detected instead of silently aliasing
a new element. Growing the vector never invalidates a handle, but it does
invalidate pointers returned by [Vector.Ptr] and [Vector.AtPtr].
*/
package handles

import (
	"iter"

	"cogentcore.org/batch/base/errors"
	"cogentcore.org/batch/base/slicesx"
)

// DefaultGrowQuantum is the default number of slots a [Vector] grows by.
const DefaultGrowQuantum = 16

// record holds two interleaved mappings: the element and handle at dense
// position i, and handleToIndex, the dense position of the element whose
// handle has index i. For positions >= count, handle is the free handle
// handed out next at that position.
type record[T any] struct {
	handleToIndex int32
	handle        Handle
	element       T
}

// Vector is a dense array of elements addressed by generational handles.
// The zero value is not usable; use [New] or [NewGrow].
// It is not safe for concurrent use.
type Vector[T any] struct {
	data        []record[T]
	count       int
	growQuantum int

	// scratch buffers reused across operations
	plan  []Relocation
	freed []Handle
}

// New returns a new [Vector] with room for at least the given number of
// elements, growing by [DefaultGrowQuantum].
func New[T any](capacity int) (*Vector[T], error) {
	return NewGrow[T](capacity, DefaultGrowQuantum)
}

// NewGrow returns a new [Vector] with room for at least the given number
// of elements, whose capacity is always a multiple of growQuantum.
func NewGrow[T any](capacity, growQuantum int) (*Vector[T], error) {
	if growQuantum < 1 {
		return nil, errors.Errorf("handles.NewGrow: grow quantum %d must be positive: %w", growQuantum, errors.ErrInvalidArgument)
	}
	v := &Vector[T]{growQuantum: growQuantum}
	if err := v.Reserve(capacity); err != nil {
		return nil, err
	}
	return v, nil
}

// Count returns the number of live elements.
func (v *Vector[T]) Count() int {
	return v.count
}

// Capacity returns the number of elements that fit without growing.
func (v *Vector[T]) Capacity() int {
	return len(v.data)
}

// Reserve grows the backing storage to the next multiple of the grow
// quantum at or above capacity, clamped to [MaxCapacity]. It does nothing
// if the capacity is already sufficient.
func (v *Vector[T]) Reserve(capacity int) error {
	if capacity < 0 {
		return errors.Errorf("handles.Vector.Reserve: negative capacity %d: %w", capacity, errors.ErrInvalidArgument)
	}
	if capacity <= len(v.data) {
		return nil
	}
	if capacity > MaxCapacity {
		return errors.Errorf("handles.Vector.Reserve: capacity %d is above the maximum of %d: %w", capacity, MaxCapacity, errors.ErrCapacityExceeded)
	}
	old := len(v.data)
	v.data = slicesx.SetLength(v.data, min(slicesx.RoundUp(capacity, v.growQuantum), MaxCapacity))
	for i := old; i < len(v.data); i++ {
		v.data[i].handle = MakeHandle(i, 0)
		v.data[i].handleToIndex = int32(i)
	}
	return nil
}

// IsValidHandle returns whether the given handle refers to a live element.
func (v *Vector[T]) IsValidHandle(h Handle) bool {
	_, ok := v.lookup(h)
	return ok
}

// IsValidIndex returns whether the given index is in [0, Count()).
func (v *Vector[T]) IsValidIndex(index int) bool {
	return index >= 0 && index < v.count
}

// lookup returns the dense position of the element owning h.
func (v *Vector[T]) lookup(h Handle) (int, bool) {
	if h == Invalid {
		return -1, false
	}
	idx := h.Index()
	if idx >= len(v.data) {
		return -1, false
	}
	pos := int(v.data[idx].handleToIndex)
	if pos >= v.count || v.data[pos].handle != h {
		return -1, false
	}
	return pos, true
}

func (v *Vector[T]) invalidHandle(op string, h Handle) error {
	return errors.Errorf("handles.Vector.%s: %v is not a valid handle: %w", op, h, errors.ErrInvalidArgument)
}

func (v *Vector[T]) invalidIndex(op string, index int) error {
	return errors.Errorf("handles.Vector.%s: index %d is out of range of a vector of count %d: %w", op, index, v.count, errors.ErrIndexOutOfRange)
}

// ensureRoomForOne grows the vector if it is full.
func (v *Vector[T]) ensureRoomForOne() error {
	if v.count < len(v.data) {
		return nil
	}
	return v.Reserve(v.count + 1)
}

// Add appends the given element and returns its new handle.
// Other handles stay valid.
func (v *Vector[T]) Add(element T) (Handle, error) {
	if err := v.ensureRoomForOne(); err != nil {
		return Invalid, err
	}
	pos := v.count
	h := v.data[pos].handle
	v.data[h.Index()].handleToIndex = int32(pos)
	v.data[pos].element = element
	v.count++
	return h, nil
}

// Insert inserts the given element at the given index in [0, Count()],
// shifting the elements at and after it up by one, and returns its handle.
func (v *Vector[T]) Insert(index int, element T) (Handle, error) {
	if index < 0 || index > v.count {
		return Invalid, v.invalidIndex("Insert", index)
	}
	if err := v.ensureRoomForOne(); err != nil {
		return Invalid, err
	}
	h := v.data[v.count].handle
	v.plan = PlanInsert(v.plan[:0], v.count, index)
	v.apply(v.plan)
	v.place(index, h, element)
	v.count++
	return h, nil
}

// InsertAt is the same as [Vector.Insert].
func (v *Vector[T]) InsertAt(index int, element T) (Handle, error) {
	return v.Insert(index, element)
}

// place stores the given handle and element at pos and patches the lookup.
func (v *Vector[T]) place(pos int, h Handle, element T) {
	v.data[pos].handle = h
	v.data[pos].element = element
	v.data[h.Index()].handleToIndex = int32(pos)
}

// relocate moves the element at from to to, patching its lookup entry.
func (v *Vector[T]) relocate(from, to int) {
	v.place(to, v.data[from].handle, v.data[from].element)
}

func (v *Vector[T]) apply(plan []Relocation) {
	for _, r := range plan {
		v.relocate(r.From, r.To)
	}
}

// release parks the given removed handles at the free positions starting
// at v.count, with their versions bumped so they can never match again.
func (v *Vector[T]) release(removed []Handle) {
	var zero T
	for i, h := range removed {
		v.place(v.count+i, h.NextVersion(), zero)
	}
}

// Remove removes the element with the given handle, shifting all the
// following elements down by one to preserve order. It returns false
// if the handle was not valid, so removing twice is safe.
func (v *Vector[T]) Remove(h Handle) bool {
	pos, ok := v.lookup(h)
	if !ok {
		return false
	}
	v.removeRange(pos, 1)
	return true
}

// RemoveAt removes the element at the given index, preserving order.
func (v *Vector[T]) RemoveAt(index int) error {
	if !v.IsValidIndex(index) {
		return v.invalidIndex("RemoveAt", index)
	}
	v.removeRange(index, 1)
	return nil
}

// RemoveRange removes length elements starting at start, preserving the
// order of the remaining elements.
func (v *Vector[T]) RemoveRange(start, length int) error {
	if start < 0 || length < 0 || length > v.count || start > v.count-length {
		return errors.Errorf("handles.Vector.RemoveRange: range [%d, %d+%d) is outside of a vector of count %d: %w", start, start, length, v.count, errors.ErrInvalidArgument)
	}
	if length > 0 {
		v.removeRange(start, length)
	}
	return nil
}

func (v *Vector[T]) removeRange(start, length int) {
	v.freed = v.freed[:0]
	for i := start; i < start+length; i++ {
		v.freed = append(v.freed, v.data[i].handle)
	}
	v.plan = PlanRemoveRange(v.plan[:0], v.count, start, length)
	v.apply(v.plan)
	v.count -= length
	v.release(v.freed)
}

// RemoveBySwapAt removes the element at the given index by moving the last
// element into its place. It is O(1) but does not preserve order.
func (v *Vector[T]) RemoveBySwapAt(index int) error {
	if !v.IsValidIndex(index) {
		return v.invalidIndex("RemoveBySwapAt", index)
	}
	v.removeBySwap(index)
	return nil
}

// RemoveBySwap removes the element with the given handle by moving the last
// element into its place. It returns false if the handle was not valid.
func (v *Vector[T]) RemoveBySwap(h Handle) bool {
	pos, ok := v.lookup(h)
	if !ok {
		return false
	}
	v.removeBySwap(pos)
	return true
}

func (v *Vector[T]) removeBySwap(index int) {
	v.freed = append(v.freed[:0], v.data[index].handle)
	v.plan = PlanSwapRemove(v.plan[:0], v.count, index)
	v.apply(v.plan)
	v.count--
	v.release(v.freed)
}

// SwapAt swaps the elements at the two given indices.
func (v *Vector[T]) SwapAt(i, j int) error {
	if !v.IsValidIndex(i) {
		return v.invalidIndex("SwapAt", i)
	}
	if !v.IsValidIndex(j) {
		return v.invalidIndex("SwapAt", j)
	}
	if i == j {
		return nil
	}
	hi, ei := v.data[i].handle, v.data[i].element
	v.relocate(j, i)
	v.place(j, hi, ei)
	return nil
}

// MoveAtFromTo moves the element at index from to index to, shifting
// the elements in between by one. Handles stay valid.
func (v *Vector[T]) MoveAtFromTo(from, to int) error {
	if !v.IsValidIndex(from) {
		return v.invalidIndex("MoveAtFromTo", from)
	}
	if !v.IsValidIndex(to) {
		return v.invalidIndex("MoveAtFromTo", to)
	}
	if from == to {
		return nil
	}
	h, e := v.data[from].handle, v.data[from].element
	v.plan = PlanMove(v.plan[:0], from, to)
	v.apply(v.plan)
	v.place(to, h, e)
	return nil
}

// Clear removes all elements. Every handle that was live is invalidated.
func (v *Vector[T]) Clear() {
	var zero T
	for i := range v.count {
		v.data[i].handle = v.data[i].handle.NextVersion()
		v.data[i].element = zero
	}
	v.count = 0
}

// Get returns the element with the given handle, or an error
// if the handle is not valid.
func (v *Vector[T]) Get(h Handle) (T, error) {
	pos, ok := v.lookup(h)
	if !ok {
		var zero T
		return zero, v.invalidHandle("Get", h)
	}
	return v.data[pos].element, nil
}

// TryGet returns the element with the given handle and whether
// the handle was valid. It never fails.
func (v *Vector[T]) TryGet(h Handle) (T, bool) {
	pos, ok := v.lookup(h)
	if !ok {
		var zero T
		return zero, false
	}
	return v.data[pos].element, true
}

// Ptr returns a pointer to the element with the given handle, or an
// error if the handle is not valid. The pointer is only valid until
// the next operation that moves or grows elements.
func (v *Vector[T]) Ptr(h Handle) (*T, error) {
	pos, ok := v.lookup(h)
	if !ok {
		return nil, v.invalidHandle("Ptr", h)
	}
	return &v.data[pos].element, nil
}

// TryPtr returns a pointer to the element with the given handle,
// or nil if the handle is not valid.
func (v *Vector[T]) TryPtr(h Handle) *T {
	pos, ok := v.lookup(h)
	if !ok {
		return nil
	}
	return &v.data[pos].element
}

// Set replaces the element with the given handle.
func (v *Vector[T]) Set(h Handle, element T) error {
	pos, ok := v.lookup(h)
	if !ok {
		return v.invalidHandle("Set", h)
	}
	v.data[pos].element = element
	return nil
}

// At returns the element at the given index.
func (v *Vector[T]) At(index int) (T, error) {
	if !v.IsValidIndex(index) {
		var zero T
		return zero, v.invalidIndex("At", index)
	}
	return v.data[index].element, nil
}

// AtPtr returns a pointer to the element at the given index.
func (v *Vector[T]) AtPtr(index int) (*T, error) {
	if !v.IsValidIndex(index) {
		return nil, v.invalidIndex("AtPtr", index)
	}
	return &v.data[index].element, nil
}

// SetAt replaces the element at the given index.
func (v *Vector[T]) SetAt(index int, element T) error {
	if !v.IsValidIndex(index) {
		return v.invalidIndex("SetAt", index)
	}
	v.data[index].element = element
	return nil
}

// HandleAt returns the handle of the element at the given index.
func (v *Vector[T]) HandleAt(index int) (Handle, error) {
	if !v.IsValidIndex(index) {
		return Invalid, v.invalidIndex("HandleAt", index)
	}
	return v.data[index].handle, nil
}

// IndexOf returns the current index of the element with the given handle.
func (v *Vector[T]) IndexOf(h Handle) (int, error) {
	pos, ok := v.lookup(h)
	if !ok {
		return -1, v.invalidHandle("IndexOf", h)
	}
	return pos, nil
}

// All returns an iterator over the handles and elements in index order.
// The vector must not be modified during iteration.
func (v *Vector[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for i := range v.count {
			if !yield(v.data[i].handle, v.data[i].element) {
				return
			}
		}
	}
}
