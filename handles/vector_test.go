// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package handles

import (
	"math/rand/v2"
	"testing"

	"cogentcore.org/batch/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVector(t *testing.T, capacity int) *Vector[int] {
	v, err := New[int](capacity)
	require.NoError(t, err)
	return v
}

func assertValues(t *testing.T, v *Vector[int], values ...int) {
	t.Helper()
	require.Equal(t, len(values), v.Count())
	for i, want := range values {
		got, err := v.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "index %d", i)
	}
	assert.NoError(t, v.SanityCheck())
}

func TestAddRemove(t *testing.T) {
	v := newVector(t, 0)
	a, err := v.Add(10)
	require.NoError(t, err)
	b, err := v.Add(20)
	require.NoError(t, err)

	assert.True(t, v.Remove(a))
	assert.False(t, v.IsValidHandle(a))
	assert.Equal(t, 20, errors.Must1(v.Get(b)))
	assert.Equal(t, 1, v.Count())

	assert.False(t, v.Remove(a), "double remove is safe")
	_, err = v.Get(a)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	_, ok := v.TryGet(a)
	assert.False(t, ok)
	assert.Nil(t, v.TryPtr(a))
	assert.False(t, v.IsValidHandle(Invalid))
}

func TestCapacityGrowth(t *testing.T) {
	v, err := NewGrow[int](1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Capacity())

	a, err := v.Add(1)
	require.NoError(t, err)
	b, err := v.Add(2)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Capacity())
	assert.NotEqual(t, a, b)
	assert.Equal(t, 1, errors.Must1(v.Get(a)))
	assert.Equal(t, 2, errors.Must1(v.Get(b)))

	v = newVector(t, 1)
	assert.Equal(t, DefaultGrowQuantum, v.Capacity())
	require.NoError(t, v.Reserve(17))
	assert.Equal(t, 2*DefaultGrowQuantum, v.Capacity())
	require.NoError(t, v.Reserve(3))
	assert.Equal(t, 2*DefaultGrowQuantum, v.Capacity())

	assert.ErrorIs(t, v.Reserve(MaxCapacity+1), errors.ErrCapacityExceeded)
	assert.ErrorIs(t, v.Reserve(-1), errors.ErrInvalidArgument)
	_, err = NewGrow[int](4, 0)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
}

func TestGenerationReuse(t *testing.T) {
	v := newVector(t, 4)
	a := errors.Must1(v.Add(1))
	require.True(t, v.Remove(a))
	b := errors.Must1(v.Add(2))

	assert.Equal(t, a.Index(), b.Index(), "the freed slot is reused")
	assert.NotEqual(t, a.Version(), b.Version())
	assert.False(t, v.IsValidHandle(a))
	assert.True(t, v.IsValidHandle(b))

	_, err := v.Get(a)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Equal(t, 2, errors.Must1(v.Get(b)))
}

func TestRemovePreservesOrder(t *testing.T) {
	v := newVector(t, 0)
	hs := make([]Handle, 6)
	for i := range hs {
		hs[i] = errors.Must1(v.Add(i * 10))
	}
	assert.True(t, v.Remove(hs[2]))
	assertValues(t, v, 0, 10, 30, 40, 50)
	assert.Equal(t, 2, errors.Must1(v.IndexOf(hs[3])))

	require.NoError(t, v.RemoveAt(0))
	assertValues(t, v, 10, 30, 40, 50)

	require.NoError(t, v.RemoveRange(1, 2))
	assertValues(t, v, 10, 50)
	assert.False(t, v.IsValidHandle(hs[3]))
	assert.False(t, v.IsValidHandle(hs[4]))
	assert.Equal(t, 50, errors.Must1(v.Get(hs[5])))

	assert.ErrorIs(t, v.RemoveRange(1, 2), errors.ErrInvalidArgument)
	assert.ErrorIs(t, v.RemoveRange(0, 3), errors.ErrInvalidArgument)
	assert.ErrorIs(t, v.RemoveRange(-1, 1), errors.ErrInvalidArgument)
	assert.NoError(t, v.RemoveRange(2, 0))
	assert.ErrorIs(t, v.RemoveAt(2), errors.ErrIndexOutOfRange)
}

func TestRemoveBySwap(t *testing.T) {
	v := newVector(t, 0)
	a := errors.Must1(v.Add(1))
	b := errors.Must1(v.Add(2))
	c := errors.Must1(v.Add(3))

	assert.True(t, v.RemoveBySwap(a))
	assertValues(t, v, 3, 2)
	assert.Equal(t, 0, errors.Must1(v.IndexOf(c)))
	assert.Equal(t, 1, errors.Must1(v.IndexOf(b)))
	assert.False(t, v.RemoveBySwap(a))

	require.NoError(t, v.RemoveBySwapAt(1))
	assertValues(t, v, 3)
	assert.False(t, v.IsValidHandle(b))
	assert.ErrorIs(t, v.RemoveBySwapAt(1), errors.ErrIndexOutOfRange)
}

func TestInsertSwapMove(t *testing.T) {
	v := newVector(t, 0)
	a := errors.Must1(v.Add(1))
	b := errors.Must1(v.Add(2))
	c := errors.Must1(v.Insert(1, 9))
	assertValues(t, v, 1, 9, 2)
	d := errors.Must1(v.InsertAt(3, 4))
	assertValues(t, v, 1, 9, 2, 4)
	_, err := v.Insert(5, 0)
	assert.ErrorIs(t, err, errors.ErrIndexOutOfRange)

	require.NoError(t, v.SwapAt(0, 3))
	assertValues(t, v, 4, 9, 2, 1)
	assert.Equal(t, 3, errors.Must1(v.IndexOf(a)))
	assert.Equal(t, 0, errors.Must1(v.IndexOf(d)))
	assert.ErrorIs(t, v.SwapAt(0, 4), errors.ErrIndexOutOfRange)

	require.NoError(t, v.MoveAtFromTo(3, 0))
	assertValues(t, v, 1, 4, 9, 2)
	require.NoError(t, v.MoveAtFromTo(1, 3))
	assertValues(t, v, 1, 9, 2, 4)
	for h, want := range map[Handle]int{a: 1, b: 2, c: 9, d: 4} {
		assert.Equal(t, want, errors.Must1(v.Get(h)))
	}
	assert.ErrorIs(t, v.MoveAtFromTo(0, 9), errors.ErrIndexOutOfRange)
}

func TestAccessors(t *testing.T) {
	v := newVector(t, 0)
	a := errors.Must1(v.Add(1))

	require.NoError(t, v.Set(a, 5))
	assert.Equal(t, 5, errors.Must1(v.Get(a)))
	p := errors.Must1(v.Ptr(a))
	*p = 6
	assert.Equal(t, 6, *v.TryPtr(a))
	require.NoError(t, v.SetAt(0, 7))
	assert.Equal(t, 7, *errors.Must1(v.AtPtr(0)))
	assert.Equal(t, a, errors.Must1(v.HandleAt(0)))

	_, err := v.At(1)
	assert.ErrorIs(t, err, errors.ErrIndexOutOfRange)
	_, err = v.HandleAt(-1)
	assert.ErrorIs(t, err, errors.ErrIndexOutOfRange)
	assert.ErrorIs(t, v.SetAt(1, 0), errors.ErrIndexOutOfRange)
	assert.ErrorIs(t, v.Set(MakeHandle(3, 0), 0), errors.ErrInvalidArgument)
	_, err = v.Ptr(MakeHandle(0, 9))
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	_, err = v.IndexOf(Invalid)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)

	v.Clear()
	assert.Equal(t, 0, v.Count())
	assert.False(t, v.IsValidHandle(a))
	assert.NoError(t, v.SanityCheck())
	b := errors.Must1(v.Add(8))
	assert.NotEqual(t, a, b)
}

func TestAll(t *testing.T) {
	v := newVector(t, 0)
	var hs []Handle
	for i := range 5 {
		hs = append(hs, errors.Must1(v.Add(i)))
	}
	i := 0
	for h, e := range v.All() {
		assert.Equal(t, hs[i], h)
		assert.Equal(t, i, e)
		i++
		if i == 3 {
			break
		}
	}
	assert.Equal(t, 3, i)
}

// TestModel runs a random sequence of operations against a plain slice
// model and checks every live handle after each step.
func TestModel(t *testing.T) {
	type entry struct {
		h Handle
		v int
	}
	rnd := rand.New(rand.NewPCG(7, 11))
	v, err := NewGrow[int](0, 3)
	require.NoError(t, err)
	var model []entry
	var dead []Handle
	next := 0

	for step := range 3000 {
		next++
		switch op := rnd.IntN(8); {
		case op < 3 || len(model) == 0:
			h := errors.Must1(v.Add(next))
			model = append(model, entry{h, next})
		case op == 3:
			at := rnd.IntN(len(model) + 1)
			h := errors.Must1(v.Insert(at, next))
			model = append(model[:at], append([]entry{{h, next}}, model[at:]...)...)
		case op == 4:
			at := rnd.IntN(len(model))
			require.True(t, v.Remove(model[at].h))
			dead = append(dead, model[at].h)
			model = append(model[:at], model[at+1:]...)
		case op == 5:
			at := rnd.IntN(len(model))
			dead = append(dead, model[at].h)
			require.NoError(t, v.RemoveBySwapAt(at))
			model[at] = model[len(model)-1]
			model = model[:len(model)-1]
		case op == 6:
			i, j := rnd.IntN(len(model)), rnd.IntN(len(model))
			require.NoError(t, v.SwapAt(i, j))
			model[i], model[j] = model[j], model[i]
		default:
			from, to := rnd.IntN(len(model)), rnd.IntN(len(model))
			require.NoError(t, v.MoveAtFromTo(from, to))
			e := model[from]
			model = append(model[:from], model[from+1:]...)
			model = append(model[:to], append([]entry{e}, model[to:]...)...)
		}

		require.Equal(t, len(model), v.Count(), "step %d", step)
		require.LessOrEqual(t, v.Count(), v.Capacity())
		for i, e := range model {
			require.True(t, v.IsValidHandle(e.h), "step %d", step)
			require.Equal(t, i, errors.Must1(v.IndexOf(e.h)))
			require.Equal(t, e.v, errors.Must1(v.Get(e.h)))
		}
		for _, h := range dead {
			// a dead handle stays dead unless its version wrapped around
			if v.IsValidHandle(h) {
				idx := errors.Must1(v.IndexOf(h))
				require.Equal(t, h, errors.Must1(v.HandleAt(idx)))
			}
		}
		if len(dead) > 64 {
			dead = dead[len(dead)-64:]
		}
		require.NoError(t, v.SanityCheck(), "step %d", step)
	}
}
