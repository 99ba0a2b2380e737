// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package handles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanRemoveRange(t *testing.T) {
	plan := PlanRemoveRange(nil, 6, 1, 2)
	assert.Equal(t, []Relocation{{3, 1}, {4, 2}, {5, 3}}, plan)
	s := Apply([]string{"a", "b", "c", "d", "e", "f"}, plan)
	assert.Equal(t, []string{"a", "d", "e", "f"}, s[:4])

	assert.Empty(t, PlanRemoveRange(nil, 3, 2, 1))
	assert.Empty(t, PlanRemoveRange(nil, 3, 0, 3))
}

func TestPlanInsert(t *testing.T) {
	plan := PlanInsert(nil, 4, 1)
	assert.Equal(t, []Relocation{{3, 4}, {2, 3}, {1, 2}}, plan)
	s := Apply([]string{"a", "b", "c", "d", ""}, plan)
	s[1] = "x"
	assert.Equal(t, []string{"a", "x", "b", "c", "d"}, s)

	assert.Empty(t, PlanInsert(nil, 4, 4))
}

func TestPlanMove(t *testing.T) {
	s := []string{"a", "b", "c", "d", "e"}
	e := s[1]
	s = Apply(s, PlanMove(nil, 1, 3))
	s[3] = e
	assert.Equal(t, []string{"a", "c", "d", "b", "e"}, s)

	e = s[4]
	s = Apply(s, PlanMove(nil, 4, 0))
	s[0] = e
	assert.Equal(t, []string{"e", "a", "c", "d", "b"}, s)
}

func TestPlanSwapRemove(t *testing.T) {
	assert.Equal(t, []Relocation{{4, 1}}, PlanSwapRemove(nil, 5, 1))
	assert.Empty(t, PlanSwapRemove(nil, 5, 4))

	buf := make([]Relocation, 0, 8)
	buf = PlanSwapRemove(buf, 3, 0)
	buf = PlanSwapRemove(buf[:0], 3, 1)
	assert.Equal(t, []Relocation{{2, 1}}, buf)
}
