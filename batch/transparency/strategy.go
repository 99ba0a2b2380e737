// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package transparency provides [Strategy], which accumulates screen space
quads tagged with a texture and a blend state into one vertex buffer split
into an opaque and a transparent region, each partitioned into the fewest
same-state segments, so that a renderer can draw all opaque geometry and
then all transparent geometry with a minimum of state changes and a single
upload.

Both regions live in one contiguous allocation and grow from its midpoint
in opposite directions: opaque quads toward the start, transparent quads
toward the end. One quad is reserved at both extremes.

The call sequence for every run of quads is:

	s.EnsureCapacity(n)
	s.SetBlendState(batch.BlendAlpha)
	s.SetTexture(tex)
	s.AddQuad(...) // at most n times
*/
package transparency

import (
	"cogentcore.org/batch/base/errors"
	"cogentcore.org/batch/base/slicesx"
	"cogentcore.org/batch/batch"
	"cogentcore.org/batch/math32"
)

// verticesPerQuad is the number of vertices of a quad.
const verticesPerQuad = 4

// Segment is a run of quads sharing one texture and blend state.
type Segment[T comparable] struct {
	TextureInfo T
	BlendState  batch.BlendState

	// VertexCount is the number of vertices, always a multiple of 4.
	VertexCount int

	// Bounds is the bounding box of the quad positions.
	Bounds math32.Box2

	// offset is the number of vertices of the side before this segment.
	offset int
}

// QuadCount returns the number of quads in the segment.
func (sg Segment[T]) QuadCount() int {
	return sg.VertexCount / verticesPerQuad
}

// matches returns whether the segment has the given state.
func (sg *Segment[T]) matches(info T, state batch.BlendState) bool {
	return sg.TextureInfo == info && sg.BlendState == state
}

// side is the segment list and vertex count of one of the two regions.
type side[T comparable] struct {
	segments []Segment[T]

	// used is the number of segments in use, including a current segment
	// that may still be empty. It is at least 1.
	used int

	// highWater is the largest used since the last clear.
	highWater int

	vertexCount int
}

func (sd *side[T]) current() *Segment[T] {
	return &sd.segments[sd.used-1]
}

// segmentCount returns the number of segments holding vertices;
// only the current segment can be empty.
func (sd *side[T]) segmentCount() int {
	if sd.current().VertexCount == 0 {
		return sd.used - 1
	}
	return sd.used
}

func (sd *side[T]) push(info T, state batch.BlendState, growth int) {
	sd.segments = slicesx.GrowLength(sd.segments, sd.used+1, growth)
	sd.used++
	sd.highWater = max(sd.highWater, sd.used)
	*sd.current() = Segment[T]{TextureInfo: info, BlendState: state, Bounds: math32.B2Empty(), offset: sd.vertexCount}
}

// setTexture coalesces consecutive identical states into one segment.
func (sd *side[T]) setTexture(info T, state batch.BlendState, growth int) {
	cur := sd.current()
	if cur.VertexCount > 0 {
		if !cur.matches(info, state) {
			sd.push(info, state, growth)
		}
		return
	}
	if sd.used > 1 && sd.segments[sd.used-2].matches(info, state) {
		*cur = Segment[T]{}
		sd.used--
		return
	}
	cur.TextureInfo = info
	cur.BlendState = state
}

func (sd *side[T]) clear() {
	clear(sd.segments[:sd.highWater])
	sd.used = 1
	sd.highWater = 1
	sd.vertexCount = 0
	sd.segments[0].Bounds = math32.B2Empty()
}

// Strategy sorts quads by transparency into one shared vertex buffer.
// Its texture info type T is only compared for equality.
// It is not safe for concurrent use.
type Strategy[T comparable] struct {
	// Config has the segment and quad growth settings.
	Config *batch.Config

	vertices []batch.Vertex

	// capacity is the number of quads each side can hold.
	capacity int

	opaque      side[T]
	transparent side[T]
	active      *side[T]

	blendState batch.BlendState
	blendSet   bool
	textureSet bool
}

// New returns a new [Strategy] with room for quadCapacity quads on each
// side. A nil config uses [batch.DefaultConfig]. It panics with an
// [errors.ErrInvalidArgument] error if the config is not valid.
func New[T comparable](quadCapacity int, cfg *batch.Config) *Strategy[T] {
	if cfg == nil {
		cfg = batch.DefaultConfig()
	}
	errors.Must(cfg.Validate())
	s := &Strategy[T]{Config: cfg}
	s.resize(max(quadCapacity, 1))
	growth := max(cfg.DefaultSegmentCapacity, 1)
	s.opaque.segments = make([]Segment[T], growth)
	s.transparent.segments = make([]Segment[T], growth)
	s.opaque.highWater = 1
	s.transparent.highWater = 1
	s.Clear()
	return s
}

// Capacity returns the number of quads each side can hold without growing.
func (s *Strategy[T]) Capacity() int {
	return s.capacity
}

// mid returns the vertex index at which the two sides meet.
func (s *Strategy[T]) mid() int {
	return (s.capacity + 1) * verticesPerQuad
}

// resize reallocates the buffer for the given quad capacity, copying
// both live regions around the new midpoint.
func (s *Strategy[T]) resize(capacity int) {
	nv := make([]batch.Vertex, (2*capacity+2)*verticesPerQuad)
	newMid := (capacity + 1) * verticesPerQuad
	if s.vertices != nil {
		oldMid := s.mid()
		ov, tv := s.opaque.vertexCount, s.transparent.vertexCount
		copy(nv[newMid-ov:newMid], s.vertices[oldMid-ov:oldMid])
		copy(nv[newMid:newMid+tv], s.vertices[oldMid:oldMid+tv])
	}
	s.vertices = nv
	s.capacity = capacity
}

// EnsureCapacity makes sure that quadCount more quads can be added,
// on either side, without growing. It grows the buffer if needed.
func (s *Strategy[T]) EnsureCapacity(quadCount int) {
	need := max(s.opaque.vertexCount, s.transparent.vertexCount)/verticesPerQuad + quadCount
	if need > s.capacity {
		s.GrowCapacity(need)
	}
}

// GrowCapacity grows each side to hold at least minCapacity quads,
// at least doubling the capacity. Existing quads and segments are kept,
// but slices returned by the accessors are invalidated.
func (s *Strategy[T]) GrowCapacity(minCapacity int) {
	if minCapacity <= s.capacity {
		return
	}
	s.resize(max(minCapacity, s.capacity*2, s.capacity+s.Config.QuadGrowth))
}

// Clear resets the strategy for a new pass. Only the segments used since
// the last clear are zeroed; the vertex data is left as is, as it is
// always written before it is read.
func (s *Strategy[T]) Clear() {
	s.opaque.clear()
	s.transparent.clear()
	s.active = &s.opaque
	s.blendState = batch.BlendOpaque
	s.blendSet = false
	s.textureSet = false
}

// SetBlendState sets the blend state of the following quads, which
// selects the opaque side for [batch.BlendOpaque] and the transparent
// side for everything else. It must be called before [Strategy.SetTexture].
func (s *Strategy[T]) SetBlendState(state batch.BlendState) {
	if s.blendSet && state == s.blendState {
		return
	}
	s.blendState = state
	s.blendSet = true
	s.textureSet = false
	if state.IsOpaque() {
		s.active = &s.opaque
	} else {
		s.active = &s.transparent
	}
}

// SetTexture sets the texture of the following quads. It continues the
// current segment if the texture and blend state are unchanged, and
// starts a new one otherwise. [Strategy.SetBlendState] must have been
// called first.
func (s *Strategy[T]) SetTexture(info T) {
	batch.Assert(s.blendSet, "transparency.Strategy.SetTexture: SetBlendState must be called first")
	s.active.setTexture(info, s.blendState, s.Config.SegmentGrowth)
	s.textureSet = true
}

// SetState sets the blend state and then the texture, which is the
// required order.
func (s *Strategy[T]) SetState(info T, state batch.BlendState) {
	s.SetBlendState(state)
	s.SetTexture(info)
}

// AddQuad adds a quad with the given corner positions (top left, top
// right, bottom left, bottom right), texture coordinates of its top left
// and bottom right corners, and color, to the current segment.
// [Strategy.EnsureCapacity] must have made room for it, and the state
// must have been set; violations are only caught in checked builds.
func (s *Strategy[T]) AddQuad(v0, v1, v2, v3, uv0, uv1 math32.Vector2, color math32.Vector4) {
	batch.Assert(s.textureSet, "transparency.Strategy.AddQuad: SetTexture must be called after SetBlendState")
	sd := s.active
	var dst int
	if sd == &s.opaque {
		dst = s.mid() - sd.vertexCount - verticesPerQuad
		batch.Assert(dst >= verticesPerQuad, "transparency.Strategy.AddQuad: opaque side is out of capacity")
	} else {
		dst = s.mid() + sd.vertexCount
		batch.Assert(dst+verticesPerQuad <= len(s.vertices)-verticesPerQuad, "transparency.Strategy.AddQuad: transparent side is out of capacity")
	}
	q := s.vertices[dst : dst+verticesPerQuad]
	q[0] = batch.NewVertex(math32.Vector3FromVector2(v0, 0), color, math32.Vec2(uv0.X, uv0.Y))
	q[1] = batch.NewVertex(math32.Vector3FromVector2(v1, 0), color, math32.Vec2(uv1.X, uv0.Y))
	q[2] = batch.NewVertex(math32.Vector3FromVector2(v2, 0), color, math32.Vec2(uv0.X, uv1.Y))
	q[3] = batch.NewVertex(math32.Vector3FromVector2(v3, 0), color, math32.Vec2(uv1.X, uv1.Y))

	sd.vertexCount += verticesPerQuad
	cur := sd.current()
	cur.VertexCount += verticesPerQuad
	cur.Bounds.ExpandByPoint(v0)
	cur.Bounds.ExpandByPoint(v1)
	cur.Bounds.ExpandByPoint(v2)
	cur.Bounds.ExpandByPoint(v3)
}
