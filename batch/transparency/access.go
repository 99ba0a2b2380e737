// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transparency

import (
	"cogentcore.org/batch/base/errors"
	"cogentcore.org/batch/batch"
)

// The accessors are valid between the end of an accumulation pass
// and the next Clear or growth.

// Vertices returns all live vertices as one contiguous slice: the opaque
// span directly followed by the transparent span, for a single upload.
func (s *Strategy[T]) Vertices() []batch.Vertex {
	mid := s.mid()
	return s.vertices[mid-s.opaque.vertexCount : mid+s.transparent.vertexCount]
}

// OpaqueSpan returns the opaque vertices. Quads are stored in reverse
// call order, so quads submitted back to front are drawn front to back.
func (s *Strategy[T]) OpaqueSpan() []batch.Vertex {
	mid := s.mid()
	return s.vertices[mid-s.opaque.vertexCount : mid]
}

// TransparentSpan returns the transparent vertices in call order.
func (s *Strategy[T]) TransparentSpan() []batch.Vertex {
	mid := s.mid()
	return s.vertices[mid : mid+s.transparent.vertexCount]
}

// OpaqueVertexCount returns the number of opaque vertices.
func (s *Strategy[T]) OpaqueVertexCount() int {
	return s.opaque.vertexCount
}

// TransparentVertexCount returns the number of transparent vertices.
func (s *Strategy[T]) TransparentVertexCount() int {
	return s.transparent.vertexCount
}

// OpaqueQuadCount returns the number of opaque quads.
func (s *Strategy[T]) OpaqueQuadCount() int {
	return s.opaque.vertexCount / verticesPerQuad
}

// TransparentQuadCount returns the number of transparent quads.
func (s *Strategy[T]) TransparentQuadCount() int {
	return s.transparent.vertexCount / verticesPerQuad
}

// OpaqueSegmentCount returns the number of opaque segments holding quads.
func (s *Strategy[T]) OpaqueSegmentCount() int {
	return s.opaque.segmentCount()
}

// TransparentSegmentCount returns the number of transparent segments holding quads.
func (s *Strategy[T]) TransparentSegmentCount() int {
	return s.transparent.segmentCount()
}

// OpaqueSegment returns the opaque segment at the given index, in call order.
func (s *Strategy[T]) OpaqueSegment(i int) Segment[T] {
	return s.opaque.segments[s.checkSegment(&s.opaque, i)]
}

// TransparentSegment returns the transparent segment at the given index, in call order.
func (s *Strategy[T]) TransparentSegment(i int) Segment[T] {
	return s.transparent.segments[s.checkSegment(&s.transparent, i)]
}

// checkSegment panics with an [errors.ErrIndexOutOfRange] error
// if i is not the index of a segment of the given side.
func (s *Strategy[T]) checkSegment(sd *side[T], i int) int {
	if n := sd.segmentCount(); i < 0 || i >= n {
		panic(errors.Errorf("transparency.Strategy: segment index %d is out of range of %d segments: %w", i, n, errors.ErrIndexOutOfRange))
	}
	return i
}

// OpaqueSegmentSpan returns the range of the opaque segment at the given
// index within [Strategy.OpaqueSpan]. Segments are in call order, so their
// ranges descend.
func (s *Strategy[T]) OpaqueSegmentSpan(i int) batch.SpanRange {
	sg := &s.opaque.segments[s.checkSegment(&s.opaque, i)]
	return batch.SpanRange{Start: s.opaque.vertexCount - sg.offset - sg.VertexCount, Length: sg.VertexCount}
}

// TransparentSegmentSpan returns the range of the transparent segment at
// the given index within [Strategy.TransparentSpan].
func (s *Strategy[T]) TransparentSegmentSpan(i int) batch.SpanRange {
	sg := &s.transparent.segments[s.checkSegment(&s.transparent, i)]
	return batch.SpanRange{Start: sg.offset, Length: sg.VertexCount}
}

// OpaqueSegmentVertices returns the vertices of the opaque segment at the given index.
func (s *Strategy[T]) OpaqueSegmentVertices(i int) []batch.Vertex {
	sr := s.OpaqueSegmentSpan(i)
	return s.OpaqueSpan()[sr.Start:sr.End()]
}

// TransparentSegmentVertices returns the vertices of the transparent segment at the given index.
func (s *Strategy[T]) TransparentSegmentVertices(i int) []batch.Vertex {
	sr := s.TransparentSegmentSpan(i)
	return s.TransparentSpan()[sr.Start:sr.End()]
}
