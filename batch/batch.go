// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package batch is the shared data model of the batchers: segments, which
are contiguous ranges of a vertex (and index) buffer uploaded and bound as
a unit, each owning a range of batches, which are runs of geometry drawn
with one {ContentType, MaterialID} state, i.e. one draw call.

The transparency package sorts quads into opaque and transparent segments,
and the immediate package builds segments and batches from a stream of
2D meshes for an immediate mode UI renderer. Both are configured by [Config].
*/
package batch

import (
	"fmt"

	"cogentcore.org/batch/math32"
)

// SpanRange is a half-open range [Start, Start+Length) into an owned buffer.
type SpanRange struct {
	Start  int
	Length int
}

// End returns the exclusive end of the range.
func (sr SpanRange) End() int {
	return sr.Start + sr.Length
}

// IsEmpty returns whether the range has no elements.
func (sr SpanRange) IsEmpty() bool {
	return sr.Length == 0
}

// Contains returns whether the given range is fully inside of this one.
func (sr SpanRange) Contains(other SpanRange) bool {
	return other.Start >= sr.Start && other.End() <= sr.End()
}

func (sr SpanRange) String() string {
	return fmt.Sprintf("[%d, %d)", sr.Start, sr.End())
}

// ContentType is the kind of geometry of a batch.
type ContentType int32

const (
	// ContentBasic is vertices only, drawn as a non indexed triangle list.
	ContentBasic ContentType = iota

	// ContentIndexed is vertices plus a 16 bit index buffer.
	ContentIndexed
)

func (ct ContentType) String() string {
	switch ct {
	case ContentBasic:
		return "Basic"
	case ContentIndexed:
		return "Indexed"
	}
	return fmt.Sprintf("ContentType(%d)", int32(ct))
}

// MaterialID identifies the material (texture, shader and blend state)
// of a batch. It is only compared for equality, as a state change signal.
type MaterialID uint32

// BatchInfo is the state that all of the geometry in a batch shares.
type BatchInfo struct {
	ContentType ContentType
	MaterialID  MaterialID
}

// BatchRecord is one draw call's worth of geometry. The spans are
// relative to the combined vertex and index arrays of the frame, and
// the index values are relative to the first vertex of the segment.
type BatchRecord struct {
	Info       BatchInfo
	VertexSpan SpanRange
	IndexSpan  SpanRange

	// ZPos is the depth assigned to the first mesh of the batch.
	ZPos float32
}

// SegmentRecord is one contiguous range of the vertex and index
// arrays of a frame, owning the batches in BatchRange.
type SegmentRecord struct {
	VertexSpan SpanRange
	IndexSpan  SpanRange
	BatchRange SpanRange
}

// BlendState is the blend state of a quad, which decides whether it
// is rendered in the opaque or the transparent pass.
type BlendState int32

const (
	BlendOpaque BlendState = iota
	BlendAlpha
	BlendAdditive
	BlendPremultiplied
)

// IsOpaque returns whether the state is rendered in the opaque pass.
func (bs BlendState) IsOpaque() bool {
	return bs == BlendOpaque
}

func (bs BlendState) String() string {
	switch bs {
	case BlendOpaque:
		return "Opaque"
	case BlendAlpha:
		return "Alpha"
	case BlendAdditive:
		return "Additive"
	case BlendPremultiplied:
		return "Premultiplied"
	}
	return fmt.Sprintf("BlendState(%d)", int32(bs))
}

// Vertex is a position, color and texture coordinate vertex,
// in whatever coordinate space the renderer uses.
type Vertex struct {
	Position math32.Vector3
	Color    math32.Vector4
	TexCoord math32.Vector2
}

// NewVertex returns a new [Vertex] with the given values.
func NewVertex(pos math32.Vector3, color math32.Vector4, tex math32.Vector2) Vertex {
	return Vertex{Position: pos, Color: color, TexCoord: tex}
}

// SetZ sets the depth of the vertex.
func (v *Vertex) SetZ(z float32) {
	v.Position.Z = z
}
