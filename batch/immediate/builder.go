// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package immediate

import (
	"cogentcore.org/batch/batch"
	"cogentcore.org/batch/math32"
)

// MeshFlags are the per mesh options of a mesh build.
type MeshFlags uint8

const (
	// DontIncreaseZPos keeps the depth of the following mesh
	// equal to that of this one.
	DontIncreaseZPos MeshFlags = 1 << iota
)

// HasFlag returns whether the given flag is set.
func (f MeshFlags) HasFlag(flag MeshFlags) bool {
	return f&flag != 0
}

// vertexBuilder writes vertices into storage reserved by a [Batcher].
type vertexBuilder struct {
	// Color is the color of vertices added without an explicit color.
	Color math32.Vector4

	// ZPos is the depth written into every vertex of the mesh.
	ZPos float32

	// vertices has a length of the number of vertices written so far,
	// and a capacity of the number reserved.
	vertices []batch.Vertex
}

func (vb *vertexBuilder) reset(storage []batch.Vertex, color math32.Vector4, zpos float32) {
	vb.Color = color
	vb.ZPos = zpos
	vb.vertices = storage[:0:len(storage)]
}

// VertexCount returns the number of vertices written.
func (vb *vertexBuilder) VertexCount() int {
	return len(vb.vertices)
}

// VertexCapacity returns the number of vertices reserved for the mesh.
func (vb *vertexBuilder) VertexCapacity() int {
	return cap(vb.vertices)
}

// Vertices returns the vertices written so far, which can be modified.
func (vb *vertexBuilder) Vertices() []batch.Vertex {
	return vb.vertices
}

// AddVertex adds a vertex with the builder color.
func (vb *vertexBuilder) AddVertex(pos, tex math32.Vector2) {
	vb.AddVertexColor(pos, vb.Color, tex)
}

// AddVertexColor adds a vertex with the given color. The reserved
// capacity must not be exceeded.
func (vb *vertexBuilder) AddVertexColor(pos math32.Vector2, color math32.Vector4, tex math32.Vector2) {
	batch.Assert(len(vb.vertices) < cap(vb.vertices), "immediate: vertex capacity of the mesh build exceeded")
	vb.vertices = append(vb.vertices, batch.NewVertex(math32.Vector3FromVector2(pos, vb.ZPos), color, tex))
}

// BasicMeshBuilder builds a vertex only mesh, drawn as a triangle list.
// It is obtained from [Batcher.BeginBasicMeshBuild] and only valid until
// the matching [Batcher.EndBasicMeshBuild].
type BasicMeshBuilder struct {
	vertexBuilder
}

// AddTriangle adds a triangle with the builder color.
func (b *BasicMeshBuilder) AddTriangle(p0, p1, p2, t0, t1, t2 math32.Vector2) {
	b.AddVertex(p0, t0)
	b.AddVertex(p1, t1)
	b.AddVertex(p2, t2)
}

// AddRect adds the given rectangle as two triangles (6 vertices), with
// texture coordinates from the corresponding corners of tex.
func (b *BasicMeshBuilder) AddRect(r, tex math32.Box2) {
	tl, br := r.Min, r.Max
	tr, bl := math32.Vec2(br.X, tl.Y), math32.Vec2(tl.X, br.Y)
	ttl, tbr := tex.Min, tex.Max
	ttr, tbl := math32.Vec2(tbr.X, ttl.Y), math32.Vec2(ttl.X, tbr.Y)
	b.AddTriangle(tl, tr, bl, ttl, ttr, tbl)
	b.AddTriangle(bl, tr, br, tbl, ttr, tbr)
}

// MeshBuilder builds an indexed mesh. Indices are given relative to the
// first vertex of the mesh, and are stored relative to the first vertex
// of the segment. It is obtained from [Batcher.BeginMeshBuild] and only
// valid until the matching [Batcher.EndMeshBuild].
type MeshBuilder struct {
	vertexBuilder

	// base is the offset of the first vertex of the mesh
	// from the first vertex of its segment.
	base int

	indices []uint16
}

func (b *MeshBuilder) resetIndices(storage []uint16, base int) {
	b.base = base
	b.indices = storage[:0:len(storage)]
}

// IndexCount returns the number of indices written.
func (b *MeshBuilder) IndexCount() int {
	return len(b.indices)
}

// IndexCapacity returns the number of indices reserved for the mesh.
func (b *MeshBuilder) IndexCapacity() int {
	return cap(b.indices)
}

// Indices returns the segment relative indices written so far.
func (b *MeshBuilder) Indices() []uint16 {
	return b.indices
}

// AddIndex adds the index of the given vertex of the mesh.
func (b *MeshBuilder) AddIndex(i int) {
	batch.Assert(len(b.indices) < cap(b.indices), "immediate: index capacity of the mesh build exceeded")
	batch.Assert(i >= 0 && i < cap(b.vertices), "immediate: index refers to a vertex outside of the mesh")
	b.indices = append(b.indices, uint16(b.base+i))
}

// AddTriangle adds a triangle of the given vertices of the mesh.
func (b *MeshBuilder) AddTriangle(i0, i1, i2 int) {
	b.AddIndex(i0)
	b.AddIndex(i1)
	b.AddIndex(i2)
}

// AddRect adds the given rectangle as 4 vertices and 6 indices, with
// texture coordinates from the corresponding corners of tex.
func (b *MeshBuilder) AddRect(r, tex math32.Box2) {
	i := b.VertexCount()
	b.AddVertex(r.Min, tex.Min)
	b.AddVertex(math32.Vec2(r.Max.X, r.Min.Y), math32.Vec2(tex.Max.X, tex.Min.Y))
	b.AddVertex(math32.Vec2(r.Min.X, r.Max.Y), math32.Vec2(tex.Min.X, tex.Max.Y))
	b.AddVertex(r.Max, tex.Max)
	b.AddTriangle(i, i+1, i+2)
	b.AddTriangle(i+2, i+1, i+3)
}
