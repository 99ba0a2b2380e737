// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package immediate provides [Batcher], which builds the segments and
batches of one frame of an immediate mode 2D renderer from a stream of
meshes, coalescing consecutive meshes with the same material and content
type into one batch (draw call), and consecutive batches into segments
(contiguous buffer regions) within configurable limits.

The call sequence for every frame is:

	bt.BeginBatch()
	b, err := bt.BeginMeshBuild(material, nverts, nidxs, color, 0)
	// fill b
	bt.EndMeshBuild(b)
	// more mesh builds
	bt.EndBatch()
	// read the segments and batches

Call sequence mistakes are logged as warnings and recovered from, so that a
misbehaving caller degrades a frame instead of crashing it.

The depth given to each mesh starts over at [batch.Config.ZPosStart] on every
[Batcher.BeginBatch] and advances by [batch.Config.ZPosIncrement] for each
committed mesh (unless it has [DontIncreaseZPos]), so depth does not carry
over from one frame to the next.
*/
package immediate

import (
	"log/slog"

	"cogentcore.org/batch/base/errors"
	"cogentcore.org/batch/base/slicesx"
	"cogentcore.org/batch/batch"
	"cogentcore.org/batch/math32"
)

// buildState is the kind of mesh build in progress, if any.
type buildState int32

const (
	buildNone buildState = iota
	buildBasic
	buildIndexed
)

// pendingMesh is the placement decided when a mesh build begins,
// which is only committed when it ends with a non empty mesh.
type pendingMesh struct {
	info       batch.BatchInfo
	newSegment bool
	newBatch   bool
	flags      MeshFlags
	zpos       float32
}

// Stats are the totals of the last (or current) frame.
type Stats struct {
	Segments int
	Batches  int
	Vertices int
	Indices  int

	// Meshes is the number of non empty meshes committed.
	Meshes int

	// EmptyMeshes is the number of mesh builds ended without any geometry.
	EmptyMeshes int

	// DiscardedMeshes is the number of partial indexed meshes
	// discarded in unchecked builds.
	DiscardedMeshes int
}

// Batcher builds the segments and batches of a frame. The vertex and
// index arrays, and the segment and batch records, are kept across
// frames so that steady state frames do not allocate.
// It is not safe for concurrent use.
type Batcher struct {
	// Config has the growth and limit settings.
	Config *batch.Config

	vertices    []batch.Vertex
	indices     []uint16
	vertexCount int
	indexCount  int

	segments     []batch.SegmentRecord
	segmentCount int
	batches      []batch.BatchRecord
	batchCount   int

	inBatch bool
	state   buildState
	pending pendingMesh
	zPos    float32
	stats   Stats

	basic BasicMeshBuilder
	mesh  MeshBuilder
}

// New returns a new [Batcher] with the initial capacities of the given
// config. A nil config uses [batch.DefaultConfig]. It panics with an
// [errors.ErrInvalidArgument] error if the config does not pass
// [batch.Config.Validate].
func New(cfg *batch.Config) *Batcher {
	if cfg == nil {
		cfg = batch.DefaultConfig()
	}
	errors.Must(cfg.Validate())
	return &Batcher{
		Config:   cfg,
		vertices: make([]batch.Vertex, cfg.DefaultVertexCapacity),
		indices:  make([]uint16, cfg.DefaultIndexCapacity),
		segments: make([]batch.SegmentRecord, cfg.DefaultSegmentCapacity),
		batches:  make([]batch.BatchRecord, cfg.DefaultBatchCapacity),
		zPos:     cfg.ZPosStart,
	}
}

// InBatch returns whether a frame is being built.
func (bt *Batcher) InBatch() bool {
	return bt.inBatch
}

// ZPos returns the depth that the next mesh will get.
func (bt *Batcher) ZPos() float32 {
	return bt.zPos
}

// reset empties the frame, keeping all of the storage.
func (bt *Batcher) reset() {
	bt.vertexCount = 0
	bt.indexCount = 0
	bt.segmentCount = 0
	bt.batchCount = 0
	bt.state = buildNone
	bt.zPos = bt.Config.ZPosStart
	bt.stats = Stats{}
}

// BeginBatch starts building a new frame, discarding the previous one.
// If a frame is already being built, it is ended first, with a warning.
func (bt *Batcher) BeginBatch() {
	if bt.inBatch {
		slog.Warn("immediate.Batcher.BeginBatch: already in a batch; ending it first", "segments", bt.segmentCount, "batches", bt.batchCount)
		bt.EndBatch()
	}
	bt.reset()
	bt.inBatch = true
}

// EndBatch ends the frame, after which its segments and batches can be
// read. A mesh build that is still open is ended first, with a warning.
func (bt *Batcher) EndBatch() {
	if !bt.inBatch {
		slog.Warn("immediate.Batcher.EndBatch: BeginBatch was not called")
		return
	}
	if bt.state != buildNone {
		slog.Warn("immediate.Batcher.EndBatch: a mesh build is still open; ending it")
		bt.endOpenBuild()
	}
	bt.inBatch = false
}

// ForceEndBatch ends the frame without finalizing it: all of its
// geometry, including an open mesh build, is discarded.
// It is intended for error recovery.
func (bt *Batcher) ForceEndBatch() {
	bt.reset()
	bt.inBatch = false
}

// endOpenBuild ends the mesh build in progress as is.
func (bt *Batcher) endOpenBuild() {
	switch bt.state {
	case buildBasic:
		bt.EndBasicMeshBuild(&bt.basic)
	case buildIndexed:
		bt.EndMeshBuild(&bt.mesh)
	}
}

// EnsureVertexCapacity makes sure that the vertex array can hold the
// given total number of vertices, growing it in chunks of
// [batch.Config.VertexGrowth]. It must not be called during a mesh build.
func (bt *Batcher) EnsureVertexCapacity(capacity int) {
	batch.Assert(bt.state == buildNone, "immediate.Batcher.EnsureVertexCapacity: called during a mesh build")
	bt.vertices = slicesx.GrowLength(bt.vertices, capacity, bt.Config.VertexGrowth)
}

// EnsureIndexCapacity makes sure that the index array can hold the
// given total number of indices, growing it in chunks of
// [batch.Config.IndexGrowth]. It must not be called during a mesh build.
func (bt *Batcher) EnsureIndexCapacity(capacity int) {
	batch.Assert(bt.state == buildNone, "immediate.Batcher.EnsureIndexCapacity: called during a mesh build")
	bt.indices = slicesx.GrowLength(bt.indices, capacity, bt.Config.IndexGrowth)
}

// BeginBasicMeshBuild starts building a vertex only mesh of at most
// vertexCapacity vertices with the given material, and returns the
// builder to fill it with. It returns an [errors.ErrSequence] error
// if [Batcher.BeginBatch] was not called, and an [errors.ErrNotSupported]
// error if vertexCapacity is above [batch.Config.MaxBasicMeshVertexCapacity].
func (bt *Batcher) BeginBasicMeshBuild(material batch.MaterialID, vertexCapacity int, color math32.Vector4, flags MeshFlags) (*BasicMeshBuilder, error) {
	if err := bt.beginBuild("BeginBasicMeshBuild", batch.ContentBasic, material, vertexCapacity, 0, flags); err != nil {
		return nil, err
	}
	bt.basic.reset(bt.vertices[bt.vertexCount:bt.vertexCount+vertexCapacity], color, bt.pending.zpos)
	bt.state = buildBasic
	return &bt.basic, nil
}

// BeginMeshBuild starts building an indexed mesh of at most vertexCapacity
// vertices and indexCapacity indices with the given material, and returns
// the builder to fill it with. It returns an [errors.ErrSequence] error
// if [Batcher.BeginBatch] was not called, and an [errors.ErrNotSupported]
// error if a capacity is above [batch.Config.MaxMeshVertexCapacity]
// or [batch.Config.MaxMeshIndexCapacity].
func (bt *Batcher) BeginMeshBuild(material batch.MaterialID, vertexCapacity, indexCapacity int, color math32.Vector4, flags MeshFlags) (*MeshBuilder, error) {
	if err := bt.beginBuild("BeginMeshBuild", batch.ContentIndexed, material, vertexCapacity, indexCapacity, flags); err != nil {
		return nil, err
	}
	base := 0
	if !bt.pending.newSegment {
		base = bt.vertexCount - bt.segments[bt.segmentCount-1].VertexSpan.Start
	}
	bt.mesh.reset(bt.vertices[bt.vertexCount:bt.vertexCount+vertexCapacity], color, bt.pending.zpos)
	bt.mesh.resetIndices(bt.indices[bt.indexCount:bt.indexCount+indexCapacity], base)
	bt.state = buildIndexed
	return &bt.mesh, nil
}

// beginBuild checks the call sequence and the capacities, decides where
// the mesh goes, and reserves its storage.
func (bt *Batcher) beginBuild(name string, ct batch.ContentType, material batch.MaterialID, vertexCapacity, indexCapacity int, flags MeshFlags) error {
	if !bt.inBatch {
		slog.Warn("immediate.Batcher."+name+": BeginBatch was not called", "material", material)
		return errors.Errorf("immediate.Batcher.%s: BeginBatch must be called first: %w", name, errors.ErrSequence)
	}
	if vertexCapacity < 0 || indexCapacity < 0 {
		return errors.Errorf("immediate.Batcher.%s: negative capacity (%d vertices, %d indices): %w", name, vertexCapacity, indexCapacity, errors.ErrInvalidArgument)
	}
	cfg := bt.Config
	if ct == batch.ContentBasic {
		if vertexCapacity > cfg.MaxBasicMeshVertexCapacity {
			return errors.Errorf("immediate.Batcher.%s: vertex capacity %d is above the maximum of %d: %w", name, vertexCapacity, cfg.MaxBasicMeshVertexCapacity, errors.ErrNotSupported)
		}
	} else {
		if vertexCapacity > cfg.MaxMeshVertexCapacity {
			return errors.Errorf("immediate.Batcher.%s: vertex capacity %d is above the maximum of %d: %w", name, vertexCapacity, cfg.MaxMeshVertexCapacity, errors.ErrNotSupported)
		}
		if indexCapacity > cfg.MaxMeshIndexCapacity {
			return errors.Errorf("immediate.Batcher.%s: index capacity %d is above the maximum of %d: %w", name, indexCapacity, cfg.MaxMeshIndexCapacity, errors.ErrNotSupported)
		}
	}
	if bt.state != buildNone {
		slog.Warn("immediate.Batcher."+name+": the previous mesh build was not ended; ending it")
		bt.endOpenBuild()
	}

	info := batch.BatchInfo{ContentType: ct, MaterialID: material}
	newSegment := bt.needsNewSegment(vertexCapacity, indexCapacity)
	newBatch := newSegment || cfg.OnlyOneEntryPerBatch || bt.batches[bt.batchCount-1].Info != info
	if newBatch && cfg.OnlyOneBatchPerSegment {
		newSegment = true
	}
	bt.pending = pendingMesh{info: info, newSegment: newSegment, newBatch: newBatch, flags: flags, zpos: bt.zPos}
	bt.EnsureVertexCapacity(bt.vertexCount + vertexCapacity)
	bt.EnsureIndexCapacity(bt.indexCount + indexCapacity)
	return nil
}

// needsNewSegment returns whether a mesh of the given capacities can
// not be added to the current segment. A mesh that is larger than the
// segment limits by itself gets a segment of its own.
func (bt *Batcher) needsNewSegment(vertexCapacity, indexCapacity int) bool {
	if bt.segmentCount == 0 {
		return true
	}
	cfg := bt.Config
	seg := &bt.segments[bt.segmentCount-1]
	nv, ni := seg.VertexSpan.Length, seg.IndexSpan.Length
	switch {
	case nv+vertexCapacity > cfg.MaxSegmentVertices, ni+indexCapacity > cfg.MaxSegmentIndices:
		return true
	case cfg.TriggerNewSegmentVertices > 0 && nv >= cfg.TriggerNewSegmentVertices:
		return true
	case cfg.TriggerNewSegmentIndices > 0 && ni >= cfg.TriggerNewSegmentIndices:
		return true
	}
	return false
}

// EndBasicMeshBuild commits the vertices written to the given builder,
// which must be the one returned by the last [Batcher.BeginBasicMeshBuild].
// An empty mesh is a no-op.
func (bt *Batcher) EndBasicMeshBuild(b *BasicMeshBuilder) {
	if bt.state != buildBasic || b != &bt.basic {
		slog.Warn("immediate.Batcher.EndBasicMeshBuild: no matching BeginBasicMeshBuild")
		return
	}
	bt.commit(b.VertexCount(), 0)
}

// EndMeshBuild commits the vertices and indices written to the given
// builder, which must be the one returned by the last [Batcher.BeginMeshBuild].
// A mesh must have both vertices and indices, or neither, in which case
// it is a no-op. A partial mesh is a contract violation; in unchecked
// builds it is discarded with a warning.
func (bt *Batcher) EndMeshBuild(b *MeshBuilder) {
	if bt.state != buildIndexed || b != &bt.mesh {
		slog.Warn("immediate.Batcher.EndMeshBuild: no matching BeginMeshBuild")
		return
	}
	nv, ni := b.VertexCount(), b.IndexCount()
	partial := (nv == 0) != (ni == 0)
	batch.Assert(!partial, "immediate.Batcher.EndMeshBuild: a mesh must have both vertices and indices, or neither")
	if partial {
		slog.Warn("immediate.Batcher.EndMeshBuild: discarding partial mesh", "vertices", nv, "indices", ni)
		bt.state = buildNone
		bt.stats.DiscardedMeshes++
		return
	}
	bt.commit(nv, ni)
}

// commit adds a mesh of the given counts, placed as decided by beginBuild.
func (bt *Batcher) commit(nv, ni int) {
	bt.state = buildNone
	if nv == 0 && ni == 0 {
		bt.stats.EmptyMeshes++
		return
	}
	cfg := bt.Config
	p := &bt.pending
	if p.newSegment {
		bt.segments = slicesx.GrowLength(bt.segments, bt.segmentCount+1, cfg.SegmentGrowth)
		bt.segments[bt.segmentCount] = batch.SegmentRecord{
			VertexSpan: batch.SpanRange{Start: bt.vertexCount},
			IndexSpan:  batch.SpanRange{Start: bt.indexCount},
			BatchRange: batch.SpanRange{Start: bt.batchCount},
		}
		bt.segmentCount++
	}
	seg := &bt.segments[bt.segmentCount-1]
	if p.newBatch {
		bt.batches = slicesx.GrowLength(bt.batches, bt.batchCount+1, cfg.BatchGrowth)
		bt.batches[bt.batchCount] = batch.BatchRecord{
			Info:       p.info,
			VertexSpan: batch.SpanRange{Start: bt.vertexCount},
			IndexSpan:  batch.SpanRange{Start: bt.indexCount},
			ZPos:       p.zpos,
		}
		bt.batchCount++
		seg.BatchRange.Length++
	}
	br := &bt.batches[bt.batchCount-1]
	br.VertexSpan.Length += nv
	br.IndexSpan.Length += ni
	seg.VertexSpan.Length += nv
	seg.IndexSpan.Length += ni
	bt.vertexCount += nv
	bt.indexCount += ni
	bt.stats.Meshes++
	if !p.flags.HasFlag(DontIncreaseZPos) {
		bt.zPos += cfg.ZPosIncrement
	}
}
