// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package immediate

import (
	"cogentcore.org/batch/base/errors"
	"cogentcore.org/batch/batch"
)

// The accessors read the frame built by the last BeginBatch / EndBatch
// cycle. Slices are valid until the next BeginBatch.

// SegmentCount returns the number of segments.
func (bt *Batcher) SegmentCount() int {
	return bt.segmentCount
}

// BatchCount returns the number of batches.
func (bt *Batcher) BatchCount() int {
	return bt.batchCount
}

// Segments returns all of the segment records.
func (bt *Batcher) Segments() []batch.SegmentRecord {
	return bt.segments[:bt.segmentCount]
}

// Batches returns all of the batch records.
func (bt *Batcher) Batches() []batch.BatchRecord {
	return bt.batches[:bt.batchCount]
}

// Segment returns the segment record at the given index.
func (bt *Batcher) Segment(i int) batch.SegmentRecord {
	checkIndex("segment", i, bt.segmentCount)
	return bt.segments[i]
}

// SegmentSpans returns the vertex and index ranges of the segment at
// the given index, within [Batcher.Vertices] and [Batcher.Indices].
func (bt *Batcher) SegmentSpans(i int) (vertices, indices batch.SpanRange) {
	sr := bt.Segment(i)
	return sr.VertexSpan, sr.IndexSpan
}

// SegmentBatchInfo returns the batch records of the segment at the given index.
func (bt *Batcher) SegmentBatchInfo(i int) []batch.BatchRecord {
	br := bt.Segment(i).BatchRange
	return bt.batches[br.Start:br.End()]
}

// SegmentVertices returns the vertices of the segment at the given index.
func (bt *Batcher) SegmentVertices(i int) []batch.Vertex {
	vs, _ := bt.SegmentSpans(i)
	return bt.vertices[vs.Start:vs.End()]
}

// SegmentIndices returns the indices of the segment at the given index,
// which are relative to its first vertex.
func (bt *Batcher) SegmentIndices(i int) []uint16 {
	_, is := bt.SegmentSpans(i)
	return bt.indices[is.Start:is.End()]
}

// BatchRecord returns the batch record at the given index.
func (bt *Batcher) BatchRecord(i int) batch.BatchRecord {
	checkIndex("batch", i, bt.batchCount)
	return bt.batches[i]
}

// Vertices returns the vertices of the frame.
func (bt *Batcher) Vertices() []batch.Vertex {
	return bt.vertices[:bt.vertexCount]
}

// Indices returns the indices of the frame.
func (bt *Batcher) Indices() []uint16 {
	return bt.indices[:bt.indexCount]
}

// VertexCapacity returns the length of the vertex array.
func (bt *Batcher) VertexCapacity() int {
	return len(bt.vertices)
}

// IndexCapacity returns the length of the index array.
func (bt *Batcher) IndexCapacity() int {
	return len(bt.indices)
}

// Stats returns the totals of the frame.
func (bt *Batcher) Stats() Stats {
	st := bt.stats
	st.Segments = bt.segmentCount
	st.Batches = bt.batchCount
	st.Vertices = bt.vertexCount
	st.Indices = bt.indexCount
	return st
}

// checkIndex panics with an [errors.ErrIndexOutOfRange] error
// if i is not in [0, n).
func checkIndex(what string, i, n int) {
	if i < 0 || i >= n {
		panic(errors.Errorf("immediate.Batcher: %s index %d is out of range of %d: %w", what, i, n, errors.ErrIndexOutOfRange))
	}
}
