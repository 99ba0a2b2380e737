// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand/v2"

	"cogentcore.org/batch/batch"
	"cogentcore.org/batch/batch/immediate"
	"cogentcore.org/batch/batch/transparency"
	"cogentcore.org/batch/handles"
	"cogentcore.org/batch/math32"
	"github.com/muesli/termenv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// counts formats the totals in the headers, with digit grouping.
var counts = message.NewPrinter(language.English)

// material is a material of the synthetic scene.
type material struct {
	Name  string
	Blend batch.BlendState
}

// scene is the set of materials of the synthetic frame. Batches refer
// to materials by handle, stored in their [batch.MaterialID].
type scene struct {
	materials *handles.Vector[material]
	panel     handles.Handle
	border    handles.Handle
	glyphs    handles.Handle
	icons     handles.Handle
	shadow    handles.Handle
}

func newScene() (*scene, error) {
	mats, err := handles.New[material](8)
	if err != nil {
		return nil, err
	}
	sc := &scene{materials: mats}
	for _, m := range []struct {
		h *handles.Handle
		m material
	}{
		{&sc.panel, material{"panel", batch.BlendOpaque}},
		{&sc.border, material{"border", batch.BlendOpaque}},
		{&sc.glyphs, material{"glyphs", batch.BlendAlpha}},
		{&sc.icons, material{"icons", batch.BlendPremultiplied}},
		{&sc.shadow, material{"shadow", batch.BlendAdditive}},
	} {
		if *m.h, err = mats.Add(m.m); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

// materialID returns the batch material of the given material handle.
func materialID(h handles.Handle) batch.MaterialID {
	return batch.MaterialID(uint32(h))
}

// name returns the name of the material with the given handle.
func (sc *scene) name(h handles.Handle) string {
	if m, ok := sc.materials.TryGet(h); ok {
		return m.Name
	}
	return h.String()
}

// buildFrame builds a frame of the given number of widgets, each with a
// background panel, a border, and a label of a random number of glyphs.
func buildFrame(bt *immediate.Batcher, sc *scene, widgets int, rnd *rand.Rand) error {
	bt.BeginBatch()
	for i := range widgets {
		r := math32.B2(0, float32(i*24), 200, float32(i*24+20))
		bg, err := bt.BeginBasicMeshBuild(materialID(sc.panel), 6, math32.Vec4(0.9, 0.9, 0.9, 1), 0)
		if err != nil {
			bt.ForceEndBatch()
			return err
		}
		bg.AddRect(r, math32.B2(0, 0, 1, 1))
		bt.EndBasicMeshBuild(bg)

		bd, err := bt.BeginMeshBuild(materialID(sc.border), 16, 24, math32.Vec4(0.2, 0.2, 0.2, 1), immediate.DontIncreaseZPos)
		if err != nil {
			bt.ForceEndBatch()
			return err
		}
		for _, edge := range []math32.Box2{
			math32.B2(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
			math32.B2(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
			math32.B2(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
			math32.B2(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
		} {
			bd.AddRect(edge, math32.B2(0, 0, 1, 1))
		}
		bt.EndMeshBuild(bd)

		glyphs := rnd.IntN(12)
		lb, err := bt.BeginMeshBuild(materialID(sc.glyphs), 12*4, 12*6, math32.Vec4(0, 0, 0, 1), 0)
		if err != nil {
			bt.ForceEndBatch()
			return err
		}
		for g := range glyphs {
			x := r.Min.X + 4 + float32(g*8)
			lb.AddRect(math32.B2(x, r.Min.Y+4, x+7, r.Max.Y-4), math32.B2(0, 0, 0.1, 0.1))
		}
		bt.EndMeshBuild(lb)
	}
	bt.EndBatch()
	return nil
}

// buildQuads adds the given number of quads with random materials,
// in runs of up to 8 quads with the same material.
func buildQuads(st *transparency.Strategy[handles.Handle], sc *scene, quads int, rnd *rand.Rand) {
	st.Clear()
	all := []handles.Handle{sc.panel, sc.border, sc.glyphs, sc.icons, sc.shadow}
	for quads > 0 {
		h := all[rnd.IntN(len(all))]
		m, _ := sc.materials.Get(h)
		n := min(quads, 1+rnd.IntN(8))
		st.EnsureCapacity(n)
		st.SetState(h, m.Blend)
		for range n {
			p := math32.Vec2(float32(rnd.IntN(800)), float32(rnd.IntN(600)))
			st.AddQuad(p, p.Add(math32.Vec2(16, 0)), p.Add(math32.Vec2(0, 16)), p.Add(math32.Vec2(16, 16)),
				math32.Vec2(0, 0), math32.Vec2(1, 1), math32.Vec4(1, 1, 1, 1))
		}
		quads -= n
	}
}

// reportFrame writes the segments and batches of the frame.
func reportFrame(out *termenv.Output, bt *immediate.Batcher, sc *scene) {
	s := bt.Stats()
	fmt.Fprintln(out, out.String(counts.Sprintf("immediate: %d segments, %d batches, %d meshes, %d vertices, %d indices",
		s.Segments, s.Batches, s.Meshes, s.Vertices, s.Indices)).Bold())
	for i, seg := range bt.Segments() {
		fmt.Fprintf(out, "segment %d: vertices %v indices %v batches %v\n", i, seg.VertexSpan, seg.IndexSpan, seg.BatchRange)
		for j, br := range bt.SegmentBatchInfo(i) {
			fmt.Fprintf(out, "  batch %d: %-7v %-8s vertices %v indices %v z %g\n", seg.BatchRange.Start+j,
				br.Info.ContentType, sc.name(handles.Handle(int32(br.Info.MaterialID))), br.VertexSpan, br.IndexSpan, br.ZPos)
		}
	}
}

// reportQuads writes the opaque and transparent segments of the strategy.
func reportQuads(out *termenv.Output, st *transparency.Strategy[handles.Handle], sc *scene) {
	fmt.Fprintln(out, out.String(counts.Sprintf("transparency: capacity %d, %d opaque quads in %d segments, %d transparent quads in %d segments",
		st.Capacity(), st.OpaqueQuadCount(), st.OpaqueSegmentCount(), st.TransparentQuadCount(), st.TransparentSegmentCount())).Bold())
	writeSegment := func(kind string, i int, sg transparency.Segment[handles.Handle], span batch.SpanRange) {
		fmt.Fprintf(out, "%s %d: %-8s %-13v %3d quads vertices %v bounds %v-%v\n", kind, i,
			sc.name(sg.TextureInfo), sg.BlendState, sg.QuadCount(), span, sg.Bounds.Min, sg.Bounds.Max)
	}
	for i := range st.OpaqueSegmentCount() {
		writeSegment("opaque", i, st.OpaqueSegment(i), st.OpaqueSegmentSpan(i))
	}
	for i := range st.TransparentSegmentCount() {
		writeSegment("transparent", i, st.TransparentSegment(i), st.TransparentSegmentSpan(i))
	}
}
