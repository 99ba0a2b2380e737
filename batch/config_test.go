// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"cogentcore.org/batch/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())
	assert.Equal(t, MaxIndexedVertices, c.MaxMeshVertexCapacity)
	assert.Equal(t, float32(1), c.ZPosIncrement)
}

func TestValidate(t *testing.T) {
	c := DefaultConfig()
	c.VertexGrowth = 0
	c.MaxMeshVertexCapacity = MaxIndexedVertices + 1
	c.TriggerNewSegmentIndices = -1
	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "VertexGrowth")
	assert.Contains(t, err.Error(), "16 bit index limit")
	assert.Contains(t, err.Error(), "TriggerNewSegmentIndices")
}

func TestClone(t *testing.T) {
	c := DefaultConfig()
	c.OnlyOneBatchPerSegment = true
	nc := c.Clone()
	assert.Equal(t, c, nc)
	nc.SegmentGrowth = 3
	assert.Equal(t, 16, c.SegmentGrowth)
}

func TestOpenSaveConfig(t *testing.T) {
	dir := t.TempDir()
	c := DefaultConfig()
	c.OnlyOneEntryPerBatch = true
	c.ZPosIncrement = 0.5
	for _, name := range []string{"batch.toml", "batch.yaml"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, c.SaveConfig(fn))
		back, err := OpenConfig(fn)
		require.NoError(t, err, name)
		assert.Equal(t, c, back, name)
	}

	fn := filepath.Join(dir, "partial.toml")
	require.NoError(t, os.WriteFile(fn, []byte("vertex_growth = 128\nonly_one_batch_per_segment = true\n"), 0666))
	p, err := OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, 128, p.VertexGrowth)
	assert.True(t, p.OnlyOneBatchPerSegment)
	assert.Equal(t, DefaultConfig().IndexGrowth, p.IndexGrowth)

	fn = filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(fn, []byte("segment_growth: 0\n"), 0666))
	_, err = OpenConfig(fn)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)

	_, err = OpenConfig(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestOpenConfigFS(t *testing.T) {
	fsys := fstest.MapFS{
		"presets/flat.toml":  {Data: []byte("only_one_batch_per_segment = true\nzpos_increment = 0.25\n")},
		"presets/small.yaml": {Data: []byte("max_segment_vertices: 1024\nmax_mesh_vertex_capacity: 512\n")},
		"presets/wide.toml":  {Data: []byte("max_segment_vertices = 131072\n")},
	}
	c, err := OpenConfigFS(fsys, "presets/flat.toml")
	require.NoError(t, err)
	assert.True(t, c.OnlyOneBatchPerSegment)
	assert.Equal(t, float32(0.25), c.ZPosIncrement)
	assert.Equal(t, DefaultConfig().VertexGrowth, c.VertexGrowth)

	c, err = OpenConfigFS(fsys, "presets/small.yaml")
	require.NoError(t, err)
	assert.Equal(t, 1024, c.MaxSegmentVertices)
	assert.Equal(t, 512, c.MaxMeshVertexCapacity)

	_, err = OpenConfigFS(fsys, "presets/wide.toml")
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)

	_, err = OpenConfigFS(fsys, "presets/missing.toml")
	assert.Error(t, err)
}
