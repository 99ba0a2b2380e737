// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"io/fs"
	"path/filepath"
	"strings"

	"cogentcore.org/batch/base/errors"
	"cogentcore.org/batch/base/iox/tomlx"
	"cogentcore.org/batch/base/iox/yamlx"
	"github.com/jinzhu/copier"
)

// MaxIndexedVertices is the number of vertices a 16 bit index can address.
const MaxIndexedVertices = 1 << 16

// Config contains the growth and limit settings of the batchers.
// All counts are in elements (vertices, indices, segments, batches),
// except for the quad settings of the transparency strategy.
type Config struct {

	// SegmentGrowth is the number of segment records added when full.
	SegmentGrowth int `toml:"segment_growth" yaml:"segment_growth"`

	// BatchGrowth is the number of batch records added when full.
	BatchGrowth int `toml:"batch_growth" yaml:"batch_growth"`

	// VertexGrowth is the chunk size the vertex array grows by.
	VertexGrowth int `toml:"vertex_growth" yaml:"vertex_growth"`

	// IndexGrowth is the chunk size the index array grows by.
	IndexGrowth int `toml:"index_growth" yaml:"index_growth"`

	// QuadGrowth is the minimum number of quads the transparency
	// strategy grows each side by.
	QuadGrowth int `toml:"quad_growth" yaml:"quad_growth"`

	// DefaultVertexCapacity is the initial vertex capacity.
	DefaultVertexCapacity int `toml:"default_vertex_capacity" yaml:"default_vertex_capacity"`

	// DefaultIndexCapacity is the initial index capacity.
	DefaultIndexCapacity int `toml:"default_index_capacity" yaml:"default_index_capacity"`

	// DefaultSegmentCapacity is the initial number of segment records.
	DefaultSegmentCapacity int `toml:"default_segment_capacity" yaml:"default_segment_capacity"`

	// DefaultBatchCapacity is the initial number of batch records.
	DefaultBatchCapacity int `toml:"default_batch_capacity" yaml:"default_batch_capacity"`

	// MaxBasicMeshVertexCapacity is the largest vertex capacity
	// a single basic (non indexed) mesh may request.
	MaxBasicMeshVertexCapacity int `toml:"max_basic_mesh_vertex_capacity" yaml:"max_basic_mesh_vertex_capacity"`

	// MaxMeshVertexCapacity is the largest vertex capacity a single
	// indexed mesh may request. It can not exceed [MaxIndexedVertices].
	MaxMeshVertexCapacity int `toml:"max_mesh_vertex_capacity" yaml:"max_mesh_vertex_capacity"`

	// MaxMeshIndexCapacity is the largest index capacity a single
	// indexed mesh may request.
	MaxMeshIndexCapacity int `toml:"max_mesh_index_capacity" yaml:"max_mesh_index_capacity"`

	// MaxSegmentVertices is the hard vertex limit of a segment, so that
	// segment relative 16 bit indices can address all of its vertices.
	MaxSegmentVertices int `toml:"max_segment_vertices" yaml:"max_segment_vertices"`

	// MaxSegmentIndices is the hard index limit of a segment.
	MaxSegmentIndices int `toml:"max_segment_indices" yaml:"max_segment_indices"`

	// TriggerNewSegmentVertices starts a new segment before the next
	// mesh once a segment holds at least this many vertices. 0 is off.
	TriggerNewSegmentVertices int `toml:"trigger_new_segment_vertices" yaml:"trigger_new_segment_vertices"`

	// TriggerNewSegmentIndices starts a new segment before the next
	// mesh once a segment holds at least this many indices. 0 is off.
	TriggerNewSegmentIndices int `toml:"trigger_new_segment_indices" yaml:"trigger_new_segment_indices"`

	// OnlyOneEntryPerBatch puts every mesh into a batch of its own.
	OnlyOneEntryPerBatch bool `toml:"only_one_entry_per_batch" yaml:"only_one_entry_per_batch"`

	// OnlyOneBatchPerSegment puts every batch into a segment of its own.
	OnlyOneBatchPerSegment bool `toml:"only_one_batch_per_segment" yaml:"only_one_batch_per_segment"`

	// ZPosStart is the depth of the first mesh of a frame.
	ZPosStart float32 `toml:"zpos_start" yaml:"zpos_start"`

	// ZPosIncrement is added to the depth for every mesh build,
	// unless it is flagged with DontIncreaseZPos.
	ZPosIncrement float32 `toml:"zpos_increment" yaml:"zpos_increment"`
}

// DefaultConfig returns a new [Config] with the standard settings,
// tuned for typical per-frame UI batch sizes.
func DefaultConfig() *Config {
	return &Config{
		SegmentGrowth:              16,
		BatchGrowth:                64,
		VertexGrowth:               4096,
		IndexGrowth:                4096,
		QuadGrowth:                 256,
		DefaultVertexCapacity:      4096,
		DefaultIndexCapacity:       4096,
		DefaultSegmentCapacity:     16,
		DefaultBatchCapacity:       64,
		MaxBasicMeshVertexCapacity: 1 << 20,
		MaxMeshVertexCapacity:      MaxIndexedVertices,
		MaxMeshIndexCapacity:       1 << 20,
		MaxSegmentVertices:         MaxIndexedVertices,
		MaxSegmentIndices:          1 << 20,
		ZPosStart:                  0,
		ZPosIncrement:              1,
	}
}

// Validate returns an [errors.ErrInvalidArgument] error describing
// every setting that is out of range.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v < 1 {
			errs = append(errs, errors.Errorf("batch.Config: %s must be positive, not %d: %w", name, v, errors.ErrInvalidArgument))
		}
	}
	positive("SegmentGrowth", c.SegmentGrowth)
	positive("BatchGrowth", c.BatchGrowth)
	positive("VertexGrowth", c.VertexGrowth)
	positive("IndexGrowth", c.IndexGrowth)
	positive("QuadGrowth", c.QuadGrowth)
	positive("MaxBasicMeshVertexCapacity", c.MaxBasicMeshVertexCapacity)
	positive("MaxMeshVertexCapacity", c.MaxMeshVertexCapacity)
	positive("MaxMeshIndexCapacity", c.MaxMeshIndexCapacity)
	positive("MaxSegmentVertices", c.MaxSegmentVertices)
	positive("MaxSegmentIndices", c.MaxSegmentIndices)
	nonNegative := func(name string, v int) {
		if v < 0 {
			errs = append(errs, errors.Errorf("batch.Config: %s must not be negative, not %d: %w", name, v, errors.ErrInvalidArgument))
		}
	}
	nonNegative("DefaultVertexCapacity", c.DefaultVertexCapacity)
	nonNegative("DefaultIndexCapacity", c.DefaultIndexCapacity)
	nonNegative("DefaultSegmentCapacity", c.DefaultSegmentCapacity)
	nonNegative("DefaultBatchCapacity", c.DefaultBatchCapacity)
	nonNegative("TriggerNewSegmentVertices", c.TriggerNewSegmentVertices)
	nonNegative("TriggerNewSegmentIndices", c.TriggerNewSegmentIndices)
	if c.MaxMeshVertexCapacity > MaxIndexedVertices {
		errs = append(errs, errors.Errorf("batch.Config: MaxMeshVertexCapacity %d is above the 16 bit index limit of %d: %w", c.MaxMeshVertexCapacity, MaxIndexedVertices, errors.ErrInvalidArgument))
	}
	if c.MaxSegmentVertices > MaxIndexedVertices {
		errs = append(errs, errors.Errorf("batch.Config: MaxSegmentVertices %d is above the 16 bit index limit of %d: %w", c.MaxSegmentVertices, MaxIndexedVertices, errors.ErrInvalidArgument))
	}
	if c.MaxMeshVertexCapacity > c.MaxSegmentVertices {
		errs = append(errs, errors.Errorf("batch.Config: MaxMeshVertexCapacity %d does not fit in MaxSegmentVertices %d: %w", c.MaxMeshVertexCapacity, c.MaxSegmentVertices, errors.ErrInvalidArgument))
	}
	if c.MaxMeshIndexCapacity > c.MaxSegmentIndices {
		errs = append(errs, errors.Errorf("batch.Config: MaxMeshIndexCapacity %d does not fit in MaxSegmentIndices %d: %w", c.MaxMeshIndexCapacity, c.MaxSegmentIndices, errors.ErrInvalidArgument))
	}
	return errors.Join(errs...)
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	nc := &Config{}
	errors.Log(copier.Copy(nc, c))
	return nc
}

// OpenConfig reads a [Config] from the given file, starting from
// [DefaultConfig] so that missing settings keep their defaults.
// The format is chosen by extension: .yaml or .yml for YAML, else TOML.
// The result is validated.
func OpenConfig(filename string) (*Config, error) {
	c := DefaultConfig()
	var err error
	if isYAML(filename) {
		err = yamlx.Open(c, filename)
	} else {
		err = tomlx.Open(c, filename)
	}
	return c.validated(err)
}

// OpenConfigFS is [OpenConfig] for a file in the given filesystem,
// such as settings embedded in a binary.
func OpenConfigFS(fsys fs.FS, filename string) (*Config, error) {
	c := DefaultConfig()
	var err error
	if isYAML(filename) {
		err = yamlx.OpenFS(c, fsys, filename)
	} else {
		err = tomlx.OpenFS(c, fsys, filename)
	}
	return c.validated(err)
}

func (c *Config) validated(err error) (*Config, error) {
	if err != nil {
		return nil, errors.Wrap(err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// SaveConfig writes the config to the given file, in the format
// chosen by extension as in [OpenConfig].
func (c *Config) SaveConfig(filename string) error {
	if isYAML(filename) {
		return errors.Wrap(yamlx.Save(c, filename))
	}
	return errors.Wrap(tomlx.Save(c, filename))
}

func isYAML(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}
