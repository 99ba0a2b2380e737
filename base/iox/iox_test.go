// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox_test

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"cogentcore.org/batch/base/iox/tomlx"
	"cogentcore.org/batch/base/iox/yamlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type limits struct {
	Name     string `toml:"name" yaml:"name"`
	Vertices int    `toml:"vertices" yaml:"vertices"`
	Split    bool   `toml:"split" yaml:"split"`
}

func TestTOML(t *testing.T) {
	in := limits{Name: "ui", Vertices: 65536, Split: true}
	fn := filepath.Join(t.TempDir(), "limits.toml")
	require.NoError(t, tomlx.Save(&in, fn))

	var out limits
	require.NoError(t, tomlx.Open(&out, fn))
	assert.Equal(t, in, out)

	b, err := tomlx.WriteBytes(&in)
	require.NoError(t, err)
	assert.Contains(t, string(b), "vertices = 65536")
}

func TestYAML(t *testing.T) {
	var out limits
	require.NoError(t, yamlx.ReadBytes(&out, []byte("name: sprites\nvertices: 1024\n")))
	assert.Equal(t, limits{Name: "sprites", Vertices: 1024}, out)

	fn := filepath.Join(t.TempDir(), "limits.yaml")
	require.NoError(t, yamlx.Save(&out, fn))
	var back limits
	require.NoError(t, yamlx.Open(&back, fn))
	assert.Equal(t, out, back)
}

func TestOpenMissing(t *testing.T) {
	var out limits
	assert.Error(t, tomlx.Open(&out, filepath.Join(t.TempDir(), "missing.toml")))
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{
		"limits.toml": {Data: []byte("name = \"ui\"\nvertices = 4096\n")},
		"limits.yaml": {Data: []byte("name: ui\nsplit: true\n")},
	}
	var out limits
	require.NoError(t, tomlx.OpenFS(&out, fsys, "limits.toml"))
	assert.Equal(t, limits{Name: "ui", Vertices: 4096}, out)

	out = limits{}
	require.NoError(t, yamlx.OpenFS(&out, fsys, "limits.yaml"))
	assert.Equal(t, limits{Name: "ui", Split: true}, out)

	assert.Error(t, tomlx.OpenFS(&out, fsys, "missing.toml"))
}
