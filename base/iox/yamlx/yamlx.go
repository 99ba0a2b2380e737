// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx reads and writes objects in the YAML format.
package yamlx

import (
	"io"
	"io/fs"

	"cogentcore.org/batch/base/iox"
	"gopkg.in/yaml.v3"
)

// NewDecoder returns a new YAML decoder for the given reader.
func NewDecoder(r io.Reader) iox.Decoder {
	return yaml.NewDecoder(r)
}

// NewEncoder returns a new YAML encoder for the given writer.
// It is closed by [iox.Write] after encoding.
func NewEncoder(w io.Writer) iox.Encoder {
	return yaml.NewEncoder(w)
}

// Open reads the given object from the given filename using YAML encoding
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// OpenFS reads the given object from the given filename in the given
// filesystem using YAML encoding
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, NewDecoder)
}

// ReadBytes reads the given object from the given bytes using YAML encoding
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, NewDecoder)
}

// Save writes the given object to the given filename using YAML encoding
func Save(v any, filename string) error {
	return iox.Save(v, filename, NewEncoder)
}

// Write writes the given object using YAML encoding
func Write(v any, w io.Writer) error {
	return iox.Write(v, w, NewEncoder)
}

// WriteBytes writes the given object, returning bytes of the YAML encoding
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, NewEncoder)
}
