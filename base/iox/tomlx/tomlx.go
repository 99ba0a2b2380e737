// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx reads and writes objects in the TOML format.
package tomlx

import (
	"io"
	"io/fs"

	"cogentcore.org/batch/base/iox"
	"github.com/pelletier/go-toml/v2"
)

// NewDecoder returns a new TOML decoder for the given reader.
func NewDecoder(r io.Reader) iox.Decoder {
	return toml.NewDecoder(r)
}

// NewEncoder returns a new TOML encoder for the given writer.
func NewEncoder(w io.Writer) iox.Encoder {
	return toml.NewEncoder(w)
}

// Open reads the given object from the given filename using TOML encoding
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// OpenFS reads the given object from the given filename in the given
// filesystem using TOML encoding
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, NewDecoder)
}

// ReadBytes reads the given object from the given bytes using TOML encoding
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, NewDecoder)
}

// Save writes the given object to the given filename using TOML encoding
func Save(v any, filename string) error {
	return iox.Save(v, filename, NewEncoder)
}

// Write writes the given object using TOML encoding
func Write(v any, w io.Writer) error {
	return iox.Write(v, w, NewEncoder)
}

// WriteBytes writes the given object, returning bytes of the TOML encoding
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, NewEncoder)
}
