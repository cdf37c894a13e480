// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides functions for reading TOML files into Go values.
package tomlx

import (
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Open reads the given TOML file into the given value.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Read(v, f)
}

// Read reads TOML from the given reader into the given value.
// Fields of v with no matching key keep their current value.
func Read(v any, reader io.Reader) error {
	return toml.NewDecoder(reader).Decode(v)
}
