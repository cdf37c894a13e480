// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type config struct {
	Name  string
	Scale float64
	Tags  []string
}

func TestRead(t *testing.T) {
	c := config{Name: "keep", Scale: 1}
	require.NoError(t, Read(&c, strings.NewReader("Scale = 2.5\nTags = ['a', 'b']\n")))
	assert.Equal(t, config{Name: "keep", Scale: 2.5, Tags: []string{"a", "b"}}, c)

	assert.Error(t, Read(&c, strings.NewReader("Scale = 'x'")))
}

func TestOpen(t *testing.T) {
	var c config
	fn := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(fn, []byte("Name = 'file'\n"), 0o666))
	require.NoError(t, Open(&c, fn))
	assert.Equal(t, "file", c.Name)

	assert.Error(t, Open(&c, filepath.Join(t.TempDir(), "missing.toml")))
}
