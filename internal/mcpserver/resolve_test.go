// Copyright 2026 The Pylens Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath_File(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	path := filepath.Join(dir, "seg.py")
	require.NoError(t, os.WriteFile(path, []byte("import torch\n"), 0o600))

	info, err := ResolvePath(path)
	require.NoError(t, err)
	assert.Equal(t, path, info.AbsPath)
	assert.False(t, info.IsDir)
}

func TestResolvePath_Directory(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	info, err := ResolvePath(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, info.AbsPath)
	assert.True(t, info.IsDir)
}

func TestResolvePath_EmptyDefaultsToCwd(t *testing.T) {
	info, err := ResolvePath("")
	require.NoError(t, err)
	assert.True(t, info.IsDir)
	assert.True(t, filepath.IsAbs(info.AbsPath))
}

func TestResolvePath_Missing(t *testing.T) {
	info, err := ResolvePath(filepath.Join(t.TempDir(), "missing.py"))
	assert.Nil(t, info)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestResolvePath_ResolvesSymlinks(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	real := filepath.Join(dir, "real.py")
	require.NoError(t, os.WriteFile(real, []byte("pass\n"), 0o600))
	link := filepath.Join(dir, "link.py")
	require.NoError(t, os.Symlink(real, link))

	info, err := ResolvePath(link)
	require.NoError(t, err)
	assert.Equal(t, real, info.AbsPath)
}
