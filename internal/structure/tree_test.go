// Copyright 2026 The Pylens Authors
// SPDX-License-Identifier: MIT

package structure

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree lays out files under a temp root. Keys are relative paths;
// values are file contents.
func buildTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return root
}

func TestScanTree_OrderedByPath(t *testing.T) {
	root := buildTree(t, map[string]string{
		"zeta.py":      "class Z:\n",
		"alpha.py":     "class A:\n",
		"sub/inner.py": "def inner():\n    pass\n",
	})

	reports, err := ScanTree(context.Background(), root, Options{})
	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.Equal(t, filepath.Join(root, "alpha.py"), reports[0].File)
	assert.Equal(t, filepath.Join(root, "sub", "inner.py"), reports[1].File)
	assert.Equal(t, filepath.Join(root, "zeta.py"), reports[2].File)
	assert.Equal(t, []string{"A"}, reports[0].ClassesFound)
	assert.Equal(t, []string{"inner"}, reports[1].MethodsFound)
}

func TestScanTree_SkipsVendoredDirs(t *testing.T) {
	root := buildTree(t, map[string]string{
		"keep.py":                 "import os\n",
		".venv/lib/dep.py":        "import torch\n",
		"__pycache__/cached.py":   "import torch\n",
		"node_modules/shim.py":    "import torch\n",
		".git/hooks/pre-merge.py": "import torch\n",
	})

	reports, err := ScanTree(context.Background(), root, Options{})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, filepath.Join(root, "keep.py"), reports[0].File)
}

func TestScanTree_IgnoresNonPython(t *testing.T) {
	root := buildTree(t, map[string]string{
		"main.py":   "def main():\n    pass\n",
		"README.md": "# readme\n",
		"setup.cfg": "[metadata]\n",
	})

	reports, err := ScanTree(context.Background(), root, Options{})
	require.NoError(t, err)
	require.Len(t, reports, 1)
}

func TestScanTree_EmptyRoot(t *testing.T) {
	reports, err := ScanTree(context.Background(), t.TempDir(), Options{})
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestScanTree_CanceledContext(t *testing.T) {
	root := buildTree(t, map[string]string{"a.py": "import os\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ScanTree(ctx, root, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScanTree_OptionsPropagate(t *testing.T) {
	root := buildTree(t, map[string]string{"a.py": "import requests\n"})

	reports, err := ScanTree(context.Background(), root, Options{FrameworkKeywords: []string{"requests"}})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, []string{"import requests"}, reports[0].KeyImports)
}
