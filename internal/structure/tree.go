// Copyright 2026 The Pylens Authors
// SPDX-License-Identifier: MIT

package structure

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// skipDirs are directory names never descended into during tree scans.
var skipDirs = map[string]bool{
	".git":         true,
	"__pycache__":  true,
	".venv":        true,
	"venv":         true,
	"node_modules": true,
	".tox":         true,
	".mypy_cache":  true,
}

// ScanTree walks the directory rooted at root, scans every *.py file, and
// returns the reports ordered by file path. Files are scanned concurrently
// with a bounded worker count; unreadable files are logged and skipped so
// one bad file does not abort the whole tree.
func ScanTree(ctx context.Context, root string, opts Options) ([]*Report, error) {
	paths, err := pythonFiles(root)
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	sort.Strings(paths)

	reports := make([]*Report, len(paths))
	var mu sync.Mutex
	var skipped int

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, scanErr := Scan(path, opts)
			if scanErr != nil {
				slog.Warn("skipping unreadable file", "path", path, "error", scanErr)
				mu.Lock()
				skipped++
				mu.Unlock()
				return nil
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Compact out skipped entries.
	if skipped > 0 {
		kept := reports[:0]
		for _, r := range reports {
			if r != nil {
				kept = append(kept, r)
			}
		}
		reports = kept
	}

	return reports, nil
}

// pythonFiles collects the *.py files under root, skipping vendored and
// cache directories.
func pythonFiles(root string) ([]string, error) {
	var paths []string
	err := FS.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil // skip unreadable entries
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".py") {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}
