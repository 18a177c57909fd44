// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes pylens's scan and walkthrough operations as tools over stdio
// transport.
package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathInfo holds the resolved path information for a scan target.
type PathInfo struct {
	// AbsPath is the absolute, symlink-resolved path.
	AbsPath string
	// IsDir reports whether the target is a directory (tree scan).
	IsDir bool
}

// ResolvePath resolves a scan target to an absolute path. Unlike repository
// tools that require directories, pylens accepts both a single Python file
// and a directory root. It returns an error if the path does not exist.
func ResolvePath(path string) (*PathInfo, error) {
	if path == "" {
		path = "."
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	absPath, err = filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("path %q does not exist", path)
	}

	return &PathInfo{
		AbsPath: absPath,
		IsDir:   info.IsDir(),
	}, nil
}
