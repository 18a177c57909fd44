// Copyright 2026 The Pylens Authors
// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// pyproject models the subset of pyproject.toml that matters here: the
// declared project dependencies (PEP 621).
type pyproject struct {
	Project struct {
		Name         string   `toml:"name"`
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
}

// ProjectKeywords reads pyproject.toml under root and returns the base names
// of the declared dependencies, for use as extra framework keywords. A missing
// pyproject.toml is not an error; the scan just proceeds without it.
func ProjectKeywords(root string) ([]string, error) {
	path := filepath.Join(root, "pyproject.toml")
	data, err := FS.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var pp pyproject
	if err := toml.Unmarshal(data, &pp); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var names []string
	seen := make(map[string]bool)
	for _, dep := range pp.Project.Dependencies {
		name := depBaseName(dep)
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names, nil
}

// depBaseName strips a PEP 508 requirement spec ("numpy>=1.24,<2; extra")
// down to the bare distribution name.
func depBaseName(spec string) string {
	spec = strings.TrimSpace(spec)
	if i := strings.IndexAny(spec, " <>=!~[(;"); i >= 0 {
		return spec[:i]
	}
	return spec
}
