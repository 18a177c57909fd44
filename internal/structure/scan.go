// Copyright 2026 The Pylens Authors
// SPDX-License-Identifier: MIT

package structure

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// ErrNotFound is returned by Scan when the source file does not exist.
// Callers distinguish it with errors.Is; all other I/O failures propagate
// unwrapped and are treated as fatal.
var ErrNotFound = errors.New("source file not found")

// Scan reads the Python file at path and returns a structure report.
//
// Classification is a shallow, line-oriented prefix match: each line is
// trimmed and checked for `class `, `def `, or `import `/`from ` prefixes.
// Nested declarations, strings, and comments are not understood, so a
// `def` spelled inside a docstring is still counted. This matches the
// scanner's documented contract and is not a bug to fix silently.
func Scan(path string, opts Options) (*Report, error) {
	if _, err := FS.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	data, err := FS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")

	var classes, methods, imports []string
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(stripped, "class "):
			if name := declName(stripped); name != "" {
				classes = append(classes, strings.TrimSuffix(name, ":"))
			}
		case strings.HasPrefix(stripped, "def "):
			if name := declName(stripped); name != "" {
				methods = append(methods, name)
			}
		case strings.HasPrefix(stripped, "import "), strings.HasPrefix(stripped, "from "):
			imports = append(imports, stripped)
		}
	}

	keywords := opts.FrameworkKeywords
	if len(keywords) == 0 {
		keywords = DefaultFrameworkKeywords
	}

	return &Report{
		ID:           newID(),
		File:         path,
		AnalysisTime: now().UTC().Format(time.RFC3339),
		Stats: Stats{
			TotalLines: len(lines),
			Classes:    len(classes),
			Methods:    len(methods),
			Imports:    len(imports),
		},
		ClassesFound: classes,
		MethodsFound: truncate(methods, methodLimit),
		ImportsFound: imports,
		KeyImports:   keyImports(imports, keywords),
	}, nil
}

// declName extracts the identifier from a `class Foo(Base):` or `def bar():`
// line: the second whitespace field, cut at the first parenthesis. Lines with
// no identifier (e.g. a bare `class `) yield "".
func declName(stripped string) string {
	fields := strings.Fields(stripped)
	if len(fields) < 2 {
		return ""
	}
	name, _, _ := strings.Cut(fields[1], "(")
	return name
}

// keyImports returns the subset of import lines mentioning any framework
// keyword, preserving input order.
func keyImports(imports, keywords []string) []string {
	var key []string
	for _, imp := range imports {
		for _, kw := range keywords {
			if strings.Contains(imp, kw) {
				key = append(key, imp)
				break
			}
		}
	}
	return key
}

// truncate returns at most n leading elements of s without copying.
func truncate(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
