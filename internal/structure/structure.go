// Copyright 2026 The Pylens Authors
// SPDX-License-Identifier: MIT

// Package structure implements the prefix-based Python source structure
// scanner. It is deliberately not a parser: lines are trimmed and classified
// by prefix (`class `, `def `, `import `/`from `), so declarations inside
// string literals or comments are miscounted. That trade-off keeps the
// scanner dependency-free and fast, and the limitation is documented on Scan.
package structure

import (
	"time"

	"github.com/google/uuid"

	"pylens/internal/testable"
)

// FS is the file system implementation used by this package.
// Override in tests with a testable.MockFileSystem.
var FS testable.FileSystem = testable.DefaultFS

// methodLimit caps the number of method names carried in a report. The full
// count is always available in Stats.Methods.
const methodLimit = 10

// DefaultFrameworkKeywords is the fixed keyword set used to pick key imports
// when no overrides are configured.
var DefaultFrameworkKeywords = []string{"torch", "cv2", "numpy", "PIL"}

// Stats holds the raw line-classification counts for one scanned file.
type Stats struct {
	TotalLines int `json:"total_lines"`
	Classes    int `json:"classes"`
	Methods    int `json:"methods"`
	Imports    int `json:"imports"`
}

// Report is the JSON-serializable summary produced by a single scan of one
// Python source file. A report reflects a single read of the source at one
// point in time and is never mutated after creation.
type Report struct {
	ID           string   `json:"id"`
	File         string   `json:"file"`
	AnalysisTime string   `json:"analysis_time"` // RFC 3339
	Stats        Stats    `json:"stats"`
	ClassesFound []string `json:"classes_found"`
	MethodsFound []string `json:"methods_found"` // first 10 only
	ImportsFound []string `json:"imports_found"`
	KeyImports   []string `json:"key_imports"`
}

// Options configures a scan.
type Options struct {
	// FrameworkKeywords selects which import lines count as key imports.
	// Empty means DefaultFrameworkKeywords.
	FrameworkKeywords []string
}

// Overridable in tests for deterministic reports.
var (
	now   = time.Now
	newID = uuid.NewString
)
