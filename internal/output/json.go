// Copyright 2026 The Pylens Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"pylens/internal/structure"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope wraps multiple reports with metadata for tree scans.
type JSONEnvelope struct {
	Reports  []*structure.Report `json:"reports"`
	Metadata JSONMetadata        `json:"metadata"`
}

// JSONMetadata describes the scan that produced these reports.
type JSONMetadata struct {
	TotalReports int    `json:"total_reports"`
	GeneratedAt  string `json:"generated_at"`
}

// JSONFormatter writes reports as pretty-printed JSON with 2-space indent.
//
// A single report is emitted as the bare report object, preserving the
// on-disk shape that round-trips back into a structure.Report. Multiple
// reports (directory scans) are wrapped in a JSONEnvelope.
type JSONFormatter struct {
	// nowFunc is used for testing to override the current time.
	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string { return "json" }

// Format writes the reports to w.
func (f *JSONFormatter) Format(reports []*structure.Report, w io.Writer) error {
	var v any
	if len(reports) == 1 {
		v = reports[0]
	} else {
		now := time.Now()
		if f.nowFunc != nil {
			now = f.nowFunc()
		}
		v = JSONEnvelope{
			Reports: reports,
			Metadata: JSONMetadata{
				TotalReports: len(reports),
				GeneratedAt:  now.UTC().Format(time.RFC3339),
			},
		}
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write json trailing newline: %w", err)
	}
	return nil
}
