// Copyright 2026 The Pylens Authors
// SPDX-License-Identifier: MIT

package output

import (
	"io"
	"testing"

	"pylens/internal/structure"
)

// stubFormatter is a minimal Formatter implementation for registry tests.
type stubFormatter struct {
	name string
}

func (s *stubFormatter) Name() string { return s.name }
func (s *stubFormatter) Format(_ []*structure.Report, _ io.Writer) error {
	return nil
}

func TestRegisterAndGetFormatter(t *testing.T) {
	resetFmtForTesting()
	defer restoreBuiltins()

	RegisterFormatter(&stubFormatter{name: "stub"})

	got, err := GetFormatter("stub")
	if err != nil {
		t.Fatalf("GetFormatter returned error: %v", err)
	}
	if got.Name() != "stub" {
		t.Errorf("Name() = %q, want %q", got.Name(), "stub")
	}
}

func TestGetFormatterUnknown(t *testing.T) {
	resetFmtForTesting()
	defer restoreBuiltins()

	RegisterFormatter(&stubFormatter{name: "alpha"})
	RegisterFormatter(&stubFormatter{name: "beta"})

	_, err := GetFormatter("nope")
	if err == nil {
		t.Fatal("expected error for unknown formatter")
	}
	want := `unknown format: "nope" (available: alpha, beta)`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestBuiltinFormattersRegistered(t *testing.T) {
	for _, name := range []string{"json", "markdown"} {
		if _, err := GetFormatter(name); err != nil {
			t.Errorf("builtin formatter %q not registered: %v", name, err)
		}
	}
}

// restoreBuiltins re-registers the formatters the init functions installed,
// so registry tests do not poison other tests in the package.
func restoreBuiltins() {
	resetFmtForTesting()
	RegisterFormatter(NewJSONFormatter())
	RegisterFormatter(NewMarkdownFormatter())
}
