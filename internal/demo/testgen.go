package demo

import (
	"context"
	"fmt"
	"path/filepath"
)

// TestGenStep writes the canned unittest template to the output directory.
// Write failures are fatal: the runner aborts the walkthrough.
type TestGenStep struct{}

// Compile-time interface check.
var _ Step = (*TestGenStep)(nil)

func (*TestGenStep) Name() string  { return "testgen" }
func (*TestGenStep) Title() string { return "TEST CREATION" }

func (*TestGenStep) Description() string {
	return "Generate comprehensive unit tests for the Segmentation class"
}

func (*TestGenStep) Tools() []string {
	return []string{"create_file", "generate_tests", "setup_test_environment"}
}

// Run writes the unit-test template and narrates its coverage.
func (*TestGenStep) Run(_ context.Context, env *Env) ([]string, error) {
	n := env.Narrator()
	n.Printf("creating unit tests...\n")

	if err := env.fs().MkdirAll(env.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir %s: %w", env.OutDir, err)
	}

	path := filepath.Join(env.OutDir, TestTemplateFile)
	if err := env.fs().WriteFile(path, []byte(unitTestTemplate), 0o644); err != nil {
		return nil, fmt.Errorf("writing test template: %w", err)
	}

	n.Ok("created test file: %s", path)
	n.List("test coverage", testCoverageNotes, 0)

	return []string{path}, nil
}
