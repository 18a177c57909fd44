package demo

import (
	"context"
	"fmt"
	"path/filepath"
)

// DocGenStep writes the canned markdown documentation to the output
// directory. Like TestGenStep, write failures abort the walkthrough.
type DocGenStep struct{}

// Compile-time interface check.
var _ Step = (*DocGenStep)(nil)

func (*DocGenStep) Name() string  { return "docgen" }
func (*DocGenStep) Title() string { return "DOCUMENTATION" }

func (*DocGenStep) Description() string {
	return "Generate API documentation and usage examples"
}

func (*DocGenStep) Tools() []string {
	return []string{"create_file", "generate_docs", "create_examples"}
}

// Run writes the documentation template and narrates its contents.
func (*DocGenStep) Run(_ context.Context, env *Env) ([]string, error) {
	n := env.Narrator()
	n.Printf("generating documentation...\n")

	if err := env.fs().MkdirAll(env.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir %s: %w", env.OutDir, err)
	}

	path := filepath.Join(env.OutDir, DocTemplateFile)
	if err := env.fs().WriteFile(path, []byte(docTemplate), 0o644); err != nil {
		return nil, fmt.Errorf("writing documentation template: %w", err)
	}

	n.Ok("created documentation: %s", path)
	n.List("documentation includes", docContentNotes, 0)

	return []string{path}, nil
}
