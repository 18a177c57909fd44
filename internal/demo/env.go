package demo

import (
	"io"

	"pylens/internal/llm"
	"pylens/internal/testable"
)

// Env holds the shared state steps run against: where the target file lives,
// where template files are written, and the seams (FS, LLM, output writer)
// that tests and live mode swap out.
type Env struct {
	// Target is the Python file the walkthrough narrates over. The scripted
	// content does not depend on it existing; discovery stats it best-effort.
	Target string

	// OutDir is the directory template files are written into.
	OutDir string

	// FS is the file system seam. Nil means testable.DefaultFS.
	FS testable.FileSystem

	// Out receives all narration output.
	Out io.Writer

	// LLM, when non-nil, replaces the canned suggestion content with live
	// completions. Nil keeps the walkthrough fully offline.
	LLM llm.Provider

	narrator *Narrator
}

// fs returns the configured file system, defaulting to the real one.
func (e *Env) fs() testable.FileSystem {
	if e.FS != nil {
		return e.FS
	}
	return testable.DefaultFS
}

// Narrator returns the narrator bound to this env's output writer.
func (e *Env) Narrator() *Narrator {
	if e.narrator == nil {
		e.narrator = NewNarrator(e.Out)
	}
	return e.narrator
}
