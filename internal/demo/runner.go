// Copyright 2026 The Pylens Authors
// SPDX-License-Identifier: MIT

package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Registration order defines the scripted sequence.
func init() {
	Register(&DiscoveryStep{})
	Register(&AnalysisStep{})
	Register(&OptimizeStep{})
	Register(&TestGenStep{})
	Register(&DocGenStep{})
	Register(&RefactorStep{})
}

// Overridable in tests for deterministic summaries.
var (
	now   = time.Now
	newID = uuid.NewString
)

// StepResult records one executed step.
type StepResult struct {
	Step         string        `json:"step"`
	Duration     time.Duration `json:"duration"`
	PathsWritten []string      `json:"paths_written,omitempty"`
}

// Summary is the aggregate record of one walkthrough run, for display only.
type Summary struct {
	RunID        string        `json:"run_id"`
	Target       string        `json:"target"`
	Duration     time.Duration `json:"duration"`
	Steps        []StepResult  `json:"steps"`
	PathsWritten []string      `json:"paths_written"`
}

// Runner executes the walkthrough steps sequentially. Any step error aborts
// the run; there is no retry or partial recovery.
type Runner struct {
	env   *Env
	steps []Step
}

// NewRunner builds a Runner over env. names selects a subset of steps by
// name, preserving scripted order; empty means all registered steps.
func NewRunner(env *Env, names []string) (*Runner, error) {
	var steps []Step
	if len(names) == 0 {
		steps = All()
	} else {
		want := make(map[string]bool, len(names))
		for _, name := range names {
			if Get(name) == nil {
				return nil, fmt.Errorf("unknown step: %q (available: %v)", name, Names())
			}
			want[name] = true
		}
		for _, s := range All() {
			if want[s.Name()] {
				steps = append(steps, s)
			}
		}
	}
	return &Runner{env: env, steps: steps}, nil
}

// Run executes the steps in order and returns the run summary. The first
// step error aborts the walkthrough and is returned as-is.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	n := r.env.Narrator()
	n.Banner("PYLENS ASSISTANT WALKTHROUGH")
	n.Printf("Scenario: an MCP-connected assistant analyzes and optimizes %s\n", r.env.Target)

	summary := &Summary{
		RunID:  newID(),
		Target: r.env.Target,
	}
	start := now()

	for _, s := range r.steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n.Request(s)

		stepStart := now()
		paths, err := s.Run(ctx, r.env)
		if err != nil {
			return nil, fmt.Errorf("step %s: %w", s.Name(), err)
		}

		summary.Steps = append(summary.Steps, StepResult{
			Step:         s.Name(),
			Duration:     now().Sub(stepStart),
			PathsWritten: paths,
		})
		summary.PathsWritten = append(summary.PathsWritten, paths...)
	}

	summary.Duration = now().Sub(start)
	r.printSummary(summary)
	return summary, nil
}

// printSummary renders the closing banner, mirroring the original demo's
// final tallies.
func (r *Runner) printSummary(s *Summary) {
	n := r.env.Narrator()
	n.Banner("WALKTHROUGH COMPLETE")
	n.Printf("total execution time: %.2f seconds\n", s.Duration.Seconds())
	n.Printf("steps run: %d\n", len(s.Steps))
	for _, path := range s.PathsWritten {
		n.Printf("file created: %s\n", path)
	}

	suggestionCount := 0
	for _, category := range optimizations {
		suggestionCount += len(category.Items)
	}
	n.Printf("optimization suggestions: %d items\n", suggestionCount)
	n.Printf("refactoring modules proposed: %d\n", len(refactoringLayout))
}
