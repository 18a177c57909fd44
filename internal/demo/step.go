// Copyright 2026 The Pylens Authors
// SPDX-License-Identifier: MIT

// Package demo implements the scripted assistant walkthrough: a fixed,
// ordered sequence of narration steps that replay how an MCP-connected
// assistant would discover, analyze, and optimize a segmentation module.
// Step content is static compile-time data; only timestamps vary between
// runs.
package demo

import (
	"context"
	"fmt"
	"sync"
)

// Step is one fixed block of simulated tool usage in the walkthrough.
type Step interface {
	// Name returns the unique step name used for registration and filtering
	// (e.g., "discovery", "analysis").
	Name() string

	// Title returns the banner title (e.g., "FILE DISCOVERY").
	Title() string

	// Description returns the one-line request description for the banner.
	Description() string

	// Tools returns the tool names the simulated request claims to use.
	Tools() []string

	// Run executes the step against env. Paths written to disk, if any, are
	// returned so the runner can report them in the summary.
	Run(ctx context.Context, env *Env) ([]string, error)
}

var (
	mu      sync.RWMutex
	byName  = make(map[string]Step)
	ordered []Step
)

// Register adds a step to the registry, preserving registration order.
// The walkthrough is a scripted sequence, so order is part of the contract.
// It panics if a step with the same name is already registered.
func Register(s Step) {
	mu.Lock()
	defer mu.Unlock()
	name := s.Name()
	if _, exists := byName[name]; exists {
		panic(fmt.Sprintf("demo step already registered: %s", name))
	}
	byName[name] = s
	ordered = append(ordered, s)
}

// Get returns the step with the given name, or nil if not found.
func Get(name string) Step {
	mu.RLock()
	defer mu.RUnlock()
	return byName[name]
}

// All returns every registered step in registration order.
func All() []Step {
	mu.RLock()
	defer mu.RUnlock()
	steps := make([]Step, len(ordered))
	copy(steps, ordered)
	return steps
}

// Names returns the registered step names in registration order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, len(ordered))
	for i, s := range ordered {
		names[i] = s.Name()
	}
	return names
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	byName = make(map[string]Step)
	ordered = nil
}
