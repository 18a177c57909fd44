// Copyright 2026 The Pylens Authors
// SPDX-License-Identifier: MIT

package demo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func newTestNarrator(t *testing.T) (*Narrator, *bytes.Buffer) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	var buf bytes.Buffer
	return NewNarrator(&buf), &buf
}

func TestNarratorRule(t *testing.T) {
	n, buf := newTestNarrator(t)
	n.Rule()
	assert.Equal(t, strings.Repeat("=", 80)+"\n", buf.String())
}

func TestNarratorBanner(t *testing.T) {
	n, buf := newTestNarrator(t)
	n.Banner("WALKTHROUGH")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"",
		strings.Repeat("=", 80),
		"WALKTHROUGH",
		strings.Repeat("=", 80),
	}, lines)
}

func TestNarratorRequest(t *testing.T) {
	n, buf := newTestNarrator(t)
	n.Request(&stubStep{name: "stub"})

	out := buf.String()
	assert.Contains(t, out, "REQUEST: STUB")
	assert.Contains(t, out, "Description: stub step")
	assert.Contains(t, out, "Tools used:  stub_tool")
}

func TestNarratorList(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	t.Run("truncated", func(t *testing.T) {
		n, buf := newTestNarrator(t)
		n.List("methods", items, 3)

		out := buf.String()
		assert.Contains(t, out, "methods: 5 items")
		assert.Contains(t, out, "- a")
		assert.Contains(t, out, "- c")
		assert.NotContains(t, out, "- d")
		assert.Contains(t, out, "... and 2 more")
	})

	t.Run("unlimited", func(t *testing.T) {
		n, buf := newTestNarrator(t)
		n.List("methods", items, 0)

		out := buf.String()
		assert.Contains(t, out, "- e")
		assert.NotContains(t, out, "more")
	})

	t.Run("fits within limit", func(t *testing.T) {
		n, buf := newTestNarrator(t)
		n.List("methods", []string{"a"}, 3)
		assert.NotContains(t, buf.String(), "more")
	})
}

func TestNarratorNumberedList(t *testing.T) {
	n, buf := newTestNarrator(t)
	n.NumberedList("issues", []string{"first", "second"})

	out := buf.String()
	assert.Contains(t, out, "issues:")
	assert.Contains(t, out, "1. first")
	assert.Contains(t, out, "2. second")
}

func TestNarratorStatusLines(t *testing.T) {
	n, buf := newTestNarrator(t)
	n.Ok("wrote %s", "file.py")
	n.Warn("missing %s", "target.py")

	out := buf.String()
	assert.Contains(t, out, "ok wrote file.py")
	assert.Contains(t, out, "-- missing target.py")
}
