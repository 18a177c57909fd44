// Copyright 2026 The Pylens Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initTestProject creates a small Python project for scan tests.
func initTestProject(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	writeTestFile(t, dir, "segmentation.py", `import torch
import os

class Segmentation:
    def __init__(self):
        pass

    def execute(self):
        pass
`)
	writeTestFile(t, dir, "utils.py", "import numpy as np\n\ndef resize():\n    pass\n")
	return dir
}

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	return result.Content[0].(*mcp.TextContent).Text
}

func TestHandleScan_SingleFile(t *testing.T) {
	dir := initTestProject(t)

	result, _, err := handleScan(context.Background(), nil, ScanInput{
		Path: filepath.Join(dir, "segmentation.py"),
	})
	require.NoError(t, err)

	text := resultText(t, result)
	require.True(t, json.Valid([]byte(text)), "output should be valid JSON")

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &report))
	assert.Equal(t, []any{"Segmentation"}, report["classes_found"])
	assert.Equal(t, []any{"import torch"}, report["key_imports"])
}

func TestHandleScan_Directory(t *testing.T) {
	dir := initTestProject(t)

	result, _, err := handleScan(context.Background(), nil, ScanInput{Path: dir})
	require.NoError(t, err)

	var envelope struct {
		Reports  []map[string]any `json:"reports"`
		Metadata map[string]any   `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &envelope))
	assert.Len(t, envelope.Reports, 2)
	assert.Equal(t, float64(2), envelope.Metadata["total_reports"])
}

func TestHandleScan_MarkdownFormat(t *testing.T) {
	dir := initTestProject(t)

	result, _, err := handleScan(context.Background(), nil, ScanInput{
		Path:   dir,
		Format: "markdown",
	})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "# Structure Report")
}

func TestHandleScan_InvalidFormat(t *testing.T) {
	dir := initTestProject(t)

	_, _, err := handleScan(context.Background(), nil, ScanInput{Path: dir, Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "xml"`)
}

func TestHandleScan_MissingPath(t *testing.T) {
	_, _, err := handleScan(context.Background(), nil, ScanInput{
		Path: filepath.Join(t.TempDir(), "missing.py"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestHandleScan_CustomFrameworks(t *testing.T) {
	dir := initTestProject(t)
	writeTestFile(t, dir, "web.py", "import requests\nimport torch\n")

	result, _, err := handleScan(context.Background(), nil, ScanInput{
		Path:       filepath.Join(dir, "web.py"),
		Frameworks: "requests",
	})
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &report))
	assert.Equal(t, []any{"import requests"}, report["key_imports"])
}

func TestHandleDemo(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	dir := initTestProject(t)
	outDir := filepath.Join(dir, "generated")

	result, _, err := handleDemo(context.Background(), nil, DemoInput{
		Target: filepath.Join(dir, "segmentation.py"),
		OutDir: outDir,
		Steps:  "testgen,docgen",
	})
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "PYLENS ASSISTANT WALKTHROUGH")
	assert.Contains(t, text, "WALKTHROUGH COMPLETE")

	_, err = os.Stat(filepath.Join(outDir, "test_segmentation_demo.py"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "segmentation_documentation.md"))
	assert.NoError(t, err)
}

func TestHandleDemo_UnknownStep(t *testing.T) {
	_, _, err := handleDemo(context.Background(), nil, DemoInput{
		Target: "x.py",
		Steps:  "deploy",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown step")
}

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, splitAndTrim(""))
	assert.Equal(t, []string{"a", "b"}, splitAndTrim("a, b"))
	assert.Equal(t, []string{"a"}, splitAndTrim("a,,  ,"))
}
