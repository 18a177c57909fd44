// Copyright 2026 The Pylens Authors
// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_ZeroConfig(t *testing.T) {
	assert.NoError(t, Validate(&Config{}))
}

func TestValidate_GoodConfig(t *testing.T) {
	cfg := &Config{
		Output:            "out.json",
		OutputFormat:      "markdown",
		FrameworkKeywords: []string{"torch"},
		Demo: DemoConfig{
			Steps: []string{"discovery", "testgen"},
		},
	}
	assert.NoError(t, Validate(cfg))
}

func TestValidate_UnknownFormat(t *testing.T) {
	err := Validate(&Config{OutputFormat: "xml"})
	assert.ErrorContains(t, err, "output_format")
}

func TestValidate_UnknownStep(t *testing.T) {
	cfg := &Config{Demo: DemoConfig{Steps: []string{"discovery", "deploy"}}}
	err := Validate(cfg)
	assert.ErrorContains(t, err, `unknown step "deploy"`)
}

func TestValidate_EmptyKeyword(t *testing.T) {
	err := Validate(&Config{FrameworkKeywords: []string{"torch", "  "}})
	assert.ErrorContains(t, err, "framework_keywords")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{
		OutputFormat:      "xml",
		FrameworkKeywords: []string{""},
		Demo:              DemoConfig{Steps: []string{"deploy"}},
	}
	err := Validate(cfg)
	assert.ErrorContains(t, err, "output_format")
	assert.ErrorContains(t, err, "demo.steps")
	assert.ErrorContains(t, err, "framework_keywords")
}
