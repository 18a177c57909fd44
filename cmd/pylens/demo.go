// Copyright 2026 The Pylens Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"pylens/internal/config"
	"pylens/internal/demo"
	"pylens/internal/llm"
)

// Demo-specific flag values.
var (
	demoTarget string
	demoOutDir string
	demoSteps  string
	demoLive   bool
)

// demoCmd replays the scripted assistant walkthrough.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay the scripted assistant walkthrough",
	Long: `Replay a fixed six-step assistant walkthrough over a segmentation module:
discovery, analysis, optimization suggestions, test creation, documentation
generation, and refactoring suggestions.

The narration and the two generated files are scripted and identical across
runs. With --live, suggestion steps ask an Anthropic model instead, falling
back to the scripted content when the request fails.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoTarget, "target", "", "target Python file the walkthrough narrates over (default: segmentation.py)")
	demoCmd.Flags().StringVar(&demoOutDir, "out-dir", "", "directory generated files are written into (default: .)")
	demoCmd.Flags().StringVar(&demoSteps, "steps", "", "comma-separated subset of steps to run (default: all)")
	demoCmd.Flags().BoolVar(&demoLive, "live", false, "use an Anthropic model for suggestion steps (needs ANTHROPIC_API_KEY)")
}

func runDemo(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.Load(".")
	if err != nil {
		return exitError(ExitInvalidArgs, "pylens: failed to load %s (%v)", config.FileName, err)
	}
	if err := config.Validate(fileCfg); err != nil {
		return exitError(ExitInvalidArgs, "pylens: %v", err)
	}

	settings := config.MergeDemo(fileCfg, config.DemoSettings{
		Target: demoTarget,
		OutDir: demoOutDir,
		Steps:  splitFlagList(demoSteps),
		Live:   demoLive,
	})
	if settings.Target == "" {
		settings.Target = "segmentation.py"
	}
	if settings.OutDir == "" {
		settings.OutDir = "."
	}

	env := &demo.Env{
		Target: settings.Target,
		OutDir: settings.OutDir,
		FS:     cmdFS,
		Out:    cmd.OutOrStdout(),
	}

	if settings.Live {
		provider, provErr := llm.NewAnthropicProvider("")
		if provErr != nil {
			return exitError(ExitInvalidArgs, "pylens: live mode unavailable (%v)", provErr)
		}
		env.LLM = provider
		slog.Info("live mode enabled", "provider", "anthropic")
	}

	runner, err := demo.NewRunner(env, settings.Steps)
	if err != nil {
		return exitError(ExitInvalidArgs, "pylens: %v", err)
	}

	summary, err := runner.Run(cmd.Context())
	if err != nil {
		return exitError(ExitDemoFailure, "pylens: walkthrough failed (%v)", err)
	}
	slog.Debug("walkthrough finished", "run_id", summary.RunID, "steps", len(summary.Steps))

	return nil
}
