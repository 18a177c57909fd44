// Copyright 2026 The Pylens Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"pylens/internal/config"
	"pylens/internal/output"
	"pylens/internal/structure"
)

// DefaultReportFile is the report path used when neither the CLI nor the
// config file overrides it, matching the fixed path of the original tooling.
const DefaultReportFile = "python_analysis_results.json"

// Scan-specific flag values.
var (
	scanOutput     string
	scanFormat     string
	scanFrameworks string
	scanNoReport   bool
)

// scanCmd is the subcommand for scanning Python sources.
var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan Python sources for structure",
	Long: `Scan a Python file (or every *.py file under a directory) and report its
structure: classes, methods, imports, and key framework imports. The report
is written as JSON and a summary is printed to the console.

Classification is shallow prefix matching, not parsing: declarations inside
strings or comments are counted too.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "report file path (default: "+DefaultReportFile+")")
	scanCmd.Flags().StringVarP(&scanFormat, "format", "f", "", "report format (json, markdown; default: json)")
	scanCmd.Flags().StringVar(&scanFrameworks, "frameworks", "", "comma-separated framework keywords for key imports")
	scanCmd.Flags().BoolVar(&scanNoReport, "no-report", false, "print the summary without writing a report file")
}

func runScan(cmd *cobra.Command, args []string) error {
	// 1. Resolve the scan target.
	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	absPath, err := cmdFS.Abs(target)
	if err != nil {
		return exitError(ExitInvalidArgs, "pylens: cannot resolve path %q (%v)", target, err)
	}

	// 2. Load and merge config from the scan root.
	settings, err := loadScanSettings(absPath)
	if err != nil {
		return err
	}

	// 3. Scan.
	opts := structure.Options{FrameworkKeywords: settings.FrameworkKeywords}
	var reports []*structure.Report

	info, statErr := cmdFS.Stat(absPath)
	switch {
	case statErr == nil && info.IsDir():
		// Tree scans pick up pyproject-declared dependencies as keywords.
		if extra, kwErr := structure.ProjectKeywords(absPath); kwErr == nil && len(extra) > 0 {
			if len(opts.FrameworkKeywords) == 0 {
				opts.FrameworkKeywords = structure.DefaultFrameworkKeywords
			}
			opts.FrameworkKeywords = append(opts.FrameworkKeywords, extra...)
			slog.Debug("pyproject keywords merged", "count", len(extra))
		}
		reports, err = structure.ScanTree(cmd.Context(), absPath, opts)
		if err != nil {
			return exitError(ExitScanFailure, "pylens: scan failed (%v)", err)
		}
	default:
		var r *structure.Report
		r, err = structure.Scan(absPath, opts)
		if errors.Is(err, structure.ErrNotFound) {
			// A missing source is reported, not fatal: no report file is
			// written and the process still exits zero.
			fmt.Fprintf(cmd.OutOrStdout(), "error: source file not found (%s)\n", target)
			return nil
		}
		if err != nil {
			return exitError(ExitScanFailure, "pylens: scan failed (%v)", err)
		}
		reports = []*structure.Report{r}
	}

	// 4. Write the report file.
	if !scanNoReport {
		formatter, _ := output.GetFormatter(settings.OutputFormat) // validated in loadScanSettings
		var buf strings.Builder
		if err := formatter.Format(reports, &buf); err != nil {
			return exitError(ExitScanFailure, "pylens: formatting failed (%v)", err)
		}
		if err := cmdFS.WriteFile(settings.Output, []byte(buf.String()), 0o644); err != nil {
			return exitError(ExitScanFailure, "pylens: cannot write report %q (%v)", settings.Output, err)
		}
		slog.Info("report written", "path", settings.Output, "files", len(reports))
	}

	// 5. Print the console summary.
	if len(reports) == 1 {
		output.WriteSummary(cmd.OutOrStdout(), reports[0])
	} else {
		output.WriteTreeSummary(cmd.OutOrStdout(), reports)
	}

	return nil
}

// loadScanSettings builds the merged scan settings from CLI flags and the
// config file found at the scan root (the directory itself, or the file's
// parent directory).
func loadScanSettings(absPath string) (config.ScanSettings, error) {
	root := absPath
	if info, err := cmdFS.Stat(absPath); err != nil || !info.IsDir() {
		root = filepath.Dir(absPath)
	}

	fileCfg, err := config.Load(root)
	if err != nil {
		return config.ScanSettings{}, exitError(ExitInvalidArgs, "pylens: failed to load %s (%v)", config.FileName, err)
	}
	if err := config.Validate(fileCfg); err != nil {
		return config.ScanSettings{}, exitError(ExitInvalidArgs, "pylens: %v", err)
	}

	cli := config.ScanSettings{
		Output:            scanOutput,
		OutputFormat:      scanFormat,
		FrameworkKeywords: splitFlagList(scanFrameworks),
	}
	settings := config.MergeScan(fileCfg, cli)

	if settings.Output == "" {
		settings.Output = DefaultReportFile
	}
	if settings.OutputFormat == "" {
		settings.OutputFormat = "json"
	}
	if _, err := output.GetFormatter(settings.OutputFormat); err != nil {
		return config.ScanSettings{}, exitError(ExitInvalidArgs, "pylens: %v", err)
	}

	return settings, nil
}

// splitFlagList splits a comma-separated flag value, trimming whitespace.
func splitFlagList(s string) []string {
	if s == "" {
		return nil
	}
	var result []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError with a formatted message.
func exitError(code int, format string, args ...any) *exitCodeError {
	return &exitCodeError{code: code, msg: fmt.Sprintf(format, args...)}
}
