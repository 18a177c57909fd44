package config

import (
	"fmt"
	"strings"

	"pylens/internal/demo"
	"pylens/internal/output"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.OutputFormat != "" {
		if _, err := output.GetFormatter(cfg.OutputFormat); err != nil {
			errs = append(errs, fmt.Sprintf("output_format: %v", err))
		}
	}

	for _, name := range cfg.Demo.Steps {
		if demo.Get(name) == nil {
			errs = append(errs, fmt.Sprintf("demo.steps: unknown step %q", name))
		}
	}

	for _, kw := range cfg.FrameworkKeywords {
		if strings.TrimSpace(kw) == "" {
			errs = append(errs, "framework_keywords: empty keyword")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
