// Package config handles .pylens.yaml configuration files.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the expected config file name in a scanned root.
const FileName = ".pylens.yaml"

// Config represents the contents of a .pylens.yaml file.
type Config struct {
	// Output is the JSON report path for scan runs.
	Output string `yaml:"output,omitempty"`

	// OutputFormat selects the report format ("json", "markdown").
	OutputFormat string `yaml:"output_format,omitempty"`

	// FrameworkKeywords overrides the default key-import keyword set.
	FrameworkKeywords []string `yaml:"framework_keywords,omitempty"`

	// Demo holds walkthrough settings.
	Demo DemoConfig `yaml:"demo,omitempty"`
}

// DemoConfig holds walkthrough settings in the config file.
type DemoConfig struct {
	Target string   `yaml:"target,omitempty"`
	OutDir string   `yaml:"out_dir,omitempty"`
	Steps  []string `yaml:"steps,omitempty"`
	Live   *bool    `yaml:"live,omitempty"`
}

// Load reads the .pylens.yaml file from the given root directory.
// If the file does not exist, it returns a zero-value Config and nil error.
func Load(root string) (*Config, error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path) //nolint:gosec // user-provided root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
