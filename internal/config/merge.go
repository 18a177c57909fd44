package config

// ScanSettings is the merged scan configuration handed to the CLI.
type ScanSettings struct {
	Output            string
	OutputFormat      string
	FrameworkKeywords []string
}

// DemoSettings is the merged walkthrough configuration handed to the CLI.
type DemoSettings struct {
	Target string
	OutDir string
	Steps  []string
	Live   bool
}

// MergeScan combines file-based config with CLI-provided settings.
// CLI values take precedence; zero-value CLI fields fall through to file config.
func MergeScan(fileCfg *Config, cli ScanSettings) ScanSettings {
	result := cli
	if result.Output == "" && fileCfg.Output != "" {
		result.Output = fileCfg.Output
	}
	if result.OutputFormat == "" && fileCfg.OutputFormat != "" {
		result.OutputFormat = fileCfg.OutputFormat
	}
	if len(result.FrameworkKeywords) == 0 && len(fileCfg.FrameworkKeywords) > 0 {
		result.FrameworkKeywords = fileCfg.FrameworkKeywords
	}
	return result
}

// MergeDemo combines file-based config with CLI-provided walkthrough settings.
// CLI values take precedence; Live is sticky once enabled on either side.
func MergeDemo(fileCfg *Config, cli DemoSettings) DemoSettings {
	result := cli
	if result.Target == "" && fileCfg.Demo.Target != "" {
		result.Target = fileCfg.Demo.Target
	}
	if result.OutDir == "" && fileCfg.Demo.OutDir != "" {
		result.OutDir = fileCfg.Demo.OutDir
	}
	if len(result.Steps) == 0 && len(fileCfg.Demo.Steps) > 0 {
		result.Steps = fileCfg.Demo.Steps
	}
	if !result.Live && fileCfg.Demo.Live != nil && *fileCfg.Demo.Live {
		result.Live = true
	}
	return result
}
