package demo

import "context"

// AnalysisStep prints the fixed code-analysis content: class name, methods,
// dependencies, and performance notes for the hypothetical Segmentation
// class. The listing shows the first three items of each block, as the
// original walkthrough does.
type AnalysisStep struct{}

// Compile-time interface check.
var _ Step = (*AnalysisStep)(nil)

func (*AnalysisStep) Name() string  { return "analysis" }
func (*AnalysisStep) Title() string { return "CODE ANALYSIS" }

func (*AnalysisStep) Description() string {
	return "Analyze the Segmentation class structure, methods, and dependencies"
}

func (*AnalysisStep) Tools() []string {
	return []string{"read_file", "semantic_search", "analyze_code"}
}

// Run prints the canned analysis result structure.
func (*AnalysisStep) Run(_ context.Context, env *Env) ([]string, error) {
	n := env.Narrator()
	n.Printf("analyzing code structure...\n")
	n.Printf("analysis results:\n")
	n.Printf("  class_name: %s\n", analysisClassName)
	for _, block := range analysisResults {
		n.List(block.Label, block.Items, 3)
	}
	return nil, nil
}
