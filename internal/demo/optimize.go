package demo

import (
	"context"
	"fmt"
)

// OptimizeStep prints the fixed optimization-suggestion categories. In live
// mode the canned content is replaced with a real completion.
type OptimizeStep struct{}

// Compile-time interface check.
var _ Step = (*OptimizeStep)(nil)

func (*OptimizeStep) Name() string  { return "optimize" }
func (*OptimizeStep) Title() string { return "CODE OPTIMIZATION" }

func (*OptimizeStep) Description() string {
	return "Identify performance bottlenecks and suggest improvements"
}

func (*OptimizeStep) Tools() []string {
	return []string{"analyze_performance", "suggest_optimizations", "code_quality_check"}
}

// Run prints optimization suggestions, canned or live.
func (s *OptimizeStep) Run(ctx context.Context, env *Env) ([]string, error) {
	n := env.Narrator()
	n.Printf("generating optimization suggestions...\n")

	if env.LLM != nil {
		prompt := fmt.Sprintf(
			"Suggest performance, code quality, and architectural improvements for the Python file %s, "+
				"an image segmentation module using torch, cv2, numpy, and PIL.", env.Target)
		if liveContent(ctx, env, prompt) {
			return nil, nil
		}
	}

	n.Printf("optimization suggestions:\n")
	for _, category := range optimizations {
		n.NumberedList(category.Label, category.Items)
	}
	return nil, nil
}
