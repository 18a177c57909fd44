package demo

import (
	"context"
	"fmt"
)

// RefactorStep prints the fixed refactoring plan: current issues, proposed
// module layout, and expected benefits. Live mode replaces the plan with a
// real completion.
type RefactorStep struct{}

// Compile-time interface check.
var _ Step = (*RefactorStep)(nil)

func (*RefactorStep) Name() string  { return "refactor" }
func (*RefactorStep) Title() string { return "CODE REFACTORING" }

func (*RefactorStep) Description() string {
	return "Suggest modular refactoring to improve maintainability"
}

func (*RefactorStep) Tools() []string {
	return []string{"analyze_dependencies", "suggest_refactoring", "create_new_structure"}
}

// Run prints the refactoring plan, canned or live.
func (s *RefactorStep) Run(ctx context.Context, env *Env) ([]string, error) {
	n := env.Narrator()
	n.Printf("analyzing code structure for refactoring...\n")

	if env.LLM != nil {
		prompt := fmt.Sprintf(
			"Propose a modular package layout to refactor %s, a single-class Python image "+
				"segmentation module, into maintainable components.", env.Target)
		if liveContent(ctx, env, prompt) {
			return nil, nil
		}
	}

	n.Printf("refactoring plan:\n")
	n.NumberedList(fmt.Sprintf("Current Issues (%d)", len(refactoringIssues)), refactoringIssues)

	n.Printf("\n  Proposed Structure:\n")
	for _, dir := range refactoringLayout {
		n.Printf("    %s\n", dir.Label)
		for _, file := range dir.Items {
			n.Printf("      %s\n", file)
		}
	}

	n.NumberedList(fmt.Sprintf("Benefits (%d)", len(refactoringBenefits)), refactoringBenefits)
	return nil, nil
}
