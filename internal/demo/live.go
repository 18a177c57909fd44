package demo

import (
	"context"
	"log/slog"

	"pylens/internal/llm"
)

// liveSystemPrompt frames live-mode completions.
const liveSystemPrompt = "You are a code review assistant. Answer with a " +
	"concise plain-text list, one item per line, no markdown headings."

// liveContent asks the env's LLM provider for replacement content and prints
// it under the narrator. Returns false (after a warning) when the provider
// fails, so callers fall back to the canned content; live mode must not
// break the walkthrough.
func liveContent(ctx context.Context, env *Env, prompt string) bool {
	resp, err := env.LLM.Complete(ctx, llm.Request{
		Prompt:       prompt,
		SystemPrompt: liveSystemPrompt,
		MaxTokens:    1024,
	})
	if err != nil {
		slog.Warn("live completion failed, using scripted content", "error", err)
		return false
	}

	n := env.Narrator()
	n.Printf("%s\n", resp.Content)
	n.Printf("  (generated live by %s)\n", resp.Model)
	return true
}
