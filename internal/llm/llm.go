// Package llm provides a provider-agnostic LLM client interface used by the
// walkthrough's live mode.
package llm

import "context"

// Provider abstracts an LLM API behind a single synchronous completion method.
type Provider interface {
	// Complete sends a prompt to the LLM and returns the response.
	// Implementations must respect context cancellation and deadlines.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Request describes a single completion request.
type Request struct {
	// Prompt is the user message to send.
	Prompt string

	// SystemPrompt sets the system instruction for the completion.
	SystemPrompt string

	// MaxTokens limits the response length. If zero, the provider uses its
	// own default.
	MaxTokens int
}

// Response holds the result of a completion call.
type Response struct {
	// Content is the text returned by the model.
	Content string

	// Model is the model that actually served the request.
	Model string
}
