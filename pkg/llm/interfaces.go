// Package llm provides text-completion clients for the AI collaborator.
package llm

import "context"

// CompletionRequest describes a single chat-completion call.
type CompletionRequest struct {
	System      string  // system message
	Prompt      string  // user message
	Temperature float64 // sampling temperature
	MaxTokens   int     // reply token budget; 0 uses the provider default
	JSONMode    bool    // request a JSON object reply where the provider supports it
}

// Client is the interface for LLM completion operations.
// Use it for dependency injection so services can be tested with MockClient.
type Client interface {
	// Complete generates a chat completion and returns the reply text.
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// Model returns the configured model name.
	Model() string
}

// Compile-time interface checks.
var (
	_ Client = (*OpenAIClient)(nil)
	_ Client = (*AnthropicClient)(nil)
	_ Client = (*MockClient)(nil)
)
