package openai

import "context"

// IOpenAI is a client for OpenAI-compatible chat-completion endpoints.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// ChatCompletion sends a non-streaming request and returns the raw body.
	ChatCompletion(ctx context.Context, req *ChatRequest) (*RawResponse, error)

	// Model returns the configured model
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIImpl(cfg), nil
}
