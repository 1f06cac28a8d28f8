package llmprovider

import (
	"context"
	"time"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Complete sends a chat completion request and returns the raw response
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "nvidia", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Message roles
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Request represents a normalized, non-streaming completion request
type Request struct {
	Messages    []Message
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// Message represents a conversation message
type Message struct {
	Role    string
	Content string
}

// Response is a successful completion. Body is the provider's payload,
// unparsed, because different providers and API versions shape it
// differently.
type Response struct {
	Body         []byte
	StatusCode   int
	ProviderName string
	ModelName    string
	Latency      time.Duration
}

// Observer receives one callback per provider attempt.
type Observer interface {
	ObserveCompletion(provider string, err error, latency time.Duration)
}

// System returns the content of the first system message, if any.
func (r *Request) System() string {
	for _, m := range r.Messages {
		if m.Role == RoleSystem {
			return m.Content
		}
	}
	return ""
}

// UserText joins the content of every non-system message.
func (r *Request) UserText() string {
	var out string
	for _, m := range r.Messages {
		if m.Role == RoleSystem {
			continue
		}
		if out != "" {
			out += "\n\n"
		}
		out += m.Content
	}
	return out
}
