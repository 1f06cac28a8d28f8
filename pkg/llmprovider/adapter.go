package llmprovider

import (
	"context"
	"errors"

	"zenned/pkg/gemini"
	"zenned/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates an adapter reporting itself as name.
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// Complete implements Provider interface
func (a *OpenAIAdapter) Complete(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]openai.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = openai.Message{Role: m.Role, Content: m.Content}
	}

	resp, err := a.client.ChatCompletion(ctx, &openai.ChatRequest{
		Model:       a.client.Model(),
		Messages:    msgs,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		pe := &ProviderError{Provider: a.name, Err: err}
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			pe.StatusCode = apiErr.StatusCode
			pe.Body = apiErr.Body
		}
		return nil, pe
	}

	return &Response{
		Body:         resp.Body,
		StatusCode:   resp.StatusCode,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// Complete implements Provider interface
func (a *GeminiAdapter) Complete(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.System(),
		UserText:          req.UserText(),
		Temperature:       req.Temperature,
		TopP:              req.TopP,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		pe := &ProviderError{Provider: "gemini", Err: err}
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) {
			pe.StatusCode = apiErr.StatusCode
			pe.Body = apiErr.Body
		}
		return nil, pe
	}

	return &Response{
		Body:         resp.Body,
		StatusCode:   resp.StatusCode,
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}
