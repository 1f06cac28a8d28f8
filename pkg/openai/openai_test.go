package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"zenned/pkg/openai"
)

func TestConfigValidate(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		cfg := openai.Config{}
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for missing API key")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		cfg := openai.Config{APIKey: "k", BaseURL: "https://example.test/v1/"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.BaseURL != "https://example.test/v1" {
			t.Errorf("trailing slash not trimmed: %s", cfg.BaseURL)
		}
		if cfg.Model != openai.DefaultModel {
			t.Errorf("Model = %s", cfg.Model)
		}
		if cfg.HTTPClient == nil || cfg.HTTPClient.Timeout != openai.DefaultTimeout {
			t.Errorf("HTTP client not defaulted")
		}
	})
}

func TestChatCompletion(t *testing.T) {
	var got openai.ChatRequest
	var rawReq map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var m json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.Unmarshal(m, &got)
		json.Unmarshal(m, &rawReq)

		if got.Messages[len(got.Messages)-1].Content == "cause_503" {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"overloaded"}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Sun/A (09:00-10:00)"}}]}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "test-key", BaseURL: ts.URL + "/v1", Model: "m1"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Run("success returns raw body", func(t *testing.T) {
		resp, err := client.ChatCompletion(context.Background(), &openai.ChatRequest{
			Messages: []openai.Message{
				{Role: "system", Content: "sys"},
				{Role: "user", Content: "plan"},
			},
			Temperature: 0,
			TopP:        0.95,
			MaxTokens:   800,
		})
		if err != nil {
			t.Fatalf("ChatCompletion() error = %v", err)
		}
		if resp.StatusCode != http.StatusOK || !strings.Contains(string(resp.Body), "Sun/A") {
			t.Errorf("unexpected response %d %s", resp.StatusCode, resp.Body)
		}

		if got.Model != "m1" || got.Stream || got.MaxTokens != 800 || got.TopP != 0.95 {
			t.Errorf("unexpected request %+v", got)
		}
		if _, ok := rawReq["temperature"]; !ok {
			t.Errorf("temperature must be sent even when zero")
		}
		if stream, ok := rawReq["stream"]; !ok || stream != false {
			t.Errorf("stream must be sent as false, got %v", stream)
		}
	})

	t.Run("non-2xx is an APIError", func(t *testing.T) {
		_, err := client.ChatCompletion(context.Background(), &openai.ChatRequest{
			Messages: []openai.Message{{Role: "user", Content: "cause_503"}},
		})

		var apiErr *openai.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusServiceUnavailable || !strings.Contains(apiErr.Body, "overloaded") {
			t.Errorf("unexpected APIError %+v", apiErr)
		}
	})
}

func TestChatCompletion_ContextDeadline(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()

	client, _ := openai.New(openai.Config{APIKey: "k", BaseURL: ts.URL})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.ChatCompletion(ctx, &openai.ChatRequest{Messages: []openai.Message{{Role: "user", Content: "x"}}})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}
