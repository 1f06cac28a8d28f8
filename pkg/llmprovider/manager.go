package llmprovider

import (
	"context"
	"fmt"
	"time"

	"zenned/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
	observer  Observer
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for entire fallback chain
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	if config.RetryAttempts < 1 {
		config.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// WithObserver sets a callback that sees every provider attempt.
func (m *Manager) WithObserver(o Observer) *Manager {
	m.observer = o
	return m
}

// Configured reports whether at least one provider is available.
func (m *Manager) Configured() bool {
	return m != nil && len(m.providers) > 0
}

// Complete iterates through providers in priority order with fallback logic
func (m *Manager) Complete(ctx context.Context, req *Request) (*Response, error) {
	if !m.Configured() {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for i, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w", i, ctx.Err())
		default:
		}

		resp, err := m.completeWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// completeWithRetry retries one provider with linear backoff
func (m *Manager) completeWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, &ProviderError{Provider: provider.Name(), Err: ctx.Err()}
			}
		}

		start := time.Now()
		resp, err := provider.Complete(ctx, req)
		latency := time.Since(start)
		if m.observer != nil {
			m.observer.ObserveCompletion(provider.Name(), err, latency)
		}
		if err == nil {
			resp.Latency = latency
			return resp, nil
		}

		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	return nil, lastErr
}

// logSuccess logs successful LLM completion with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	m.logger.Info(ctx, "LLM completion successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"status", resp.StatusCode,
		"latency_ms", resp.Latency.Milliseconds(),
		"body_bytes", len(resp.Body),
	)
}

// logFailure logs failed LLM completion attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "LLM completion failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
