package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"

	"zenned/pkg/log"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	err        error
	delay      time.Duration
	response   *Response
	callCount  int
}

func (m *mockProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, &ProviderError{Provider: m.name, Err: ctx.Err()}
		}
	}
	if m.shouldFail {
		if m.err != nil {
			return nil, m.err
		}
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

var _ log.Logger = (*mockLogger)(nil)

type recordingObserver struct {
	calls []string
	errs  int
}

func (o *recordingObserver) ObserveCompletion(provider string, err error, latency time.Duration) {
	o.calls = append(o.calls, provider)
	if err != nil {
		o.errs++
	}
}

func helloRequest() *Request {
	return &Request{
		Messages: []Message{
			{Role: RoleSystem, Content: "You are a scheduler"},
			{Role: RoleUser, Content: "Hello"},
		},
	}
}

func TestComplete_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{
		name:     "primary",
		model:    "primary-model",
		response: &Response{Body: []byte(`"ok"`), StatusCode: 200, ProviderName: "primary"},
	}

	logger := &mockLogger{}
	obs := &recordingObserver{}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 3}, logger).WithObserver(obs)

	resp, err := manager.Complete(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.ProviderName != "primary" {
		t.Errorf("Expected provider name 'primary', got: %s", resp.ProviderName)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 0 {
		t.Errorf("Expected 1 info and 0 warn logs, got: %d/%d", len(logger.infoMessages), len(logger.warnMessages))
	}
	if len(obs.calls) != 1 || obs.errs != 0 {
		t.Errorf("observer saw %v (%d errors)", obs.calls, obs.errs)
	}
}

func TestComplete_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{
		name:     "secondary",
		model:    "secondary-model",
		response: &Response{ProviderName: "secondary"},
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}

	manager := NewManager([]Provider{primary, secondary}, config, logger)

	resp, err := manager.Complete(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}
	if secondary.callCount != 1 {
		t.Errorf("Expected secondary provider to be called once, got: %d", secondary.callCount)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log message, got: %d", len(logger.warnMessages))
	}
}

func TestComplete_DefaultsToSingleAttemptNoFallback(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", response: &Response{}}

	manager := NewManager([]Provider{primary, secondary}, &Config{}, &mockLogger{})

	_, err := manager.Complete(context.Background(), helloRequest())
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected exactly one attempt, got: %d", primary.callCount)
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary provider to NOT be called, got: %d calls", secondary.callCount)
	}
}

func TestComplete_ProviderErrorIsReachable(t *testing.T) {
	primary := &mockProvider{
		name:       "nvidia",
		shouldFail: true,
		err:        &ProviderError{Provider: "nvidia", StatusCode: 503, Body: "overloaded", Err: errors.New("api error")},
	}

	manager := NewManager([]Provider{primary}, &Config{}, &mockLogger{})

	_, err := manager.Complete(context.Background(), helloRequest())

	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected ProviderError in chain, got: %v", err)
	}
	if pe.StatusCode != 503 || pe.Body != "overloaded" {
		t.Errorf("unexpected ProviderError %+v", pe)
	}
}

func TestComplete_GlobalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", delay: time.Second, response: &Response{}}

	manager := NewManager([]Provider{slow}, &Config{MaxTotalTimeout: 30 * time.Millisecond}, &mockLogger{})

	_, err := manager.Complete(context.Background(), helloRequest())
	if !IsTimeout(err) {
		t.Fatalf("Expected timeout, got: %v", err)
	}
}

func TestComplete_CallerCancellation(t *testing.T) {
	slow := &mockProvider{name: "slow", delay: time.Second, response: &Response{}}
	manager := NewManager([]Provider{slow}, &Config{RetryAttempts: 3}, &mockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := manager.Complete(ctx, helloRequest())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got: %v", err)
	}
	if slow.callCount != 1 {
		t.Errorf("Expected no retry after cancellation, got %d calls", slow.callCount)
	}
}

func TestComplete_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, &Config{FallbackEnabled: true}, &mockLogger{})

	resp, err := manager.Complete(context.Background(), helloRequest())
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
	if manager.Configured() {
		t.Errorf("Configured() should be false")
	}
}

func TestComplete_InvalidRequest(t *testing.T) {
	manager := NewManager([]Provider{&mockProvider{name: "p"}}, nil, &mockLogger{})

	if _, err := manager.Complete(context.Background(), &Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest, got: %v", err)
	}
}
