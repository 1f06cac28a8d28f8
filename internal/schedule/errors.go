package schedule

import "errors"

var (
	ErrEmptyPrompt    = errors.New("prompt required")
	ErrNotConfigured  = errors.New("server missing AI provider credentials")
	ErrProviderFailed = errors.New("AI provider returned error")
	ErrTimeout        = errors.New("AI provider timed out")
	ErrEmptyResponse  = errors.New("AI returned empty response")
	ErrPersistFailed  = errors.New("no parsed events could be saved")
)
