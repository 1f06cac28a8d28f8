package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"zenned/internal/schedule"
	"zenned/pkg/llmprovider"
	"zenned/pkg/weekplan"
)

// generation is one prompt → completion → parse round trip.
type generation struct {
	anchor   time.Time
	result   weekplan.Result
	provider string
	model    string
}

func (uc *implUseCase) generate(ctx context.Context, prompt, anchorDate string) (generation, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return generation{}, schedule.ErrEmptyPrompt
	}
	if !uc.completer.Configured() {
		return generation{}, schedule.ErrNotConfigured
	}

	today := uc.clock.Today()
	anchorDate = strings.TrimSpace(anchorDate)
	anchor := weekplan.ResolveAnchor(anchorDate, today)
	p := weekplan.BuildPrompt(prompt, today, anchorDate)

	resp, err := uc.completer.Complete(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: llmprovider.RoleSystem, Content: p.System},
			{Role: llmprovider.RoleUser, Content: p.User},
		},
		Temperature: uc.cfg.Temperature,
		TopP:        uc.cfg.TopP,
		MaxTokens:   uc.cfg.MaxTokens,
	})
	if err != nil {
		return generation{}, classifyCompletionError(err)
	}

	text := weekplan.ExtractText(resp.Body)
	if text == "" {
		uc.l.Warnf(ctx, "schedule.generate: %s returned no text (%d bytes)", resp.ProviderName, len(resp.Body))
		return generation{}, schedule.ErrEmptyResponse
	}

	result := uc.parser.Parse(text, anchor)
	d := result.Diagnostics
	uc.metrics.ObserveDiscarded(d.SkippedLines, d.EmptyDays, d.DroppedSlots, d.TruncatedSlots)
	uc.l.Infof(ctx, "schedule.generate: %s/%s produced %d events (skipped=%d empty=%d dropped=%d truncated=%d)",
		resp.ProviderName, resp.ModelName, len(result.Events), d.SkippedLines, d.EmptyDays, d.DroppedSlots, d.TruncatedSlots)

	return generation{
		anchor:   anchor,
		result:   result,
		provider: resp.ProviderName,
		model:    resp.ModelName,
	}, nil
}

// classifyCompletionError keeps the provider error in the chain so callers
// can still reach *llmprovider.ProviderError.
func classifyCompletionError(err error) error {
	switch {
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		return schedule.ErrNotConfigured
	case llmprovider.IsTimeout(err):
		return fmt.Errorf("%w: %w", schedule.ErrTimeout, err)
	default:
		return fmt.Errorf("%w: %w", schedule.ErrProviderFailed, err)
	}
}

// outcome names an error for metrics.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, schedule.ErrEmptyPrompt):
		return "bad_request"
	case errors.Is(err, schedule.ErrNotConfigured):
		return "config"
	case errors.Is(err, schedule.ErrTimeout):
		return "timeout"
	case errors.Is(err, schedule.ErrEmptyResponse):
		return "empty"
	case errors.Is(err, schedule.ErrPersistFailed):
		return "persist"
	default:
		return "upstream"
	}
}
