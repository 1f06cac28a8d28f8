package usecase

import (
	"context"

	"zenned/internal/event"
	"zenned/internal/metrics"
	"zenned/internal/schedule"
	"zenned/pkg/datemath"
	"zenned/pkg/llmprovider"
	"zenned/pkg/log"
	"zenned/pkg/weekplan"
)

// Completer sends one completion request. *llmprovider.Manager implements it.
type Completer interface {
	Configured() bool
	Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config holds the sampling parameters sent with every completion.
type Config struct {
	Temperature float64
	TopP        float64
	MaxTokens   int
	// MaxWeeks caps how far past the anchor's week records may land. 0 = no cap.
	MaxWeeks int
}

type implUseCase struct {
	l         log.Logger
	completer Completer
	eventUC   event.UseCase
	clock     *datemath.Clock
	parser    *weekplan.Parser
	metrics   *metrics.ScheduleMetrics
	cfg       Config
}

// New creates the schedule UseCase. m may be nil.
func New(l log.Logger, completer Completer, eventUC event.UseCase, clock *datemath.Clock, m *metrics.ScheduleMetrics, cfg Config) schedule.UseCase {
	return &implUseCase{
		l:         l,
		completer: completer,
		eventUC:   eventUC,
		clock:     clock,
		parser:    &weekplan.Parser{MaxWeeks: cfg.MaxWeeks},
		metrics:   m,
		cfg:       cfg,
	}
}
