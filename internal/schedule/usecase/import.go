package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"

	"zenned/internal/event"
	"zenned/internal/model"
	"zenned/internal/schedule"
	"zenned/pkg/datemath"
	"zenned/pkg/weekplan"
)

const (
	modeImport  = "import"
	modePreview = "preview"
)

// Import stores each parsed record in order. A failed record is counted and
// skipped; earlier records are not rolled back.
func (uc *implUseCase) Import(ctx context.Context, input schedule.ImportInput) (schedule.ImportOutput, error) {
	gen, err := uc.generate(ctx, input.Prompt, input.AnchorDate)
	if err != nil {
		uc.metrics.ObserveRequest(modeImport, outcome(err))
		return schedule.ImportOutput{}, err
	}

	out := schedule.ImportOutput{
		AnchorDate:  datemath.FormatDate(gen.anchor),
		Events:      make([]model.Event, 0, len(gen.result.Events)),
		Diagnostics: gen.result.Diagnostics,
		Provider:    gen.provider,
		Model:       gen.model,
	}

	for _, rec := range gen.result.Events {
		created, err := uc.eventUC.Create(ctx, event.CreateInput{
			UserID:      input.UserID,
			Title:       rec.Title,
			Date:        rec.Date,
			StartTime:   rec.StartTime,
			EndTime:     rec.EndTime,
			Description: importDescription(rec),
		})
		if err != nil {
			uc.l.Warnf(ctx, "schedule.Import: store %q on %s: %v", rec.Title, rec.Date, err)
			out.Failed++
			continue
		}
		out.Created++
		out.Events = append(out.Events, created.Event)
	}
	uc.metrics.ObserveRecords(out.Created, out.Failed)

	switch {
	case out.Created == 0 && out.Failed > 0:
		uc.metrics.ObserveRequest(modeImport, outcome(schedule.ErrPersistFailed))
		return out, schedule.ErrPersistFailed
	case out.Failed > 0:
		out.Status = schedule.StatusPartial
		uc.metrics.ObserveRequest(modeImport, "partial")
	case out.Created == 0:
		out.Status = schedule.StatusEmpty
		uc.metrics.ObserveRequest(modeImport, "ok")
	default:
		out.Status = schedule.StatusComplete
		uc.metrics.ObserveRequest(modeImport, "ok")
	}
	return out, nil
}

// Preview runs the same pipeline without storing anything.
func (uc *implUseCase) Preview(ctx context.Context, input schedule.PreviewInput) (schedule.PreviewOutput, error) {
	gen, err := uc.generate(ctx, input.Prompt, input.AnchorDate)
	uc.metrics.ObserveRequest(modePreview, outcome(err))
	if err != nil {
		return schedule.PreviewOutput{}, err
	}

	events := gen.result.Events
	if events == nil {
		events = []weekplan.Event{}
	}
	return schedule.PreviewOutput{
		AnchorDate:  datemath.FormatDate(gen.anchor),
		Events:      events,
		Diagnostics: gen.result.Diagnostics,
		Provider:    gen.provider,
		Model:       gen.model,
	}, nil
}

// importDescription keeps the parsed description or writes a short summary.
func importDescription(rec weekplan.Event) string {
	desc := rec.Description
	if desc == "" {
		desc = fmt.Sprintf("AI scheduled: %s (%s-%s).", rec.Title, rec.StartTime, rec.EndTime)
	}
	if utf8.RuneCountInString(desc) > schedule.MaxDescriptionLength {
		desc = string([]rune(desc)[:schedule.MaxDescriptionLength])
	}
	return desc
}
