package usecase

import (
	"context"
	"strings"
	"time"

	"zenned/internal/event"
	repo "zenned/internal/event/repository"
	"zenned/internal/model"
	"zenned/pkg/datemath"
	"zenned/pkg/gcalendar"
)

// Create validates and stores one event, then mirrors it when a calendar
// mirror is configured.
func (uc *implUseCase) Create(ctx context.Context, input event.CreateInput) (event.CreateOutput, error) {
	ev, err := uc.normalize(input)
	if err != nil {
		return event.CreateOutput{}, err
	}

	id, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
		UserID:      input.UserID,
		Title:       ev.Title,
		Date:        ev.Date,
		StartTime:   ev.StartTime,
		EndTime:     ev.EndTime,
		Completed:   ev.Completed,
		Description: ev.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateEvent: %v", err)
		return event.CreateOutput{}, err
	}
	ev.ID = id

	uc.mirrorEvent(ctx, ev)
	return event.CreateOutput{ID: id, Event: ev}, nil
}

func (uc *implUseCase) normalize(input event.CreateInput) (model.Event, error) {
	description := strings.TrimSpace(input.Description)
	title := resolveTitle(input.Title, description)
	if title == "" {
		return model.Event{}, event.ErrMissingTitle
	}

	ev := model.Event{
		Title:       title,
		Completed:   input.Completed,
		Description: description,
	}
	if input.NoteOnly {
		return ev, nil
	}

	if strings.TrimSpace(input.Date) == "" {
		return model.Event{}, event.ErrMissingDate
	}
	var err error
	if ev.Date, err = validateDate(strings.TrimSpace(input.Date)); err != nil {
		return model.Event{}, err
	}
	if ev.StartTime, err = validateTime(strings.TrimSpace(input.StartTime)); err != nil {
		return model.Event{}, err
	}
	if ev.EndTime, err = validateTime(strings.TrimSpace(input.EndTime)); err != nil {
		return model.Event{}, err
	}
	return ev, nil
}

// mirrorEvent copies a timed event to the external calendar. Failures are
// logged and never returned.
func (uc *implUseCase) mirrorEvent(ctx context.Context, ev model.Event) {
	if uc.mirror == nil || !ev.Dated() || !ev.Timed() {
		return
	}

	start, end, ok := uc.timeRange(ev)
	if !ok {
		return
	}
	created, err := uc.mirror.InsertEvent(ctx, gcalendar.EventInput{
		Summary:     ev.Title,
		Description: ev.Description,
		Start:       start,
		End:         end,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create mirror event %d: %v", ev.ID, err)
		return
	}
	uc.l.Debugf(ctx, "uc.Create mirrored event %d as %s", ev.ID, created.ID)
}

// timeRange returns the instants of a timed event in the clock's timezone.
// An end at or before the start rolls over to the next day.
func (uc *implUseCase) timeRange(ev model.Event) (time.Time, time.Time, bool) {
	day, ok := datemath.ParseDate(ev.Date)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	loc := uc.clock.Location()
	start, ok := datemath.CombineDateTime(day, ev.StartTime, loc)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok := datemath.CombineDateTime(day, ev.EndTime, loc)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, true
}
