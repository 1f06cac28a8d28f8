package usecase

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"zenned/internal/event"
	repo "zenned/internal/event/repository"
	"zenned/internal/model"
	"zenned/pkg/datemath"
)

const (
	icsProductID = "-//Zenned//Calendar Export//EN"
	icsUIDDomain = "zenned"
)

// eventUIDNamespace makes exported UIDs stable across exports so calendar
// clients update instead of duplicating.
var eventUIDNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://zenned.app/events"))

// Export renders dated events as VEVENTs. Timed events use the clock's
// timezone; events without a full time range are all-day.
func (uc *implUseCase) Export(ctx context.Context, input event.ExportInput) (event.ExportOutput, error) {
	from, to, err := validateRange(input.From, input.To)
	if err != nil {
		return event.ExportOutput{}, err
	}

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{UserID: input.UserID, From: from, To: to})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Export ListEvents: %v", err)
		return event.ExportOutput{}, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetXWRCalName("Zenned")
	cal.SetXWRTimezone(uc.clock.Location().String())

	count := 0
	for _, ev := range events {
		if !ev.Dated() {
			continue
		}
		if uc.addVEvent(cal, input.UserID, ev) {
			count++
		}
	}

	return event.ExportOutput{
		Filename: fmt.Sprintf("zenned-%d.ics", input.UserID),
		Content:  []byte(cal.Serialize()),
		Count:    count,
	}, nil
}

func (uc *implUseCase) addVEvent(cal *ics.Calendar, userID int64, ev model.Event) bool {
	day, ok := datemath.ParseDate(ev.Date)
	if !ok {
		return false
	}

	vev := cal.AddEvent(EventUID(userID, ev.ID))
	stamp := ev.CreatedAt
	if stamp.IsZero() {
		stamp = time.Now()
	}
	vev.SetDtStampTime(stamp.UTC())
	vev.SetCreatedTime(stamp.UTC())
	vev.SetSummary(ev.Title)
	if ev.Description != "" {
		vev.SetDescription(ev.Description)
	}
	if ev.Completed {
		vev.AddProperty(ics.ComponentProperty("X-ZENNED-COMPLETED"), "TRUE")
	}

	if start, end, ok := uc.timeRange(ev); ok {
		vev.SetStartAt(start)
		vev.SetEndAt(end)
		return true
	}
	vev.SetAllDayStartAt(day)
	vev.SetAllDayEndAt(datemath.AddDays(day, 1))
	return true
}

// EventUID returns the iCalendar UID of a stored event.
func EventUID(userID, eventID int64) string {
	name := fmt.Sprintf("%d/%d", userID, eventID)
	return uuid.NewSHA1(eventUIDNamespace, []byte(name)).String() + "@" + icsUIDDomain
}
