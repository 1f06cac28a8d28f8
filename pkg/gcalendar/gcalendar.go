package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const defaultCalendarID = "primary"

type calendarService interface {
	insert(ctx context.Context, calendarID string, ev *calendar.Event) (*calendar.Event, error)
}

type apiService struct {
	svc *calendar.Service
}

func (s apiService) insert(ctx context.Context, calendarID string, ev *calendar.Event) (*calendar.Event, error) {
	return s.svc.Events.Insert(calendarID, ev).Context(ctx).Do()
}

// New creates a client from a service-account or authorized-user JSON file.
func New(ctx context.Context, cfg Config) (IGCalendar, error) {
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: read credentials: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: parse credentials: %w", err)
	}
	return newWithOptions(ctx, cfg, option.WithCredentials(creds))
}

// NewWithHTTPClient creates a client that sends every request through hc.
func NewWithHTTPClient(ctx context.Context, cfg Config, hc *http.Client) (IGCalendar, error) {
	return newWithOptions(ctx, cfg, option.WithHTTPClient(hc))
}

func newWithOptions(ctx context.Context, cfg Config, opts ...option.ClientOption) (IGCalendar, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: create service: %w", err)
	}
	calendarID := cfg.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}
	return &gcalendarImpl{
		service:    apiService{svc: svc},
		calendarID: calendarID,
		timezone:   cfg.Timezone,
	}, nil
}

func (c *gcalendarImpl) InsertEvent(ctx context.Context, in EventInput) (Event, error) {
	if !in.End.After(in.Start) {
		return Event{}, fmt.Errorf("gcalendar: end %s is not after start %s", in.End.Format(time.RFC3339), in.Start.Format(time.RFC3339))
	}

	created, err := c.service.insert(ctx, c.calendarID, &calendar.Event{
		Summary:     in.Summary,
		Description: in.Description,
		Start:       &calendar.EventDateTime{DateTime: in.Start.Format(time.RFC3339), TimeZone: c.timezone},
		End:         &calendar.EventDateTime{DateTime: in.End.Format(time.RFC3339), TimeZone: c.timezone},
	})
	if err != nil {
		return Event{}, fmt.Errorf("gcalendar: insert event: %w", err)
	}
	return Event{ID: created.Id, HTMLLink: created.HtmlLink}, nil
}
