package http

import (
	"encoding/json"
	"time"

	"zenned/internal/event"
	"zenned/internal/model"
)

// --- Request DTOs ---

type listReq struct {
	UserID int64  `form:"-"`
	From   string `form:"from"`
	To     string `form:"to"`
}

func (r listReq) toInput() event.ListInput {
	return event.ListInput{UserID: r.UserID, From: r.From, To: r.To}
}

func (r listReq) toExportInput() event.ExportInput {
	return event.ExportInput{UserID: r.UserID, From: r.From, To: r.To}
}

type createReq struct {
	UserID      int64  `json:"-"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
	NoteOnly    bool   `json:"note_only"`
}

func (r createReq) toInput() event.CreateInput {
	return event.CreateInput{
		UserID:      r.UserID,
		Title:       r.Title,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Completed:   r.Completed,
		Description: r.Description,
		NoteOnly:    r.NoteOnly,
	}
}

// optionalTime tells an absent field apart from an explicit null.
type optionalTime struct {
	Set   bool
	Value string
}

func (o *optionalTime) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = ""
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

func (o optionalTime) toInput() *event.TimeValue {
	if !o.Set {
		return nil
	}
	return &event.TimeValue{Value: o.Value}
}

type updateReq struct {
	UserID    int64        `json:"-"`
	ID        int64        `json:"-"`
	StartTime optionalTime `json:"start_time" swaggertype:"string"`
	EndTime   optionalTime `json:"end_time" swaggertype:"string"`
	Completed *bool        `json:"completed"`
}

func (r updateReq) toInput() event.UpdateInput {
	return event.UpdateInput{
		UserID:    r.UserID,
		ID:        r.ID,
		StartTime: r.StartTime.toInput(),
		EndTime:   r.EndTime.toInput(),
		Completed: r.Completed,
	}
}

// --- Response DTOs ---

type eventResp struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Date        *string   `json:"event_date"`
	StartTime   *string   `json:"start_time"`
	EndTime     *string   `json:"end_time"`
	Completed   bool      `json:"completed"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func newEventResp(ev model.Event) eventResp {
	return eventResp{
		ID:          ev.ID,
		Title:       ev.Title,
		Date:        nullable(ev.Date),
		StartTime:   nullable(ev.StartTime),
		EndTime:     nullable(ev.EndTime),
		Completed:   ev.Completed,
		Description: nullable(ev.Description),
		CreatedAt:   ev.CreatedAt,
	}
}

type listResp struct {
	Events []eventResp `json:"events"`
}

func (h *handler) newListResp(out event.ListOutput) listResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventResp(ev)
	}
	return listResp{Events: events}
}

type createResp struct {
	InsertedID int64 `json:"inserted_id"`
}

func (h *handler) newCreateResp(out event.CreateOutput) createResp {
	return createResp{InsertedID: out.ID}
}

type successResp struct {
	Success bool `json:"success"`
}
