package http

import (
	"time"

	"zenned/internal/model"
	"zenned/internal/schedule"
	"zenned/pkg/weekplan"
)

// --- Request DTOs ---

type importReq struct {
	Prompt     string `json:"prompt"`
	AnchorDate string `json:"anchor_date"`
}

func (r importReq) toImportInput(userID int64) schedule.ImportInput {
	return schedule.ImportInput{
		UserID:     userID,
		Prompt:     r.Prompt,
		AnchorDate: r.AnchorDate,
	}
}

func (r importReq) toPreviewInput() schedule.PreviewInput {
	return schedule.PreviewInput{
		Prompt:     r.Prompt,
		AnchorDate: r.AnchorDate,
	}
}

// --- Response DTOs ---

type eventResp struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"event_date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type importResp struct {
	AnchorDate  string               `json:"anchor_date"`
	Status      string               `json:"status"`
	Events      []eventResp          `json:"events"`
	Created     int                  `json:"created"`
	Failed      int                  `json:"failed"`
	Diagnostics weekplan.Diagnostics `json:"diagnostics"`
	Provider    string               `json:"provider,omitempty"`
	Model       string               `json:"model,omitempty"`
}

type previewResp struct {
	AnchorDate  string               `json:"anchor_date"`
	Events      []weekplan.Event     `json:"events"`
	Diagnostics weekplan.Diagnostics `json:"diagnostics"`
	Provider    string               `json:"provider,omitempty"`
	Model       string               `json:"model,omitempty"`
}

func newEventResp(ev model.Event) eventResp {
	return eventResp{
		ID:          ev.ID,
		Title:       ev.Title,
		Date:        ev.Date,
		StartTime:   ev.StartTime,
		EndTime:     ev.EndTime,
		Description: ev.Description,
		CreatedAt:   ev.CreatedAt,
	}
}

func (h *handler) newImportResp(out schedule.ImportOutput) importResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventResp(ev)
	}
	return importResp{
		AnchorDate:  out.AnchorDate,
		Status:      out.Status,
		Events:      events,
		Created:     out.Created,
		Failed:      out.Failed,
		Diagnostics: out.Diagnostics,
		Provider:    out.Provider,
		Model:       out.Model,
	}
}

func (h *handler) newPreviewResp(out schedule.PreviewOutput) previewResp {
	return previewResp{
		AnchorDate:  out.AnchorDate,
		Events:      out.Events,
		Diagnostics: out.Diagnostics,
		Provider:    out.Provider,
		Model:       out.Model,
	}
}
