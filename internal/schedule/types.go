package schedule

import (
	"zenned/internal/model"
	"zenned/pkg/weekplan"
)

// Import status values.
const (
	StatusComplete = "complete"
	StatusPartial  = "partial"
	StatusEmpty    = "empty"
)

// MaxDescriptionLength bounds the generated description of an imported event.
const MaxDescriptionLength = 500

// --- UseCase Inputs ---

type ImportInput struct {
	UserID     int64
	Prompt     string
	AnchorDate string
}

type PreviewInput struct {
	Prompt     string
	AnchorDate string
}

// --- UseCase Outputs ---

// ImportOutput reports what was stored. Failed counts records the store
// rejected; records stored before a failure stay stored.
type ImportOutput struct {
	AnchorDate  string
	Status      string
	Events      []model.Event
	Created     int
	Failed      int
	Diagnostics weekplan.Diagnostics
	Provider    string
	Model       string
}

type PreviewOutput struct {
	AnchorDate  string
	Events      []weekplan.Event
	Diagnostics weekplan.Diagnostics
	Provider    string
	Model       string
}
