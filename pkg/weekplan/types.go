// Package weekplan turns a natural-language planning request into dated
// calendar events: it builds the completion prompt, recovers the reply text
// from whatever JSON shape the provider returns, and parses the line-oriented
// schedule grammar into records.
package weekplan

import "time"

// Prompt is the message pair sent to a chat-completion endpoint.
type Prompt struct {
	System string
	User   string
}

// Event is one parsed schedule slot.
type Event struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

// State is the weekday-tracking position carried from one line to the next.
type State struct {
	// WeekStart is the Sunday of the anchor's week. It never changes during a parse.
	WeekStart time.Time
	// LastWeekday is the weekday (0=Sun..6=Sat) of the last accepted line.
	LastWeekday int
	// WeekOffset counts 7-day blocks past WeekStart for implicit dates.
	WeekOffset int
}

// Diagnostics counts what the parser discarded.
type Diagnostics struct {
	SkippedLines   int `json:"skipped_lines"`
	EmptyDays      int `json:"empty_days"`
	DroppedSlots   int `json:"dropped_slots"`
	TruncatedSlots int `json:"truncated_slots"`
}

// Result is the outcome of parsing a whole reply.
type Result struct {
	Events      []Event     `json:"events"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// LineResult is the outcome of parsing one line.
type LineResult struct {
	Events    []Event
	Skipped   bool
	Dropped   int
	Truncated int
}
