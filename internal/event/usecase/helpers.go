package usecase

import (
	"strings"
	"unicode/utf8"

	"zenned/internal/event"
	"zenned/pkg/datemath"
)

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}

// resolveTitle prefers the trimmed title and falls back to the start of the
// description.
func resolveTitle(title, description string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = truncate(description, event.DerivedTitleLength)
	}
	return truncate(title, event.MaxTitleLength)
}

func validateDate(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	d, ok := datemath.ParseDate(s)
	if !ok {
		return "", event.ErrInvalidDate
	}
	return datemath.FormatDate(d), nil
}

func validateTime(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	t, ok := datemath.ParseTimeOfDay(s)
	if !ok {
		return "", event.ErrInvalidTime
	}
	return t, nil
}

// validateRange normalizes optional from/to bounds.
func validateRange(from, to string) (string, string, error) {
	from, err := validateDate(from)
	if err != nil {
		return "", "", err
	}
	to, err = validateDate(to)
	if err != nil {
		return "", "", err
	}
	if from != "" && to != "" && from > to {
		return "", "", event.ErrInvalidRange
	}
	return from, to, nil
}
