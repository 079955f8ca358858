package domain

import (
	"fmt"
	"time"
)

// anchorTimeLayouts accepted for anchor event instants: ISO-8601 with an
// explicit offset, or without one (then taken as UTC).
var anchorTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// AnchorEvent is the existing calendar event relative to which "next slot" /
// "previous slot" search is performed. Instants are carried as ISO-8601
// strings exactly as received; the event is read-only input and never
// mutated by the engine.
type AnchorEvent struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Location string `json:"location,omitempty"`
}

// StartTime resolves the anchor's start instant.
// Returns ErrMissingStartTime when the event carries none.
func (e AnchorEvent) StartTime() (time.Time, error) {
	if e.Start == "" {
		return time.Time{}, ErrMissingStartTime
	}
	return parseAnchorTime(e.Start)
}

// EndTime resolves the anchor's end instant.
// Returns ErrMissingEndTime when the event carries none.
func (e AnchorEvent) EndTime() (time.Time, error) {
	if e.End == "" {
		return time.Time{}, ErrMissingEndTime
	}
	return parseAnchorTime(e.End)
}

func parseAnchorTime(s string) (time.Time, error) {
	for _, layout := range anchorTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse instant %q", ErrInvalidDate, s)
}

// CalendarEvent is an event fetched from the external calendar source. Start
// or End is nil when the source supplied only a date (all-day event) or
// nothing at all; such events never conflict with generated slots.
type CalendarEvent struct {
	ID       string
	Start    *time.Time
	End      *time.Time
	AllDay   bool
	Location string
}

// HasInstants reports whether both bounds carry a concrete instant.
func (e CalendarEvent) HasInstants() bool {
	return e.Start != nil && e.End != nil
}

// ConflictsWith reports whether the event strictly overlaps [start, end).
// Events missing either instant never conflict.
func (e CalendarEvent) ConflictsWith(start, end time.Time) bool {
	if !e.HasInstants() {
		return false
	}
	return e.Start.Before(end) && e.End.After(start)
}
