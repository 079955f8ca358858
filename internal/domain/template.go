package domain

import "fmt"

// TimeOfDay is a wall-clock time used inside weekly availability templates.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// MinuteOfDay returns the time of day as minutes since midnight.
func (t TimeOfDay) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}

// String formats the time of day as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// TemplateWindow is one availability window inside a weekly template, e.g.
// 09:00–12:00. Windows on the same day are expected to be ordered and
// non-overlapping; the engine does not validate this (caller responsibility).
type TemplateWindow struct {
	Start TimeOfDay
	End   TimeOfDay
}

// WeeklyTemplate maps a weekday (Sunday = 0 .. Saturday = 6) to the ordered
// availability windows of that day. Days without an entry have no
// availability. Multiple windows per day are allowed (morning + afternoon).
type WeeklyTemplate map[int][]TemplateWindow

// WindowsFor returns the availability windows for the given weekday.
func (t WeeklyTemplate) WindowsFor(weekday int) []TemplateWindow {
	return t[weekday]
}

// IsEmpty reports whether the template has no windows at all.
func (t WeeklyTemplate) IsEmpty() bool {
	for _, windows := range t {
		if len(windows) > 0 {
			return false
		}
	}
	return true
}
