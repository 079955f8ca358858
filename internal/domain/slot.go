package domain

import "time"

// Location is the structured location attached to generated slots.
type Location struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// PlaceholderLocation returns the fixed fallback location used when no
// location can be derived from an anchor event.
func PlaceholderLocation() Location {
	return Location{City: PlaceholderCity, ZipCode: PlaceholderZipCode}
}

// AvailabilitySlot is the engine's richest output: a concrete candidate
// appointment, kept even when unavailable so callers can render busy slots.
// ConflictingEvent references exactly one overlapping event: the first one
// found in source order, not necessarily the most relevant one.
type AvailabilitySlot struct {
	Start            time.Time
	End              time.Time
	DurationMinutes  int
	Location         Location
	Available        bool
	ConflictingEvent *CalendarEvent
}

// TimeListEntry is the flattened wire shape expected by slot-rendering UI.
type TimeListEntry struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Location Location  `json:"location"`
}

// ToTimeList maps available slots to the plain {start, end, location} wire
// shape. Unavailable slots are dropped.
func ToTimeList(slots []AvailabilitySlot) []TimeListEntry {
	out := make([]TimeListEntry, 0, len(slots))
	for _, s := range slots {
		if !s.Available {
			continue
		}
		out = append(out, TimeListEntry{Start: s.Start, End: s.End, Location: s.Location})
	}
	return out
}
