package domain

import "time"

// Interval is a half-bounded span of instants. Used both for candidate slots
// produced by template expansion and for busy (already committed) time. The
// Location payload, when set, is propagated to derived slots and never
// interpreted by the engine.
type Interval struct {
	Start    time.Time
	End      time.Time
	Location string
}

// Duration returns the length of the interval.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports whether two intervals truly intersect. Touching
// boundaries do not count: an interval ending exactly when another starts
// does not overlap it.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Padded returns the interval widened symmetrically by the given number of
// minutes on each side.
func (i Interval) Padded(minutes int) Interval {
	pad := time.Duration(minutes) * time.Minute
	return Interval{
		Start:    i.Start.Add(-pad),
		End:      i.End.Add(pad),
		Location: i.Location,
	}
}
