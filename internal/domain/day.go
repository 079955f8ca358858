package domain

import (
	"fmt"
	"time"
)

// Day is an immutable calendar date (year, month, day) without a time-of-day
// component. A Day is always validated on construction: the month must be in
// [1,12] and the day must exist in that month of that year (leap years
// accounted for).
type Day struct {
	year  int
	month time.Month
	day   int
}

// NewDay constructs a validated Day.
func NewDay(year, month, day int) (Day, error) {
	if month < 1 || month > 12 {
		return Day{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}
	if day < 1 || day > daysInMonth(year, time.Month(month)) {
		return Day{}, fmt.Errorf("%w: day %d out of range for %04d-%02d", ErrInvalidDate, day, year, month)
	}
	return Day{year: year, month: time.Month(month), day: day}, nil
}

// DayFromString parses a "YYYY-MM-DD" string into a validated Day.
func DayFromString(s string) (Day, error) {
	var year, month, day int
	n, err := fmt.Sscanf(s, "%4d-%2d-%2d", &year, &month, &day)
	if err != nil || n != 3 || len(s) != 10 {
		return Day{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, s)
	}
	return NewDay(year, month, day)
}

// Today returns today's date in the process-local clock, shifted by the
// given signed number of days.
func Today(offsetDays int) Day {
	t := time.Now().AddDate(0, 0, offsetDays)
	return Day{year: t.Year(), month: t.Month(), day: t.Day()}
}

// Year returns the calendar year.
func (d Day) Year() int { return d.year }

// Month returns the calendar month (January = 1).
func (d Day) Month() time.Month { return d.month }

// DayOfMonth returns the day of the month.
func (d Day) DayOfMonth() int { return d.day }

// Weekday returns the day of the week (Sunday = 0).
func (d Day) Weekday() time.Weekday {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).Weekday()
}

// AddDays returns the Day shifted by a signed number of calendar days.
func (d Day) AddDays(days int) Day {
	t := time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
	return Day{year: t.Year(), month: t.Month(), day: t.Day()}
}

// After reports whether d falls after other.
func (d Day) After(other Day) bool {
	if d.year != other.year {
		return d.year > other.year
	}
	if d.month != other.month {
		return d.month > other.month
	}
	return d.day > other.day
}

// Interval returns the full-day interval 00:00:00.000–23:59:59.999 of this
// date. If timeZone names an IANA zone, both bounds are wall-clock times in
// that zone converted to instants; an empty timeZone means UTC.
func (d Day) Interval(timeZone string) (Interval, error) {
	loc := time.UTC
	if timeZone != "" {
		var err error
		loc, err = time.LoadLocation(timeZone)
		if err != nil {
			return Interval{}, fmt.Errorf("load time zone %q: %w", timeZone, err)
		}
	}
	return Interval{
		Start: time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc),
		End:   time.Date(d.year, d.month, d.day, 23, 59, 59, int(999*time.Millisecond), loc),
	}, nil
}

// At returns the instant at the given time of day on this date in loc.
func (d Day) At(tod TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, tod.Hour, tod.Minute, 0, 0, loc)
}

// String formats the date as "YYYY-MM-DD".
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// daysInMonth returns the number of days in the given month, from the real
// calendar: day 0 of the following month normalizes to the last day of this
// one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
