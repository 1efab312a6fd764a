package datemath

import (
	"fmt"
	"strings"
	"time"
)

// DefaultDuration is the length given to point-in-time events.
const DefaultDuration = 30 * time.Minute

// inputLayouts are accepted by ParseInput, most specific first.
var inputLayouts = []struct {
	layout  string
	hasTime bool
}{
	{time.RFC3339, true},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02T15:04", true},
	{"2006-01-02 15:04", true},
	{"2006-01-02", false},
}

// Calendar does wall-clock arithmetic in one location.
type Calendar struct {
	location *time.Location
}

// New creates a calendar for the given IANA timezone, e.g. "Asia/Ho_Chi_Minh".
// An empty timezone means the local zone.
func New(timezone string) (*Calendar, error) {
	if timezone == "" {
		return &Calendar{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc}, nil
}

// Location returns the calendar's zone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// ParseInput parses a date or date-time coming from the view layer.
// hasTime reports whether the input carried a clock.
func (c *Calendar) ParseInput(value string) (t time.Time, hasTime bool, err error) {
	value = strings.TrimSpace(value)
	for _, l := range inputLayouts {
		parsed, perr := time.ParseInLocation(l.layout, value, c.location)
		if perr != nil {
			continue
		}
		return parsed.In(c.location), l.hasTime, nil
	}
	return time.Time{}, false, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or YYYY-MM-DDTHH:mm", value)
}

// Today returns midnight of now's day in the calendar's zone.
func (c *Calendar) Today(now time.Time) time.Time {
	return StartOfDay(now.In(c.location))
}

// StartOfDay returns midnight at the start of t's day, in t's zone.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59 of t's day. Date fields have minute precision, so
// this is the last representable moment of the day.
func EndOfDay(t time.Time) time.Time {
	return WithClock(t, 23, 59)
}

// WithClock returns t's date at hour:minute.
func WithClock(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

// WithClockOf returns day's date at clock's hour and minute.
func WithClockOf(day, clock time.Time) time.Time {
	return WithClock(day, clock.Hour(), clock.Minute())
}

// HasTimeComponent reports whether t carries a clock. Exact midnight is
// indistinguishable from a date without time.
func HasTimeComponent(t time.Time) bool {
	return t.Hour() != 0 || t.Minute() != 0
}

// IsDefaultDropTime reports whether t sits on a clock the calendar reports
// when no time was chosen: exactly midnight or exactly noon.
func IsDefaultDropTime(t time.Time) bool {
	if t.Second() != 0 || t.Nanosecond() != 0 || t.Minute() != 0 {
		return false
	}
	return t.Hour() == 0 || t.Hour() == 12
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween counts calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	a, b = StartOfDay(a), StartOfDay(b.In(a.Location()))
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// NormalizeDropEnd turns an end reported by a calendar drop into an inclusive
// end. A default-drop end (midnight or noon) on a later day than start marks
// an exclusive next-day boundary: it is pulled back one day, and set to 23:59
// when the task carries explicit times. A zero end becomes start.
func NormalizeDropEnd(start, end time.Time, explicitTime bool) time.Time {
	if end.IsZero() {
		return start
	}
	if !IsDefaultDropTime(end) || DaysBetween(start, end) < 1 {
		return end
	}
	prev := StartOfDay(end).AddDate(0, 0, -1)
	if explicitTime {
		return EndOfDay(prev)
	}
	return prev
}
