package datemath

import "time"

// Range is a calendar span. End is inclusive for all-day ranges.
type Range struct {
	Start  time.Time
	End    time.Time
	AllDay bool
}

// MultiDay reports whether the range ends on a later calendar day than it starts.
func (r Range) MultiDay() bool {
	return !SameDay(r.Start, r.End)
}
