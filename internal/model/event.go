package model

import "time"

// Event is the calendar-displayable projection of a task.
type Event struct {
	ID        string
	Title     string
	Start     time.Time
	End       time.Time // Inclusive for all-day events
	AllDay    bool
	Completed bool
	Section   string
	Line      int
	Color     string
	RawLine   string
}
