package schedule

import "errors"

var (
	ErrEmptyLine        = errors.New("line is empty")
	ErrNotATask         = errors.New("line is not a checkbox task")
	ErrNoDate           = errors.New("task line has no date")
	ErrInvalidRange     = errors.New("end is before start")
	ErrInvalidFormat    = errors.New("unknown date format")
	ErrInvalidGrammar   = errors.New("unknown date grammar")
	ErrInvalidType      = errors.New("unknown date field type")
	ErrUnsupportedType  = errors.New("date format does not support this field type")
	ErrEmptyTitle       = errors.New("task title is empty")
	ErrEmptyPath        = errors.New("document path is empty")
	ErrLineOutOfRange   = errors.New("line number out of range")
	ErrCalendarDisabled = errors.New("google calendar is not configured")
)
