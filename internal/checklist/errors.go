package checklist

import "errors"

var (
	ErrLineOutOfRange = errors.New("line number out of range")
	ErrNotACheckbox   = errors.New("line is not a checkbox")
)
