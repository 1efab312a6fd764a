package model

import "markdown-task-calendar/pkg/dateparser"

// Task is one markdown checkbox line projected for the calendar.
type Task struct {
	Line    int    // 0-based line number in the document
	Indent  string // Leading whitespace
	Marker  string // List marker: "-", "*" or "+"
	Status  string // Character inside the checkbox brackets
	Checked bool   // true if [x] or [X]
	Title   string // Text with date fields stripped
	Section string // Nearest preceding heading, "" before any heading
	RawLine string // Original line

	Dates      []dateparser.ParsedDateField
	Primary    dateparser.ParsedDateField
	HasPrimary bool
}

// Format is the format of the primary date, or "" when the task has none.
func (t Task) Format() dateparser.Format {
	if !t.HasPrimary {
		return ""
	}
	return t.Primary.Format
}

// IsKanban reports whether the primary date uses the kanban convention.
func (t Task) IsKanban() bool {
	return t.HasPrimary && t.Primary.Format == dateparser.FormatKanban
}

// Field returns the first date field of the given type.
func (t Task) Field(typ dateparser.DateFieldType) (dateparser.ParsedDateField, bool) {
	for _, f := range t.Dates {
		if f.Type == typ {
			return f, true
		}
	}
	return dateparser.ParsedDateField{}, false
}
