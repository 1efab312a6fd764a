package dateparser

import "time"

// DateFieldType is the role a date plays on a task line.
type DateFieldType string

const (
	TypeDue       DateFieldType = "due"
	TypeStart     DateFieldType = "start"
	TypeScheduled DateFieldType = "scheduled"
	TypeCreated   DateFieldType = "created"
	TypeDone      DateFieldType = "done"
	TypeCancelled DateFieldType = "cancelled"
)

// Format remembers which grammar produced a field so it can be written back the same way.
type Format string

const (
	FormatTasks           Format = "tasks"
	FormatDataviewBracket Format = "dataview-bracket"
	FormatDataviewParen   Format = "dataview-paren"
	FormatSimple          Format = "simple"
	FormatKanban          Format = "kanban"
)

// Grammar selects which matchers run over a line. GrammarAll runs every one.
type Grammar string

const (
	GrammarAll      Grammar = ""
	GrammarTasks    Grammar = "tasks"
	GrammarDataview Grammar = "dataview"
	GrammarSimple   Grammar = "simple"
	GrammarKanban   Grammar = "kanban"
)

// ParsedDateField is one recognized date occurrence in a line.
type ParsedDateField struct {
	Type DateFieldType
	Date time.Time
	// Raw is the exact substring that was matched.
	Raw string
	// Start and End are half-open byte offsets into the source line.
	Start   int
	End     int
	Format  Format
	HasTime bool
}

// Grammar returns the grammar family a format belongs to.
func (f Format) Grammar() Grammar {
	switch f {
	case FormatTasks:
		return GrammarTasks
	case FormatDataviewBracket, FormatDataviewParen:
		return GrammarDataview
	case FormatSimple:
		return GrammarSimple
	case FormatKanban:
		return GrammarKanban
	}
	return GrammarAll
}

// SupportsTime reports whether the format can carry a time of day.
func (f Format) SupportsTime() bool {
	return f != FormatSimple
}

// SupportsType reports whether the format has syntax for the given field type.
// Simple and Kanban only know Due.
func (f Format) SupportsType(t DateFieldType) bool {
	switch f {
	case FormatSimple, FormatKanban:
		return t == TypeDue
	}
	return IsValidType(t)
}

// IsValid reports whether f is one of the known formats.
func (f Format) IsValid() bool {
	switch f {
	case FormatTasks, FormatDataviewBracket, FormatDataviewParen, FormatSimple, FormatKanban:
		return true
	}
	return false
}

// IsValid reports whether g is a known grammar (GrammarAll included).
func (g Grammar) IsValid() bool {
	switch g {
	case GrammarAll, GrammarTasks, GrammarDataview, GrammarSimple, GrammarKanban:
		return true
	}
	return false
}

// Reads reports whether lines written in format f are recognized under g.
func (g Grammar) Reads(f Format) bool {
	return g == GrammarAll || f.Grammar() == g
}

// DefaultFormat is the format new fields are written in under g. Dataview
// defaults to the bracket style.
func (g Grammar) DefaultFormat() Format {
	switch g {
	case GrammarDataview:
		return FormatDataviewBracket
	case GrammarSimple:
		return FormatSimple
	case GrammarKanban:
		return FormatKanban
	}
	return FormatTasks
}
