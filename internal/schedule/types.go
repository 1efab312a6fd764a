package schedule

import (
	"time"

	"markdown-task-calendar/internal/checklist"
	"markdown-task-calendar/internal/model"
	"markdown-task-calendar/pkg/dateparser"
)

// --- Line tools ---

type ParseLineInput struct {
	Line     string
	Grammar  dateparser.Grammar
	Priority []dateparser.DateFieldType // nil uses the configured priority
}

type ParseLineOutput struct {
	Fields     []dateparser.ParsedDateField
	Primary    dateparser.ParsedDateField
	HasPrimary bool
	Title      string // Line with every date removed
}

type FormatDateInput struct {
	Type        dateparser.DateFieldType
	Date        time.Time
	Format      dateparser.Format
	IncludeTime bool
}

type RebuildLineInput struct {
	Line    string
	Updates map[dateparser.DateFieldType]string
}

// --- Targets ---

// Target locates one task line. When Content is set the line is read from
// the document at LineNumber and the edited document is returned; otherwise
// Line is used on its own.
type Target struct {
	Path       string
	Content    string
	LineNumber int
	Line       string
}

// --- Projection ---

type ProjectInput struct {
	Target
	Dark bool
	Now  time.Time // Zero means the current time
}

type ProjectDocumentInput struct {
	Path    string
	Content string
	Dark    bool
	Now     time.Time
}

type ProjectDocumentOutput struct {
	Events  []model.Event
	Undated int
	Stats   checklist.ChecklistStats
}

// --- Edits ---

// MoveInput is a drag: the event now starts at Start. End is the end the
// calendar reported and is only validated.
type MoveInput struct {
	Target
	Start  time.Time
	End    time.Time
	AllDay bool // The drop landed in an all-day slot
}

// ResizeInput is a resize: the event now spans Start to the calendar's End,
// which may be exclusive.
type ResizeInput struct {
	Target
	Start  time.Time
	End    time.Time
	AllDay bool
}

type CreateInput struct {
	Title  string
	Start  time.Time
	End    time.Time
	AllDay bool
	Format dateparser.Format // Empty uses the configured default
}

type CreateOutput struct {
	Line  string
	Event model.Event
}

type CompleteInput struct {
	Target
	Checked bool
	Now     time.Time // Date written into the Done field
}

// EditOutput is the result of rewriting a task line.
type EditOutput struct {
	Line     string
	Content  string // Set when the target was a document
	Task     model.Task
	Event    model.Event
	HasEvent bool // false when the rewritten line has no date
}

// --- Publication ---

type PublishInput struct {
	Path       string
	Content    string
	CalendarID string // Empty uses the configured calendar
}

type PublishOutput struct {
	Published int
	Failed    int
	Deleted   int
	Undated   int
}
