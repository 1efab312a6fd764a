package gcalendar

import "time"

// SourceProperty is the private extended property holding the markdown file
// an event was published from.
const SourceProperty = "source"

// UpsertEventRequest is the input for creating or replacing an event with a
// caller-chosen id.
type UpsertEventRequest struct {
	CalendarID  string
	ID          string // base32hex, 5-1024 chars
	Summary     string
	Description string
	Start       time.Time
	End         time.Time // Inclusive for all-day events
	AllDay      bool
	Timezone    string // e.g. "Asia/Ho_Chi_Minh"
	ColorID     string
	Source      string // Stored under SourceProperty when set
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Source      string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time // Optional
	TimeMax    time.Time // Optional
	MaxResults int64
	Source     string // Only events published from this file
}
