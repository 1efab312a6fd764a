package http

import (
	"net/http"
	"strings"
	"time"

	"markdown-task-calendar/internal/model"
	"markdown-task-calendar/internal/schedule"
	"markdown-task-calendar/pkg/dateparser"
	"markdown-task-calendar/pkg/response"
)

// --- Request DTOs ---

type targetReq struct {
	Path       string `json:"path"`
	Content    string `json:"content"`
	LineNumber int    `json:"line_number"`
	Line       string `json:"line"`
}

func (r targetReq) validate() error {
	if r.Content == "" && strings.TrimSpace(r.Line) == "" {
		return response.NewHTTPError(http.StatusBadRequest, "line or content is required")
	}
	if r.LineNumber < 0 {
		return errWrongBody
	}
	return nil
}

func (r targetReq) toTarget() schedule.Target {
	return schedule.Target{
		Path:       r.Path,
		Content:    r.Content,
		LineNumber: r.LineNumber,
		Line:       r.Line,
	}
}

// ---

type parseLineReq struct {
	Line     string   `json:"line"     binding:"required"`
	Grammar  string   `json:"grammar"` // Empty uses the configured grammar
	Priority []string `json:"priority"`
}

func (r parseLineReq) toInput() (schedule.ParseLineInput, error) {
	input := schedule.ParseLineInput{
		Line:    r.Line,
		Grammar: dateparser.Grammar(r.Grammar),
	}
	// An absent priority uses the configured one; an empty list means
	// "first field by position".
	if r.Priority != nil {
		priority, err := dateparser.ParsePriority(r.Priority)
		if err != nil {
			return input, response.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		input.Priority = priority
	}
	return input, nil
}

// ---

type formatDateReq struct {
	Type        string `json:"type"   binding:"required"`
	Date        string `json:"date"   binding:"required"`
	Format      string `json:"format" binding:"required"`
	IncludeTime bool   `json:"include_time"`
}

func (r formatDateReq) toInput(date time.Time) schedule.FormatDateInput {
	return schedule.FormatDateInput{
		Type:        fieldType(r.Type),
		Date:        date,
		Format:      dateparser.Format(r.Format),
		IncludeTime: r.IncludeTime,
	}
}

// ---

type rebuildLineReq struct {
	Line    string            `json:"line" binding:"required"`
	Updates map[string]string `json:"updates"`
}

func (r rebuildLineReq) toInput() schedule.RebuildLineInput {
	updates := make(map[dateparser.DateFieldType]string, len(r.Updates))
	for k, v := range r.Updates {
		updates[fieldType(k)] = v
	}
	return schedule.RebuildLineInput{Line: r.Line, Updates: updates}
}

// fieldType accepts any key alias; unknown names pass through and are
// rejected by the use case.
func fieldType(name string) dateparser.DateFieldType {
	if t, err := dateparser.ParseType(name); err == nil {
		return t
	}
	return dateparser.DateFieldType(name)
}

// ---

type projectReq struct {
	targetReq
	Dark bool `json:"dark"`
}

func (r projectReq) toInput() schedule.ProjectInput {
	return schedule.ProjectInput{Target: r.toTarget(), Dark: r.Dark}
}

// ---

// rescheduleReq is shared by move and resize. AllDay defaults to whether
// start carries no clock.
type rescheduleReq struct {
	targetReq
	Start  string `json:"start" binding:"required"`
	End    string `json:"end"`
	AllDay *bool  `json:"all_day"`
}

type span struct {
	start  time.Time
	end    time.Time
	allDay bool
}

func (r rescheduleReq) toMoveInput(s span) schedule.MoveInput {
	return schedule.MoveInput{Target: r.toTarget(), Start: s.start, End: s.end, AllDay: s.allDay}
}

func (r rescheduleReq) toResizeInput(s span) schedule.ResizeInput {
	return schedule.ResizeInput{Target: r.toTarget(), Start: s.start, End: s.end, AllDay: s.allDay}
}

// ---

type createReq struct {
	Title  string `json:"title" binding:"required"`
	Start  string `json:"start" binding:"required"`
	End    string `json:"end"`
	AllDay *bool  `json:"all_day"`
	Format string `json:"format"`
}

func (r createReq) toInput(s span) schedule.CreateInput {
	return schedule.CreateInput{
		Title:  r.Title,
		Start:  s.start,
		End:    s.end,
		AllDay: s.allDay,
		Format: dateparser.Format(r.Format),
	}
}

// ---

type completeReq struct {
	targetReq
	Checked bool `json:"checked"`
}

func (r completeReq) toInput() schedule.CompleteInput {
	return schedule.CompleteInput{Target: r.toTarget(), Checked: r.Checked}
}

// ---

type documentReq struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Dark    bool   `json:"dark"`
}

func (r documentReq) toInput() schedule.ProjectDocumentInput {
	return schedule.ProjectDocumentInput{Path: r.Path, Content: r.Content, Dark: r.Dark}
}

type publishReq struct {
	Path       string `json:"path"        binding:"required"`
	Content    string `json:"content"`
	CalendarID string `json:"calendar_id"`
}

func (r publishReq) toInput() schedule.PublishInput {
	return schedule.PublishInput{Path: r.Path, Content: r.Content, CalendarID: r.CalendarID}
}

// --- Response DTOs ---

type fieldResp struct {
	Type    string `json:"type"`
	Date    any    `json:"date" swaggertype:"string"`
	Raw     string `json:"raw"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Format  string `json:"format"`
	HasTime bool   `json:"has_time"`
}

func newFieldResp(f dateparser.ParsedDateField) fieldResp {
	return fieldResp{
		Type:    string(f.Type),
		Date:    dateValue(f.Date, !f.HasTime),
		Raw:     f.Raw,
		Start:   f.Start,
		End:     f.End,
		Format:  string(f.Format),
		HasTime: f.HasTime,
	}
}

// dateValue renders a date-only value for all-day coordinates.
func dateValue(t time.Time, dateOnly bool) any {
	if dateOnly {
		return response.Date(t)
	}
	return response.DateTime(t)
}

type parseLineResp struct {
	Fields  []fieldResp `json:"fields"`
	Primary *fieldResp  `json:"primary,omitempty"`
	Title   string      `json:"title"`
}

func (h *handler) newParseLineResp(out schedule.ParseLineOutput) parseLineResp {
	resp := parseLineResp{
		Fields: make([]fieldResp, len(out.Fields)),
		Title:  out.Title,
	}
	for i, f := range out.Fields {
		resp.Fields[i] = newFieldResp(f)
	}
	if out.HasPrimary {
		p := newFieldResp(out.Primary)
		resp.Primary = &p
	}
	return resp
}

type textResp struct {
	Text string `json:"text"`
}

type lineResp struct {
	Line string `json:"line"`
}

type eventResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Start     any    `json:"start" swaggertype:"string"`
	End       any    `json:"end"   swaggertype:"string"`
	AllDay    bool   `json:"all_day"`
	Completed bool   `json:"completed"`
	Section   string `json:"section,omitempty"`
	Line      int    `json:"line"`
	Color     string `json:"color,omitempty"`
}

func newEventResp(ev model.Event) eventResp {
	return eventResp{
		ID:        ev.ID,
		Title:     ev.Title,
		Start:     dateValue(ev.Start, ev.AllDay),
		End:       dateValue(ev.End, ev.AllDay),
		AllDay:    ev.AllDay,
		Completed: ev.Completed,
		Section:   ev.Section,
		Line:      ev.Line,
		Color:     ev.Color,
	}
}

type editResp struct {
	Line    string     `json:"line"`
	Content string     `json:"content,omitempty"`
	Event   *eventResp `json:"event,omitempty"`
}

func (h *handler) newEditResp(out schedule.EditOutput) editResp {
	resp := editResp{Line: out.Line, Content: out.Content}
	if out.HasEvent {
		ev := newEventResp(out.Event)
		resp.Event = &ev
	}
	return resp
}

type createResp struct {
	Line  string    `json:"line"`
	Event eventResp `json:"event"`
}

func (h *handler) newCreateResp(out schedule.CreateOutput) createResp {
	return createResp{Line: out.Line, Event: newEventResp(out.Event)}
}

type statsResp struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Dated     int     `json:"dated"`
	Progress  float64 `json:"progress"`
}

type documentEventsResp struct {
	Events  []eventResp `json:"events"`
	Undated int         `json:"undated"`
	Stats   statsResp   `json:"stats"`
}

func (h *handler) newDocumentEventsResp(out schedule.ProjectDocumentOutput) documentEventsResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventResp(ev)
	}
	return documentEventsResp{
		Events:  events,
		Undated: out.Undated,
		Stats: statsResp{
			Total:     out.Stats.Total,
			Completed: out.Stats.Completed,
			Pending:   out.Stats.Pending,
			Dated:     out.Stats.Dated,
			Progress:  out.Stats.Progress,
		},
	}
}

type publishResp struct {
	Published int `json:"published"`
	Failed    int `json:"failed"`
	Deleted   int `json:"deleted"`
	Undated   int `json:"undated"`
}

func (h *handler) newPublishResp(out schedule.PublishOutput) publishResp {
	return publishResp{
		Published: out.Published,
		Failed:    out.Failed,
		Deleted:   out.Deleted,
		Undated:   out.Undated,
	}
}
