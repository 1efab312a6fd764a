package usecase

import (
	"context"
	"strings"

	"markdown-task-calendar/internal/checklist"
	"markdown-task-calendar/internal/schedule"
	"markdown-task-calendar/pkg/dateparser"
	"markdown-task-calendar/pkg/datemath"
)

const newTaskPrefix = "- [" + checklist.CheckboxUnchecked + "] "

// CreateFromSelection writes a new task line for a range picked in the
// calendar. Kanban keeps only the start, simple keeps only the start date,
// tasks and dataview write Start and Due for ranges and a single Due otherwise.
func (uc *implUseCase) CreateFromSelection(ctx context.Context, input schedule.CreateInput) (schedule.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return schedule.CreateOutput{}, schedule.ErrEmptyTitle
	}
	format := input.Format
	if format == "" {
		format = uc.cfg.DefaultFormat
	}
	if !format.IsValid() || !uc.cfg.Grammar.Reads(format) {
		return schedule.CreateOutput{}, schedule.ErrInvalidFormat
	}
	if input.Start.IsZero() {
		return schedule.CreateOutput{}, schedule.ErrInvalidRange
	}

	loc := uc.calendar.Location()
	timed := !input.AllDay
	start := input.Start.In(loc)
	end := input.End
	if !end.IsZero() {
		end = end.In(loc)
	}
	end = datemath.NormalizeDropEnd(start, end, timed)
	if end.Before(start) {
		return schedule.CreateOutput{}, schedule.ErrInvalidRange
	}

	updates := make(map[dateparser.DateFieldType]string, 2)
	switch format {
	case dateparser.FormatKanban, dateparser.FormatSimple:
		updates[dateparser.TypeDue] = writeDate(dateparser.TypeDue, start, format, timed)
	default:
		if !datemath.SameDay(start, end) || (timed && end.After(start)) {
			updates[dateparser.TypeStart] = writeDate(dateparser.TypeStart, start, format, timed)
			updates[dateparser.TypeDue] = writeDate(dateparser.TypeDue, end, format, timed)
		} else {
			updates[dateparser.TypeDue] = writeDate(dateparser.TypeDue, start, format, timed)
		}
	}

	line := dateparser.JoinFields(newTaskPrefix+title, updates)
	task, ok := uc.parseLine(0, line, "")
	if !ok {
		return schedule.CreateOutput{}, schedule.ErrNotATask
	}
	ev, err := uc.project(task, "")
	if err != nil {
		uc.l.Errorf(ctx, "schedule.CreateFromSelection: %v", err)
		return schedule.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "schedule.CreateFromSelection: created %q", line)
	return schedule.CreateOutput{Line: line, Event: ev}, nil
}
