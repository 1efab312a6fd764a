package usecase

import (
	"context"
	"time"

	"markdown-task-calendar/internal/model"
	"markdown-task-calendar/internal/schedule"
	"markdown-task-calendar/pkg/dateparser"
	"markdown-task-calendar/pkg/datemath"
)

// Project turns one task line into a calendar event.
func (uc *implUseCase) Project(ctx context.Context, input schedule.ProjectInput) (model.Event, error) {
	task, err := uc.resolve(ctx, input.Target)
	if err != nil {
		return model.Event{}, err
	}
	if !task.HasPrimary {
		return model.Event{}, schedule.ErrNoDate
	}

	ev, err := uc.project(task, input.Path)
	if err != nil {
		uc.l.Errorf(ctx, "schedule.Project: %v", err)
		return model.Event{}, err
	}
	ev.Color = uc.colorOf(task, input.Path, input.Dark, uc.nowOr(input.Now))
	return ev, nil
}

// ProjectDocument projects every dated task of a markdown document.
func (uc *implUseCase) ProjectDocument(ctx context.Context, input schedule.ProjectDocumentInput) (schedule.ProjectDocumentOutput, error) {
	now := uc.nowOr(input.Now)
	tasks := uc.checklist.ParseTasks(input.Content)

	out := schedule.ProjectDocumentOutput{
		Events: make([]model.Event, 0, len(tasks)),
		Stats:  uc.checklist.GetStats(input.Content),
	}
	for _, task := range tasks {
		if !task.HasPrimary {
			out.Undated++
			continue
		}
		ev, err := uc.project(task, input.Path)
		if err != nil {
			uc.l.Warnf(ctx, "schedule.ProjectDocument: skipping line %d of %s: %v", task.Line, input.Path, err)
			continue
		}
		ev.Color = uc.colorOf(task, input.Path, input.Dark, now)
		out.Events = append(out.Events, ev)
	}

	uc.l.Infof(ctx, "schedule.ProjectDocument: %s: %d events, %d undated tasks", input.Path, len(out.Events), out.Undated)
	return out, nil
}

// project applies the placement rules to a dated task:
//   - kanban with a clock: start plus DefaultDuration
//   - Start and Due: the span between them, timed when either has a clock
//     (an untimed Due then ends at 23:59), otherwise all day
//   - only Start or only Due: that field, plus DefaultDuration when timed
//   - otherwise the primary date, plus DefaultDuration when timed
func (uc *implUseCase) project(task model.Task, path string) (model.Event, error) {
	if !task.HasPrimary {
		return model.Event{}, schedule.ErrNoDate
	}

	var r datemath.Range
	primary := task.Primary
	start, hasStart := task.Field(dateparser.TypeStart)
	due, hasDue := task.Field(dateparser.TypeDue)

	switch {
	case task.IsKanban() && primary.HasTime:
		r = timedPoint(primary.Date)
	case hasStart && hasDue:
		if start.HasTime || due.HasTime {
			end := due.Date
			if !due.HasTime {
				end = datemath.EndOfDay(due.Date)
			}
			r = datemath.Range{Start: start.Date, End: end}
		} else {
			r = datemath.Range{Start: start.Date, End: due.Date, AllDay: true}
		}
		if r.End.Before(r.Start) {
			return model.Event{}, schedule.ErrInvalidRange
		}
	case hasStart:
		r = pointOf(start)
	case hasDue:
		r = pointOf(due)
	default:
		r = pointOf(primary)
	}

	return model.Event{
		ID:        eventID(path, task.Line, task.Title),
		Title:     task.Title,
		Start:     r.Start,
		End:       r.End,
		AllDay:    r.AllDay,
		Completed: task.Checked,
		Section:   task.Section,
		Line:      task.Line,
		RawLine:   task.RawLine,
	}, nil
}

func pointOf(f dateparser.ParsedDateField) datemath.Range {
	if f.HasTime {
		return timedPoint(f.Date)
	}
	return datemath.Range{Start: f.Date, End: f.Date, AllDay: true}
}

func timedPoint(t time.Time) datemath.Range {
	return datemath.Range{Start: t, End: t.Add(datemath.DefaultDuration)}
}

func (uc *implUseCase) colorOf(task model.Task, path string, dark bool, now time.Time) string {
	if uc.colors == nil {
		return ""
	}
	return uc.colors.Evaluate(task, path, dark, uc.calendar.Today(now))
}
