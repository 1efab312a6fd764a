package usecase

import (
	"context"
	"time"

	"markdown-task-calendar/internal/model"
	"markdown-task-calendar/internal/schedule"
	"markdown-task-calendar/pkg/dateparser"
	"markdown-task-calendar/pkg/datemath"
)

// Move reschedules a task dragged to a new start. A Start+Due task keeps its
// duration: Due is shifted by the same amount as Start. Other tasks move the
// date the event was placed on.
func (uc *implUseCase) Move(ctx context.Context, input schedule.MoveInput) (schedule.EditOutput, error) {
	task, err := uc.resolve(ctx, input.Target)
	if err != nil {
		return schedule.EditOutput{}, err
	}
	if !task.HasPrimary {
		return schedule.EditOutput{}, schedule.ErrNoDate
	}
	if input.Start.IsZero() {
		return schedule.EditOutput{}, schedule.ErrInvalidRange
	}

	loc := uc.calendar.Location()
	start := input.Start.In(loc)
	if !input.End.IsZero() {
		end := datemath.NormalizeDropEnd(start, input.End.In(loc), hasExplicitTime(task))
		if end.Before(start) {
			return schedule.EditOutput{}, schedule.ErrInvalidRange
		}
	}
	timed := !input.AllDay

	_, hasStart := task.Field(dateparser.TypeStart)
	dueF, hasDue := task.Field(dateparser.TypeDue)

	updates := make(map[dateparser.DateFieldType]string, 2)
	if hasStart && hasDue {
		old, err := uc.project(task, input.Path)
		if err != nil {
			return schedule.EditOutput{}, err
		}
		due := shift(dueF.Date, old.Start, start, input.AllDay)
		updates[dateparser.TypeStart] = writeDate(dateparser.TypeStart, start, uc.fieldFormat(task, dateparser.TypeStart), timed)
		updates[dateparser.TypeDue] = writeDate(dateparser.TypeDue, due, uc.fieldFormat(task, dateparser.TypeDue), timed && dueF.HasTime)
		uc.l.Infof(ctx, "schedule.Move: line %d shifted by %s", task.Line, start.Sub(old.Start))
	} else {
		f := placedField(task)
		updates[f.Type] = writeDate(f.Type, start, uc.fieldFormat(task, f.Type), timed)
		uc.l.Infof(ctx, "schedule.Move: line %d %s -> %s", task.Line, f.Type, start.Format(dateparser.DateTimeLayout))
	}

	return uc.finish(ctx, input.Target, task, uc.rewrite(task, updates))
}

// shift moves t by the distance from oldStart to newStart. All-day drops
// move by whole days so the wall clock of t is kept.
func shift(t, oldStart, newStart time.Time, allDay bool) time.Time {
	if allDay {
		return t.AddDate(0, 0, datemath.DaysBetween(oldStart, newStart))
	}
	return t.Add(newStart.Sub(oldStart))
}

// placedField is the field a single-date task's event was placed on.
func placedField(task model.Task) dateparser.ParsedDateField {
	if task.IsKanban() && task.Primary.HasTime {
		return task.Primary
	}
	if f, ok := task.Field(dateparser.TypeStart); ok {
		return f
	}
	if f, ok := task.Field(dateparser.TypeDue); ok {
		return f
	}
	return task.Primary
}
