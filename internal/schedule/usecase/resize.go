package usecase

import (
	"context"

	"markdown-task-calendar/internal/schedule"
	"markdown-task-calendar/pkg/dateparser"
	"markdown-task-calendar/pkg/datemath"
)

// Resize rewrites a task after its event was stretched or shrunk. The end the
// calendar reports is made inclusive first. A Start+Due task collapsing to a
// single day gets its original clocks back; a single-date task stretched over
// several days or given a clock range gains Start and Due fields.
func (uc *implUseCase) Resize(ctx context.Context, input schedule.ResizeInput) (schedule.EditOutput, error) {
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
	end := input.End
	if !end.IsZero() {
		end = end.In(loc)
	}
	end = datemath.NormalizeDropEnd(start, end, hasExplicitTime(task))
	if end.Before(start) {
		return schedule.EditOutput{}, schedule.ErrInvalidRange
	}

	timed := !input.AllDay
	multiDay := !datemath.SameDay(start, end)
	clockRange := timed && datemath.HasTimeComponent(start) && !end.Equal(start.Add(datemath.DefaultDuration))

	// Kanban and simple grammars have no Start syntax and keep a single date.
	rangeFmt, canRange := uc.formatFor(task, dateparser.TypeStart)

	startF, hasStart := task.Field(dateparser.TypeStart)
	dueF, hasDue := task.Field(dateparser.TypeDue)
	updates := make(map[dateparser.DateFieldType]string, 2)

	switch {
	case hasStart && hasDue:
		old, err := uc.project(task, input.Path)
		if err != nil {
			return schedule.EditOutput{}, err
		}
		startFmt := uc.fieldFormat(task, dateparser.TypeStart)
		dueFmt := uc.fieldFormat(task, dateparser.TypeDue)

		collapsed := !multiDay && !datemath.SameDay(old.Start, old.End)
		if collapsed && (input.AllDay || datemath.IsDefaultDropTime(input.Start.In(loc))) {
			day := datemath.StartOfDay(start)
			s, e := day, day
			if startF.HasTime {
				s = datemath.WithClockOf(day, startF.Date)
			}
			if dueF.HasTime {
				e = datemath.WithClockOf(day, dueF.Date)
			}
			updates[dateparser.TypeStart] = writeDate(dateparser.TypeStart, s, startFmt, startF.HasTime)
			updates[dateparser.TypeDue] = writeDate(dateparser.TypeDue, e, dueFmt, dueF.HasTime)
			uc.l.Infof(ctx, "schedule.Resize: line %d collapsed to %s", task.Line, day.Format(dateparser.DateLayout))
			break
		}

		// An untimed Due is projected to 23:59; keep it untimed when the end stays there.
		dueTimed := timed && !(!dueF.HasTime && end.Equal(datemath.EndOfDay(end)))
		updates[dateparser.TypeStart] = writeDate(dateparser.TypeStart, start, startFmt, timed)
		updates[dateparser.TypeDue] = writeDate(dateparser.TypeDue, end, dueFmt, dueTimed)

	case (multiDay || clockRange) && canRange:
		// Kanban and simple tasks fall back to tasks when the grammar reads it.
		updates[dateparser.TypeStart] = writeDate(dateparser.TypeStart, start, rangeFmt, timed)
		updates[dateparser.TypeDue] = writeDate(dateparser.TypeDue, end, rangeFmt, timed)
		uc.l.Infof(ctx, "schedule.Resize: line %d gained a Start/Due range in %s format", task.Line, rangeFmt)

	default:
		f := placedField(task)
		updates[f.Type] = writeDate(f.Type, start, uc.fieldFormat(task, f.Type), timed)
	}

	return uc.finish(ctx, input.Target, task, uc.rewrite(task, updates))
}
