package usecase

import (
	"context"

	"markdown-task-calendar/internal/model"
	"markdown-task-calendar/internal/schedule"
	"markdown-task-calendar/pkg/dateparser"
)

// Complete checks or unchecks a task. Checking adds a Done field dated today;
// unchecking removes Done fields. Other fields keep their text.
func (uc *implUseCase) Complete(ctx context.Context, input schedule.CompleteInput) (schedule.EditOutput, error) {
	task, err := uc.resolve(ctx, input.Target)
	if err != nil {
		return schedule.EditOutput{}, err
	}

	toggled, ok := uc.checklist.SetChecked(task.RawLine, input.Checked)
	if !ok {
		return schedule.EditOutput{}, schedule.ErrNotATask
	}
	// Offsets may move when the state character changes width.
	next, ok := uc.parseLine(task.Line, toggled, task.Section)
	if !ok {
		return schedule.EditOutput{}, schedule.ErrNotATask
	}

	line := toggled
	if input.Checked {
		// Grammars without Done syntax only toggle the checkbox.
		if f, ok := uc.completionFormat(next); ok {
			today := uc.calendar.Today(uc.nowOr(input.Now))
			line = uc.rewrite(next, map[dateparser.DateFieldType]string{
				dateparser.TypeDone: dateparser.FormatDate(dateparser.TypeDone, today, f, false),
			})
		}
	} else if _, hasDone := next.Field(dateparser.TypeDone); hasDone {
		line = uc.rewrite(next, nil, dateparser.TypeDone)
	}

	uc.l.Infof(ctx, "schedule.Complete: line %d checked=%v", task.Line, input.Checked)
	return uc.finish(ctx, input.Target, task, line)
}

// completionFormat is the format of the Done field: the configured default
// for undated tasks, otherwise the task's own when it has Done syntax.
func (uc *implUseCase) completionFormat(task model.Task) (dateparser.Format, bool) {
	if !task.HasPrimary && uc.cfg.DefaultFormat.SupportsType(dateparser.TypeDone) {
		return uc.cfg.DefaultFormat, true
	}
	return uc.formatFor(task, dateparser.TypeDone)
}
