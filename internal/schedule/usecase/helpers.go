package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"markdown-task-calendar/internal/model"
	"markdown-task-calendar/internal/schedule"
	"markdown-task-calendar/pkg/dateparser"
	"markdown-task-calendar/pkg/datemath"
)

// eventNamespace seeds deterministic event ids.
var eventNamespace = uuid.MustParse("6f1c8a52-3f0e-4b8e-9d55-2d1f0c7a9e41")

// eventID is stable for a given file, line and title. Hex without dashes is
// valid base32hex, which Google Calendar requires for custom ids.
func eventID(path string, line int, title string) string {
	key := path + "\x00" + strconv.Itoa(line) + "\x00" + title
	return strings.ReplaceAll(uuid.NewSHA1(eventNamespace, []byte(key)).String(), "-", "")
}

func (uc *implUseCase) nowOr(t time.Time) time.Time {
	if t.IsZero() {
		return uc.now()
	}
	return t
}

// parseLine parses one line through the cache.
func (uc *implUseCase) parseLine(lineNumber int, line, section string) (model.Task, bool) {
	cached, hit := uc.cache.Get(line)
	if !hit {
		task, ok := uc.checklist.ParseTask(0, line, "")
		cached = cachedTask{task: task, ok: ok}
		uc.cache.Add(line, cached)
	}
	if !cached.ok {
		return model.Task{}, false
	}
	task := cached.task
	task.Line = lineNumber
	task.Section = section
	return task, true
}

// resolve finds the task a target points at.
func (uc *implUseCase) resolve(ctx context.Context, t schedule.Target) (model.Task, error) {
	if t.Content == "" {
		if strings.TrimSpace(t.Line) == "" {
			return model.Task{}, schedule.ErrEmptyLine
		}
		task, ok := uc.parseLine(t.LineNumber, strings.TrimSuffix(t.Line, "\r"), "")
		if !ok {
			return model.Task{}, schedule.ErrNotATask
		}
		return task, nil
	}

	if t.LineNumber < 0 || t.LineNumber >= strings.Count(t.Content, "\n")+1 {
		return model.Task{}, schedule.ErrLineOutOfRange
	}
	for _, task := range uc.checklist.ParseTasks(t.Content) {
		if task.Line == t.LineNumber {
			return task, nil
		}
	}
	uc.l.Debugf(ctx, "schedule.resolve: line %d of %s is not a task", t.LineNumber, t.Path)
	return model.Task{}, schedule.ErrNotATask
}

// finish writes newLine back into the target and re-projects it.
func (uc *implUseCase) finish(ctx context.Context, t schedule.Target, old model.Task, newLine string) (schedule.EditOutput, error) {
	out := schedule.EditOutput{Line: newLine}
	if t.Content != "" {
		content, err := uc.checklist.ReplaceLine(t.Content, t.LineNumber, newLine)
		if err != nil {
			return schedule.EditOutput{}, schedule.ErrLineOutOfRange
		}
		out.Content = content
	}

	task, ok := uc.parseLine(old.Line, newLine, old.Section)
	if !ok {
		return schedule.EditOutput{}, schedule.ErrNotATask
	}
	out.Task = task

	if task.HasPrimary {
		ev, err := uc.project(task, t.Path)
		if err != nil {
			return schedule.EditOutput{}, err
		}
		out.Event = ev
		out.HasEvent = true
	}
	uc.l.Debugf(ctx, "schedule: rewrote line %d: %q -> %q", old.Line, old.RawLine, newLine)
	return out, nil
}

// rewrite rebuilds a task line. Fields in updates are replaced, fields in
// remove are dropped and every other field keeps its original text. The
// result is in canonical order and keeps the task's indentation.
func (uc *implUseCase) rewrite(task model.Task, updates map[dateparser.DateFieldType]string, remove ...dateparser.DateFieldType) string {
	texts := dateparser.CarryForward(task.Dates)
	for _, t := range remove {
		delete(texts, t)
	}
	for t, text := range updates {
		texts[t] = text
	}
	stripped := uc.parser.StripFields(task.RawLine, task.Dates)
	return task.Indent + dateparser.JoinFields(stripped, texts)
}

// formatFor picks the format used to write typ on task: the format of an
// existing field of that type, then the task's format, then tasks, then the
// configured default. Only formats the configured grammar reads qualify;
// false when none has syntax for typ.
func (uc *implUseCase) formatFor(task model.Task, typ dateparser.DateFieldType) (dateparser.Format, bool) {
	var candidates []dateparser.Format
	if f, ok := task.Field(typ); ok {
		candidates = append(candidates, f.Format)
	}
	candidates = append(candidates, task.Format(), dateparser.FormatTasks, uc.cfg.DefaultFormat)
	for _, f := range candidates {
		if f != "" && f.SupportsType(typ) && uc.cfg.Grammar.Reads(f) {
			return f, true
		}
	}
	return "", false
}

// fieldFormat is formatFor for a field type the task already carries, which
// is always readable.
func (uc *implUseCase) fieldFormat(task model.Task, typ dateparser.DateFieldType) dateparser.Format {
	f, _ := uc.formatFor(task, typ)
	return f
}

// writeDate formats date for typ. A time is written only when timed is set,
// the format supports it and the clock is not midnight.
func writeDate(typ dateparser.DateFieldType, date time.Time, format dateparser.Format, timed bool) string {
	return dateparser.FormatDate(typ, date, format, timed && format.SupportsTime() && datemath.HasTimeComponent(date))
}

// hasExplicitTime reports whether any field of the task carries a clock.
func hasExplicitTime(task model.Task) bool {
	for _, f := range task.Dates {
		if f.HasTime {
			return true
		}
	}
	return false
}
