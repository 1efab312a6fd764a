package colorrule

import (
	"fmt"
	"strings"
	"time"

	"markdown-task-calendar/internal/model"
	"markdown-task-calendar/pkg/dateparser"
	"markdown-task-calendar/pkg/datemath"
)

// Evaluator picks a color for a task from ColorSettings.
type Evaluator struct {
	settings ColorSettings
}

// New validates settings and returns an Evaluator.
func New(settings ColorSettings) (*Evaluator, error) {
	for i, r := range settings.Rules {
		if !IsValidCondition(r.Condition) {
			return nil, fmt.Errorf("rule %d: %w: %q", i, ErrUnknownCondition, r.Condition)
		}
	}
	// Config loaders lowercase map keys, so lookups ignore case.
	settings.Sections = lowerKeys(settings.Sections)
	settings.Files = lowerKeys(settings.Files)
	return &Evaluator{settings: settings}, nil
}

func lowerKeys(m map[string]ColorTheme) map[string]ColorTheme {
	out := make(map[string]ColorTheme, len(m))
	for k, v := range m {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}

// IsValidCondition reports whether c is a known condition.
func IsValidCondition(c ConditionType) bool {
	switch c {
	case ConditionOverdue, ConditionCompleted, ConditionHasTag, ConditionTitleContains,
		ConditionSectionIs, ConditionHasDue, ConditionAlways:
		return true
	}
	return false
}

// Evaluate returns the task's color. Rules are tried in order and the first
// enabled, file-applicable, matching rule wins; then the section color, the
// file color and finally the default.
func (e *Evaluator) Evaluate(task model.Task, filePath string, dark bool, today time.Time) string {
	for _, r := range e.settings.Rules {
		if !r.Enabled || !appliesToFile(r.Files, filePath) {
			continue
		}
		if matches(r, task, today) {
			return r.Color.Pick(dark)
		}
	}
	if c, ok := e.settings.Sections[strings.ToLower(strings.TrimSpace(task.Section))]; ok && !c.IsZero() {
		return c.Pick(dark)
	}
	if c, ok := e.settings.Files[strings.ToLower(filePath)]; ok && !c.IsZero() {
		return c.Pick(dark)
	}
	return e.settings.Default.Pick(dark)
}

func matches(r ColorRule, task model.Task, today time.Time) bool {
	switch r.Condition {
	case ConditionAlways:
		return true
	case ConditionCompleted:
		return task.Checked
	case ConditionOverdue:
		if task.Checked || !task.HasPrimary {
			return false
		}
		return datemath.StartOfDay(task.Primary.Date).Before(datemath.StartOfDay(today.In(task.Primary.Date.Location())))
	case ConditionHasDue:
		_, ok := task.Field(dateparser.TypeDue)
		return ok
	case ConditionHasTag:
		return hasTag(task.RawLine, r.Param)
	case ConditionTitleContains:
		if r.Param == "" {
			return false
		}
		return strings.Contains(strings.ToLower(task.Title), strings.ToLower(r.Param))
	case ConditionSectionIs:
		return strings.EqualFold(strings.TrimSpace(task.Section), strings.TrimSpace(r.Param))
	}
	return false
}

// hasTag matches "#tag" as a whole whitespace-separated token.
func hasTag(line, tag string) bool {
	tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
	if tag == "" {
		return false
	}
	want := "#" + strings.ToLower(tag)
	for _, tok := range strings.Fields(strings.ToLower(line)) {
		if tok == want {
			return true
		}
	}
	return false
}

func appliesToFile(files []string, path string) bool {
	if len(files) == 0 {
		return true
	}
	for _, f := range files {
		if f == path {
			return true
		}
		if strings.HasSuffix(f, "/") && strings.HasPrefix(path, f) {
			return true
		}
	}
	return false
}
