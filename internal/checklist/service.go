package checklist

import (
	"context"
	"regexp"
	"strings"

	"markdown-task-calendar/internal/model"
	"markdown-task-calendar/pkg/dateparser"
)

const (
	CheckboxUnchecked = " "
	CheckboxChecked   = "x"
	// Regex pattern: captures indent, list marker, checkbox state, and text
	// Example: "  - [x] Task name" → groups: ["  ", "-", "x", "Task name"]
	CheckboxPattern = `^(\s*)([-*+]) \[(.)\](?: (.*))?$`
	HeadingPattern  = `^ {0,3}#{1,6}\s+(.*?)\s*#*\s*$`
	FencePattern    = "^ {0,3}(```|~~~)"
)

type Service interface {
	// ParseTasks extracts all checkbox tasks from markdown content
	ParseTasks(content string) []model.Task

	// ParseTask parses a single line; false when it is not a checkbox
	ParseTask(lineNumber int, line, section string) (model.Task, bool)

	// GetStats calculates checklist statistics
	GetStats(content string) ChecklistStats

	// SetChecked rewrites the checkbox state of a single line
	SetChecked(line string, checked bool) (string, bool)

	// UpdateCheckbox updates the checkbox state of one line in a document
	UpdateCheckbox(ctx context.Context, input UpdateCheckboxInput) (UpdateCheckboxOutput, error)

	// UpdateAllCheckboxes sets all checkboxes to specified state
	UpdateAllCheckboxes(content string, checked bool) string

	// IsFullyCompleted checks if all checkboxes are checked
	IsFullyCompleted(content string) bool

	// ReplaceLine swaps one line of a document
	ReplaceLine(content string, lineNumber int, newLine string) (string, error)
}

type service struct {
	pattern  *regexp.Regexp
	heading  *regexp.Regexp
	fence    *regexp.Regexp
	parser   *dateparser.Parser
	priority []dateparser.DateFieldType
	grammar  dateparser.Grammar
}

// New creates a checklist service. Dates are recognized with grammar and the
// primary date is chosen with priority (nil means the default order).
func New(parser *dateparser.Parser, priority []dateparser.DateFieldType, grammar dateparser.Grammar) Service {
	return &service{
		pattern:  regexp.MustCompile(CheckboxPattern),
		heading:  regexp.MustCompile(HeadingPattern),
		fence:    regexp.MustCompile(FencePattern),
		parser:   parser,
		priority: priority,
		grammar:  grammar,
	}
}

// eachLine walks the document outside fenced code blocks, tracking the
// current section heading.
func (s *service) eachLine(content string, fn func(i int, line, section string)) {
	section := ""
	inFence := false
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if s.fence.MatchString(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if m := s.heading.FindStringSubmatch(line); m != nil {
			section = m[1]
			continue
		}
		fn(i, line, section)
	}
}

// ParseTasks extracts all checkbox tasks from markdown
func (s *service) ParseTasks(content string) []model.Task {
	var tasks []model.Task
	s.eachLine(content, func(i int, line, section string) {
		if task, ok := s.ParseTask(i, line, section); ok {
			tasks = append(tasks, task)
		}
	})
	return tasks
}

// ParseTask parses one checkbox line
func (s *service) ParseTask(lineNumber int, line, section string) (model.Task, bool) {
	match := s.pattern.FindStringSubmatch(line)
	if len(match) != 5 {
		return model.Task{}, false
	}

	dates := s.parser.ExtractAllDates(line, s.grammar)
	primary, hasPrimary := dateparser.PrimaryOf(dates, s.priority)
	text := s.parser.StripFields(line, dates)

	return model.Task{
		Line:       lineNumber,
		Indent:     match[1],
		Marker:     match[2],
		Status:     match[3],
		Checked:    strings.EqualFold(match[3], CheckboxChecked),
		Title:      titleOf(s.pattern, text),
		Section:    section,
		RawLine:    line,
		Dates:      dates,
		Primary:    primary,
		HasPrimary: hasPrimary,
	}, true
}

// titleOf drops the checkbox prefix from an already stripped line.
func titleOf(pattern *regexp.Regexp, stripped string) string {
	if m := pattern.FindStringSubmatch(stripped); len(m) == 5 {
		return strings.TrimSpace(m[4])
	}
	return strings.TrimSpace(stripped)
}

// GetStats calculates checklist statistics
func (s *service) GetStats(content string) ChecklistStats {
	tasks := s.ParseTasks(content)
	total := len(tasks)

	if total == 0 {
		return ChecklistStats{}
	}

	completed, dated := 0, 0
	for _, t := range tasks {
		if t.Checked {
			completed++
		}
		if t.HasPrimary {
			dated++
		}
	}

	return ChecklistStats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Dated:     dated,
		Progress:  float64(completed) / float64(total) * 100,
	}
}

// SetChecked rewrites the state character of a checkbox line
func (s *service) SetChecked(line string, checked bool) (string, bool) {
	loc := s.pattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return line, false
	}
	state := CheckboxUnchecked
	if checked {
		state = CheckboxChecked
	}
	// Group 3 is the single state character.
	return line[:loc[6]] + state + line[loc[7]:], true
}

// UpdateCheckbox updates the checkbox on one line of the document
func (s *service) UpdateCheckbox(ctx context.Context, input UpdateCheckboxInput) (UpdateCheckboxOutput, error) {
	lines := strings.Split(input.Content, "\n")
	if input.LineNumber < 0 || input.LineNumber >= len(lines) {
		return UpdateCheckboxOutput{Content: input.Content}, ErrLineOutOfRange
	}

	original := lines[input.LineNumber]
	updated, ok := s.SetChecked(original, input.Checked)
	if !ok {
		return UpdateCheckboxOutput{Content: input.Content}, ErrNotACheckbox
	}
	lines[input.LineNumber] = updated

	return UpdateCheckboxOutput{
		Content: strings.Join(lines, "\n"),
		Line:    updated,
		Updated: updated != original,
	}, nil
}

// UpdateAllCheckboxes sets all checkboxes to specified state
func (s *service) UpdateAllCheckboxes(content string, checked bool) string {
	lines := strings.Split(content, "\n")
	s.eachLine(content, func(i int, _, _ string) {
		if updated, ok := s.SetChecked(lines[i], checked); ok {
			lines[i] = updated
		}
	})
	return strings.Join(lines, "\n")
}

// IsFullyCompleted checks if all checkboxes are checked
func (s *service) IsFullyCompleted(content string) bool {
	tasks := s.ParseTasks(content)
	if len(tasks) == 0 {
		return false // No checkboxes = not a checklist
	}

	for _, t := range tasks {
		if !t.Checked {
			return false
		}
	}
	return true
}

// ReplaceLine swaps the line at lineNumber
func (s *service) ReplaceLine(content string, lineNumber int, newLine string) (string, error) {
	lines := strings.Split(content, "\n")
	if lineNumber < 0 || lineNumber >= len(lines) {
		return content, ErrLineOutOfRange
	}
	lines[lineNumber] = newLine
	return strings.Join(lines, "\n"), nil
}
