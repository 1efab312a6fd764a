package usecase

import (
	"context"
	"strings"

	"markdown-task-calendar/internal/schedule"
	"markdown-task-calendar/pkg/dateparser"
)

// ParseLine extracts every date field of a line and picks the primary one.
// An empty grammar or nil priority uses the configured one, as task parsing
// does.
func (uc *implUseCase) ParseLine(ctx context.Context, input schedule.ParseLineInput) (schedule.ParseLineOutput, error) {
	if strings.TrimSpace(input.Line) == "" {
		return schedule.ParseLineOutput{}, schedule.ErrEmptyLine
	}
	if !input.Grammar.IsValid() {
		return schedule.ParseLineOutput{}, schedule.ErrInvalidGrammar
	}

	priority := input.Priority
	if priority == nil {
		priority = uc.cfg.Priority
	}

	grammar := input.Grammar
	if grammar == dateparser.GrammarAll {
		grammar = uc.cfg.Grammar
	}

	fields := uc.parser.ExtractAllDates(input.Line, grammar)
	primary, ok := dateparser.PrimaryOf(fields, priority)
	return schedule.ParseLineOutput{
		Fields:     fields,
		Primary:    primary,
		HasPrimary: ok,
		Title:      uc.parser.StripFields(input.Line, fields),
	}, nil
}

// FormatDate renders one date field.
func (uc *implUseCase) FormatDate(ctx context.Context, input schedule.FormatDateInput) (string, error) {
	if !dateparser.IsValidType(input.Type) {
		return "", schedule.ErrInvalidType
	}
	if !input.Format.IsValid() {
		return "", schedule.ErrInvalidFormat
	}
	if !input.Format.SupportsType(input.Type) {
		return "", schedule.ErrUnsupportedType
	}
	return dateparser.FormatDate(input.Type, input.Date.In(uc.parser.Location()), input.Format, input.IncludeTime), nil
}

// RebuildLine strips the line's dates and appends the given field texts in
// canonical order.
func (uc *implUseCase) RebuildLine(ctx context.Context, input schedule.RebuildLineInput) (string, error) {
	if strings.TrimSpace(input.Line) == "" {
		return "", schedule.ErrEmptyLine
	}
	for t := range input.Updates {
		if !dateparser.IsValidType(t) {
			return "", schedule.ErrInvalidType
		}
	}
	return uc.parser.RebuildLine(input.Line, input.Updates), nil
}
