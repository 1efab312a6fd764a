package dateparser

import (
	"strings"
	"time"
)

// FormatDate renders a date in the textual convention of format so that
// ExtractAllDates recognizes it again. A time is written only when
// includeTime is set, the format supports it, and the clock is not midnight.
func FormatDate(t DateFieldType, date time.Time, format Format, includeTime bool) string {
	day := date.Format(DateLayout)
	withTime := includeTime && hasClock(date)

	switch format {
	case FormatDataviewBracket, FormatDataviewParen:
		value := day
		if withTime {
			value = date.Format(DateTimeLayout)
		}
		open, close := "[", "]"
		if format == FormatDataviewParen {
			open, close = "(", ")"
		}
		return open + string(t) + ":: " + value + close
	case FormatSimple:
		return "@ " + day
	case FormatKanban:
		out := "@{" + day + "}"
		if withTime {
			out += " @@{" + date.Format(TimeLayout) + "}"
		}
		return out
	default:
		out := Symbol(t) + " " + day
		if withTime {
			out += " " + date.Format(TimeLayout)
		}
		return out
	}
}

// FormatField re-renders an extracted field in its own format.
func FormatField(f ParsedDateField) string {
	return FormatDate(f.Type, f.Date, f.Format, f.HasTime)
}

// RebuildLine strips every date from line and appends the supplied field
// texts in CanonicalOrder. Types missing from updates are dropped.
func (p *Parser) RebuildLine(line string, updates map[DateFieldType]string) string {
	return JoinFields(p.StripDates(line), updates)
}

// JoinFields appends field texts to an already stripped line in CanonicalOrder.
func JoinFields(stripped string, updates map[DateFieldType]string) string {
	parts := make([]string, 0, len(updates)+1)
	if s := strings.TrimSpace(stripped); s != "" {
		parts = append(parts, s)
	}
	for _, t := range CanonicalOrder {
		text, ok := updates[t]
		if !ok {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// CarryForward returns the raw text of every field keyed by type, keeping the
// first occurrence of each type. It is the starting point for an update map
// that should preserve fields the caller does not touch.
func CarryForward(fields []ParsedDateField) map[DateFieldType]string {
	out := make(map[DateFieldType]string, len(fields))
	for _, f := range fields {
		if _, ok := out[f.Type]; ok {
			continue
		}
		// A kanban raw span excludes its line-level clock, which StripDates removes.
		if f.Format == FormatKanban {
			out[f.Type] = FormatField(f)
			continue
		}
		out[f.Type] = f.Raw
	}
	return out
}
