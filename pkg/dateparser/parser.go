package dateparser

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Parser recognizes and rewrites date fields on task lines.
// It holds no mutable state and is safe for concurrent use.
type Parser struct {
	loc *time.Location
	g   grammars
}

// NewParser creates a parser that builds dates in the given IANA timezone.
// An empty timezone means the local zone.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" {
		return NewParserIn(time.Local), nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return NewParserIn(loc), nil
}

// NewParserIn creates a parser that builds dates in loc.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.Local
	}
	return &Parser{loc: loc, g: compileGrammars()}
}

// Location returns the zone dates are built in.
func (p *Parser) Location() *time.Location {
	return p.loc
}

// ExtractAllDates returns the date fields of a line ordered by position.
// When two grammars claim overlapping spans the earliest one wins and the
// other is dropped.
func (p *Parser) ExtractAllDates(line string, grammar Grammar) []ParsedDateField {
	if line == "" {
		return nil
	}

	var all []ParsedDateField
	if grammar == GrammarAll || grammar == GrammarTasks {
		all = append(all, p.scanTasks(line)...)
	}
	if grammar == GrammarAll || grammar == GrammarDataview {
		all = append(all, p.scanDataview(line)...)
	}
	if grammar == GrammarAll || grammar == GrammarSimple {
		all = append(all, p.scanSimple(line)...)
	}
	if grammar == GrammarAll || grammar == GrammarKanban {
		all = append(all, p.scanKanban(line)...)
	}
	if len(all) == 0 {
		return nil
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Start < all[j].Start
	})

	kept := make([]ParsedDateField, 0, len(all))
	lastEnd := 0
	for _, f := range all {
		if f.Start < lastEnd {
			continue
		}
		kept = append(kept, f)
		lastEnd = f.End
	}
	return kept
}

// GetPrimaryDate picks the representative date of a line. A nil priority uses
// DefaultPriority. When no field matches the priority list the first field by
// position is returned. The boolean is false when the line has no dates.
func (p *Parser) GetPrimaryDate(line string, priority []DateFieldType, grammar Grammar) (ParsedDateField, bool) {
	return PrimaryOf(p.ExtractAllDates(line, grammar), priority)
}

// PrimaryOf applies the primary-date rule to already extracted fields.
func PrimaryOf(fields []ParsedDateField, priority []DateFieldType) (ParsedDateField, bool) {
	if len(fields) == 0 {
		return ParsedDateField{}, false
	}
	if priority == nil {
		priority = DefaultPriority
	}
	for _, t := range priority {
		for _, f := range fields {
			if f.Type == t {
				return f, true
			}
		}
	}
	return fields[0], true
}

// StripDates removes every date field from the line and normalizes whitespace.
// A line without dates is returned untouched.
func (p *Parser) StripDates(line string) string {
	return p.stripFields(line, p.ExtractAllDates(line, GrammarAll))
}

// StripFields removes the given fields, as returned by ExtractAllDates for the
// same line, and normalizes whitespace.
func (p *Parser) StripFields(line string, fields []ParsedDateField) string {
	return p.stripFields(line, fields)
}

func (p *Parser) stripFields(line string, fields []ParsedDateField) string {
	if len(fields) == 0 {
		return line
	}

	spans := make([][2]int, 0, len(fields))
	kanban := false
	for _, f := range fields {
		spans = append(spans, [2]int{f.Start, f.End})
		if f.Format == FormatKanban {
			kanban = true
		}
	}
	// The line-level kanban clock belongs to the kanban dates it modifies.
	if kanban {
		for _, s := range p.kanbanClockSpans(line) {
			if !overlapsAny(spans, s[0], s[1]) {
				spans = append(spans, [2]int{s[0], s[1]})
			}
		}
	}

	sort.Slice(spans, func(i, j int) bool {
		return spans[i][0] > spans[j][0]
	})
	out := line
	for _, s := range spans {
		out = out[:s[0]] + out[s[1]:]
	}
	return strings.Join(strings.Fields(out), " ")
}

func overlapsAny(spans [][2]int, start, end int) bool {
	for _, s := range spans {
		if start < s[1] && s[0] < end {
			return true
		}
	}
	return false
}
