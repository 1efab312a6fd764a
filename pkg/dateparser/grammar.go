package dateparser

import (
	"regexp"
	"strings"
	"time"
)

// grammars holds the compiled matchers. A *regexp.Regexp keeps no scan state
// between calls, so one set is safely shared by concurrent extractions.
type grammars struct {
	tasks       map[DateFieldType]*regexp.Regexp
	datePrefix  *regexp.Regexp
	simple      *regexp.Regexp
	kanbanDate  *regexp.Regexp
	kanbanClock *regexp.Regexp
}

func compileGrammars() grammars {
	g := grammars{
		tasks:       make(map[DateFieldType]*regexp.Regexp, len(typeSymbols)),
		datePrefix:  regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`),
		simple:      regexp.MustCompile(`@\s*` + datePattern),
		kanbanDate:  regexp.MustCompile(`@\{` + datePattern + `\}`),
		kanbanClock: regexp.MustCompile(`@@\{` + clockPattern + `\}`),
	}
	for t, symbols := range typeSymbols {
		quoted := make([]string, len(symbols))
		for i, s := range symbols {
			quoted[i] = regexp.QuoteMeta(s)
		}
		pattern := `(?:` + strings.Join(quoted, "|") + `)` + variationSelector +
			`\s*` + datePattern + `(?:\s+` + clockPattern + `(?::[0-5]\d)?\b)?`
		g.tasks[t] = regexp.MustCompile(pattern)
	}
	return g
}

// scanTasks runs the emoji matcher of every type over the whole line.
func (p *Parser) scanTasks(line string) []ParsedDateField {
	var fields []ParsedDateField
	for _, t := range CanonicalOrder {
		for _, m := range p.g.tasks[t].FindAllStringSubmatchIndex(line, -1) {
			clock := ""
			if m[4] >= 0 {
				clock = line[m[4]:m[5]]
			}
			date, hasTime, ok := p.buildDate(line[m[2]:m[3]], clock)
			if !ok {
				continue
			}
			fields = append(fields, ParsedDateField{
				Type:    t,
				Date:    date,
				Raw:     line[m[0]:m[1]],
				Start:   m[0],
				End:     m[1],
				Format:  FormatTasks,
				HasTime: hasTime,
			})
		}
	}
	return fields
}

// scanDataview finds [key:: value] and (key:: value) inline fields.
func (p *Parser) scanDataview(line string) []ParsedDateField {
	var fields []ParsedDateField
	fields = append(fields, p.scanInlineFields(line, '[', ']', FormatDataviewBracket)...)
	fields = append(fields, p.scanInlineFields(line, '(', ')', FormatDataviewParen)...)
	return fields
}

func (p *Parser) scanInlineFields(line string, open, close byte, format Format) []ParsedDateField {
	var fields []ParsedDateField
	pos := 0
	for pos < len(line) {
		rel := strings.IndexByte(line[pos:], open)
		if rel < 0 {
			break
		}
		start := pos + rel

		sep := findSeparator(line, start+1)
		if sep < 0 {
			break
		}
		keyRegion := line[start+1 : sep]
		if strings.ContainsAny(keyRegion, "[]()") {
			pos = start + 1
			continue
		}

		end := findClosing(line, sep+2, open, close)
		if end < 0 {
			pos = start + 1
			continue
		}
		// end is exclusive and includes the closing bracket.
		pos = end

		t, ok := LookupKey(keyRegion)
		if !ok {
			continue
		}
		value := strings.TrimSpace(line[sep+2 : end-1])
		date, hasTime, ok := p.parseInlineValue(value)
		if !ok {
			continue
		}
		fields = append(fields, ParsedDateField{
			Type:    t,
			Date:    date,
			Raw:     line[start:end],
			Start:   start,
			End:     end,
			Format:  format,
			HasTime: hasTime,
		})
	}
	return fields
}

// findSeparator returns the index of the first "::" at or after from that is
// not preceded by a backslash, or -1.
func findSeparator(line string, from int) int {
	for i := from; i+1 < len(line); i++ {
		if line[i] != ':' || line[i+1] != ':' {
			continue
		}
		if i > 0 && line[i-1] == '\\' {
			continue
		}
		return i
	}
	return -1
}

// findClosing scans from `from` for the bracket closing an already opened
// one. Nested pairs of the same family are balanced and a backslash escapes
// the character that follows it. Returns the exclusive end or -1.
func findClosing(line string, from int, open, close byte) int {
	depth := 1
	escaped := false
	for i := from; i < len(line); i++ {
		c := line[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}

func (p *Parser) parseInlineValue(value string) (time.Time, bool, bool) {
	if !p.g.datePrefix.MatchString(value) {
		return time.Time{}, false, false
	}
	for _, layout := range []string{DateTimeLayout, "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, value, p.loc); err == nil {
			return t, hasClock(t), true
		}
	}
	t, err := time.ParseInLocation(DateLayout, value[:len(DateLayout)], p.loc)
	if err != nil {
		return time.Time{}, false, false
	}
	return t, false, true
}

// scanSimple finds "@ YYYY-MM-DD". It always yields Due.
func (p *Parser) scanSimple(line string) []ParsedDateField {
	var fields []ParsedDateField
	for _, m := range p.g.simple.FindAllStringSubmatchIndex(line, -1) {
		date, _, ok := p.buildDate(line[m[2]:m[3]], "")
		if !ok {
			continue
		}
		fields = append(fields, ParsedDateField{
			Type:   TypeDue,
			Date:   date,
			Raw:    line[m[0]:m[1]],
			Start:  m[0],
			End:    m[1],
			Format: FormatSimple,
		})
	}
	return fields
}

// scanKanban finds "@{YYYY-MM-DD}" tokens. The first "@@{HH:mm}" on the line,
// if any, applies to every date token of that line.
func (p *Parser) scanKanban(line string) []ParsedDateField {
	clock := ""
	if m := p.g.kanbanClock.FindStringSubmatch(line); m != nil {
		clock = m[1]
	}
	var fields []ParsedDateField
	for _, m := range p.g.kanbanDate.FindAllStringSubmatchIndex(line, -1) {
		date, hasTime, ok := p.buildDate(line[m[2]:m[3]], clock)
		if !ok {
			continue
		}
		fields = append(fields, ParsedDateField{
			Type:    TypeDue,
			Date:    date,
			Raw:     line[m[0]:m[1]],
			Start:   m[0],
			End:     m[1],
			Format:  FormatKanban,
			HasTime: hasTime,
		})
	}
	return fields
}

// kanbanClockSpans returns the byte spans of every "@@{HH:mm}" token.
func (p *Parser) kanbanClockSpans(line string) [][]int {
	return p.g.kanbanClock.FindAllStringIndex(line, -1)
}

// buildDate parses a strict YYYY-MM-DD literal and optionally a H:mm clock.
func (p *Parser) buildDate(date, clock string) (time.Time, bool, bool) {
	d, err := time.ParseInLocation(DateLayout, date, p.loc)
	if err != nil {
		return time.Time{}, false, false
	}
	if clock == "" {
		return d, false, true
	}
	c, err := time.Parse("15:04", padClock(clock))
	if err != nil {
		return d, false, true
	}
	t := time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, p.loc)
	return t, hasClock(t), true
}

func padClock(clock string) string {
	if len(clock) == 4 {
		return "0" + clock
	}
	return clock
}

// hasClock is the time-present rule: exact midnight reads as no time.
func hasClock(t time.Time) bool {
	return t.Hour() != 0 || t.Minute() != 0
}
