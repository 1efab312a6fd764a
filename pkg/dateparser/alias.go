package dateparser

import (
	"fmt"
	"strings"
)

// LookupKey maps an inline-field key such as "Due Date" to its type.
// Matching ignores case and repeated inner whitespace.
func LookupKey(key string) (DateFieldType, bool) {
	t, ok := keyAliases[normalizeKey(key)]
	return t, ok
}

// ParseType parses a type name. Any recognized key alias is accepted.
func ParseType(name string) (DateFieldType, error) {
	if t, ok := LookupKey(name); ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown date field type %q", name)
}

// ParsePriority parses a list of type names into a priority order.
// Duplicates are dropped, keeping the first occurrence.
func ParsePriority(names []string) ([]DateFieldType, error) {
	out := make([]DateFieldType, 0, len(names))
	seen := make(map[DateFieldType]bool, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		t, err := ParseType(name)
		if err != nil {
			return nil, err
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out, nil
}

// IsValidType reports whether t is one of the six known field types.
func IsValidType(t DateFieldType) bool {
	_, ok := typeSymbols[t]
	return ok
}

// Symbol returns the emoji written for t in the tasks format.
func Symbol(t DateFieldType) string {
	symbols := typeSymbols[t]
	if len(symbols) == 0 {
		return ""
	}
	return symbols[0]
}

func normalizeKey(key string) string {
	return strings.Join(strings.Fields(strings.ToLower(key)), " ")
}
