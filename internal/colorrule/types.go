package colorrule

// ConditionType is the test a rule applies to a task.
type ConditionType string

const (
	ConditionOverdue       ConditionType = "overdue"
	ConditionCompleted     ConditionType = "completed"
	ConditionHasTag        ConditionType = "has-tag"
	ConditionTitleContains ConditionType = "title-contains"
	ConditionSectionIs     ConditionType = "section-is"
	ConditionHasDue        ConditionType = "has-due"
	ConditionAlways        ConditionType = "always"
)

// ColorTheme is a color for light and dark backgrounds.
type ColorTheme struct {
	Light string
	Dark  string
}

// Pick returns the color for the active background. An empty dark color falls
// back to the light one.
func (c ColorTheme) Pick(dark bool) string {
	if dark && c.Dark != "" {
		return c.Dark
	}
	return c.Light
}

// IsZero reports whether no color is set.
func (c ColorTheme) IsZero() bool {
	return c.Light == "" && c.Dark == ""
}

// ColorRule colors tasks matching Condition. Files, when non-empty, limits
// the rule to those paths; an entry ending in "/" matches a folder.
type ColorRule struct {
	Enabled   bool
	Condition ConditionType
	Param     string
	Color     ColorTheme
	Files     []string
}

// ColorSettings is the full color configuration.
type ColorSettings struct {
	Rules    []ColorRule
	Sections map[string]ColorTheme // keyed by heading text
	Files    map[string]ColorTheme // keyed by file path
	Default  ColorTheme
}
