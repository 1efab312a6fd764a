package checklist

// ChecklistStats represents checklist progress
type ChecklistStats struct {
	Total     int     // Total checkboxes
	Completed int     // Checked checkboxes
	Pending   int     // Unchecked checkboxes
	Dated     int     // Checkboxes carrying at least one date field
	Progress  float64 // Completion percentage (0-100)
}

// UpdateCheckboxInput is input for updating a checkbox
type UpdateCheckboxInput struct {
	Content    string // Original markdown content
	LineNumber int    // 0-based line of the checkbox
	Checked    bool   // New checked state
}

// UpdateCheckboxOutput is result of checkbox update
type UpdateCheckboxOutput struct {
	Content string // Updated markdown content
	Line    string // The rewritten line
	Updated bool   // Whether the line changed
}
