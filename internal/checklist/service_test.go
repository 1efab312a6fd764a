package checklist_test

import (
	"context"
	"errors"
	"testing"

	"markdown-task-calendar/internal/checklist"
	"markdown-task-calendar/pkg/dateparser"
)

const doc = "# Inbox\n" +
	"- [ ] Ship release 📅 2025-11-29 🛫 2025-11-20\n" +
	"- [x] Write notes [due:: 2025-11-01]\n" +
	"\n" +
	"## Later\n" +
	"* [ ] Undated idea\n" +
	"```\n" +
	"- [ ] fake task in code 📅 2025-01-01\n" +
	"```\n" +
	"  + [X] Nested @{2025-03-01} @@{09:00}\n" +
	"Plain paragraph 📅 2025-01-01"

func newService(t *testing.T) checklist.Service {
	t.Helper()
	p, err := dateparser.NewParser("UTC")
	if err != nil {
		t.Fatalf("unexpected error creating parser: %v", err)
	}
	return checklist.New(p, nil, dateparser.GrammarAll)
}

func TestParseTasks(t *testing.T) {
	svc := newService(t)
	tasks := svc.ParseTasks(doc)

	if len(tasks) != 4 {
		t.Fatalf("expected 4 tasks, got %d: %#v", len(tasks), tasks)
	}

	tests := []struct {
		line    int
		title   string
		section string
		checked bool
		primary dateparser.DateFieldType
		dates   int
	}{
		{1, "Ship release", "Inbox", false, dateparser.TypeDue, 2},
		{2, "Write notes", "Inbox", true, dateparser.TypeDue, 1},
		{5, "Undated idea", "Later", false, "", 0},
		{9, "Nested", "Later", true, dateparser.TypeDue, 1},
	}
	for i, tt := range tests {
		got := tasks[i]
		if got.Line != tt.line || got.Title != tt.title || got.Section != tt.section || got.Checked != tt.checked {
			t.Errorf("task %d: got line=%d title=%q section=%q checked=%v", i, got.Line, got.Title, got.Section, got.Checked)
		}
		if len(got.Dates) != tt.dates {
			t.Errorf("task %d: expected %d dates, got %d", i, tt.dates, len(got.Dates))
		}
		if tt.primary == "" {
			if got.HasPrimary {
				t.Errorf("task %d: expected no primary date", i)
			}
			continue
		}
		if !got.HasPrimary || got.Primary.Type != tt.primary {
			t.Errorf("task %d: unexpected primary %#v", i, got.Primary)
		}
	}

	if !tasks[3].IsKanban() || tasks[3].Indent != "  " || tasks[3].Marker != "+" {
		t.Errorf("unexpected nested kanban task: %#v", tasks[3])
	}
}

func TestGetStats(t *testing.T) {
	svc := newService(t)
	stats := svc.GetStats(doc)

	if stats.Total != 4 || stats.Completed != 2 || stats.Pending != 2 || stats.Dated != 3 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.Progress != 50 {
		t.Errorf("expected 50%% progress, got %v", stats.Progress)
	}

	if empty := svc.GetStats("no tasks"); empty.Total != 0 {
		t.Errorf("expected empty stats, got %+v", empty)
	}
}

func TestSetChecked(t *testing.T) {
	svc := newService(t)

	got, ok := svc.SetChecked("  - [ ] Task 📅 2025-01-01", true)
	if !ok || got != "  - [x] Task 📅 2025-01-01" {
		t.Errorf("SetChecked(true) = %q, %v", got, ok)
	}

	got, ok = svc.SetChecked("- [X] Task", false)
	if !ok || got != "- [ ] Task" {
		t.Errorf("SetChecked(false) = %q, %v", got, ok)
	}

	if _, ok := svc.SetChecked("Plain text", true); ok {
		t.Errorf("expected plain text to be rejected")
	}
}

func TestUpdateCheckbox(t *testing.T) {
	svc := newService(t)

	out, err := svc.UpdateCheckbox(context.Background(), checklist.UpdateCheckboxInput{
		Content:    doc,
		LineNumber: 1,
		Checked:    true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Updated || out.Line != "- [x] Ship release 📅 2025-11-29 🛫 2025-11-20" {
		t.Errorf("unexpected output: %+v", out)
	}

	_, err = svc.UpdateCheckbox(context.Background(), checklist.UpdateCheckboxInput{Content: doc, LineNumber: 0, Checked: true})
	if !errors.Is(err, checklist.ErrNotACheckbox) {
		t.Errorf("expected ErrNotACheckbox, got %v", err)
	}

	_, err = svc.UpdateCheckbox(context.Background(), checklist.UpdateCheckboxInput{Content: doc, LineNumber: 99})
	if !errors.Is(err, checklist.ErrLineOutOfRange) {
		t.Errorf("expected ErrLineOutOfRange, got %v", err)
	}
}

func TestUpdateAllCheckboxes(t *testing.T) {
	svc := newService(t)

	all := svc.UpdateAllCheckboxes(doc, true)
	if !svc.IsFullyCompleted(all) {
		t.Errorf("expected every task to be completed")
	}
	if svc.IsFullyCompleted(doc) {
		t.Errorf("original document is not completed")
	}
	if svc.IsFullyCompleted("no tasks here") {
		t.Errorf("a document without checkboxes is not a completed checklist")
	}
}

func TestReplaceLine(t *testing.T) {
	svc := newService(t)

	got, err := svc.ReplaceLine("a\nb\nc", 1, "B")
	if err != nil || got != "a\nB\nc" {
		t.Errorf("ReplaceLine() = %q, %v", got, err)
	}
	if _, err := svc.ReplaceLine("a", 3, "x"); !errors.Is(err, checklist.ErrLineOutOfRange) {
		t.Errorf("expected ErrLineOutOfRange, got %v", err)
	}
}
