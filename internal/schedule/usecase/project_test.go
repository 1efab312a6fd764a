package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"markdown-task-calendar/internal/schedule"
)

func TestProject(t *testing.T) {
	uc := newTestUseCase(t, nil, Config{})

	tests := []struct {
		name      string
		line      string
		wantStart time.Time
		wantEnd   time.Time
		allDay    bool
		wantErr   error
	}{
		{
			name:      "Start and Due dates span all day",
			line:      "- [ ] Ship release 📅 2025-11-29 🛫 2025-11-20",
			wantStart: utc(2025, 11, 20, 0, 0),
			wantEnd:   utc(2025, 11, 29, 0, 0),
			allDay:    true,
		},
		{
			name:      "Timed Start with untimed Due ends at 23:59",
			line:      "- [ ] Conference 🛫 2025-11-20 09:00 📅 2025-11-22",
			wantStart: utc(2025, 11, 20, 9, 0),
			wantEnd:   utc(2025, 11, 22, 23, 59),
		},
		{
			name:      "Timed Due is used exactly",
			line:      "- [ ] Conference 🛫 2025-11-20 📅 2025-11-22 17:00",
			wantStart: utc(2025, 11, 20, 0, 0),
			wantEnd:   utc(2025, 11, 22, 17, 0),
		},
		{
			name:      "Timed Due alone lasts 30 minutes",
			line:      "- [ ] Call 📅 2025-11-29 14:30",
			wantStart: utc(2025, 11, 29, 14, 30),
			wantEnd:   utc(2025, 11, 29, 15, 0),
		},
		{
			name:      "Start alone is a single day",
			line:      "- [ ] Begin [start:: 2025-11-20]",
			wantStart: utc(2025, 11, 20, 0, 0),
			wantEnd:   utc(2025, 11, 20, 0, 0),
			allDay:    true,
		},
		{
			name:      "Start beats Scheduled for placement",
			line:      "- [ ] Begin ⏳ 2025-11-18 🛫 2025-11-20 08:00",
			wantStart: utc(2025, 11, 20, 8, 0),
			wantEnd:   utc(2025, 11, 20, 8, 30),
		},
		{
			name:      "Kanban with clock",
			line:      "- [ ] Standup @{2025-03-01} @@{09:00}",
			wantStart: utc(2025, 3, 1, 9, 0),
			wantEnd:   utc(2025, 3, 1, 9, 30),
		},
		{
			name:      "Timed Scheduled only",
			line:      "- [ ] Review ⏳ 2025-03-01 08:00",
			wantStart: utc(2025, 3, 1, 8, 0),
			wantEnd:   utc(2025, 3, 1, 8, 30),
		},
		{
			name:      "Simple date",
			line:      "- [ ] Pay rent @ 2025-03-01",
			wantStart: utc(2025, 3, 1, 0, 0),
			wantEnd:   utc(2025, 3, 1, 0, 0),
			allDay:    true,
		},
		{
			name:      "Midnight reads as no time",
			line:      "- [ ] Launch 📅 2025-03-01 00:00",
			wantStart: utc(2025, 3, 1, 0, 0),
			wantEnd:   utc(2025, 3, 1, 0, 0),
			allDay:    true,
		},
		{name: "Undated task", line: "- [ ] Someday", wantErr: schedule.ErrNoDate},
		{name: "Not a checkbox", line: "Notes 📅 2025-01-01", wantErr: schedule.ErrNotATask},
		{name: "Empty", line: "  ", wantErr: schedule.ErrEmptyLine},
		{name: "Due before Start", line: "- [ ] Backwards 🛫 2025-11-20 📅 2025-11-10", wantErr: schedule.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := uc.Project(context.Background(), schedule.ProjectInput{Target: schedule.Target{Line: tt.line}})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !ev.Start.Equal(tt.wantStart) || !ev.End.Equal(tt.wantEnd) || ev.AllDay != tt.allDay {
				t.Errorf("got %v..%v allDay=%v, want %v..%v allDay=%v", ev.Start, ev.End, ev.AllDay, tt.wantStart, tt.wantEnd, tt.allDay)
			}
		})
	}
}

func TestProject_EventIdentity(t *testing.T) {
	uc := newTestUseCase(t, nil, Config{})
	ctx := context.Background()

	in := schedule.ProjectInput{Target: schedule.Target{Path: "work.md", LineNumber: 3, Line: "- [x] Ship 📅 2025-11-01"}}
	a, err := uc.Project(ctx, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := uc.Project(ctx, in)
	if a.ID == "" || a.ID != b.ID {
		t.Errorf("expected a stable id, got %q and %q", a.ID, b.ID)
	}
	if len(a.ID) != 32 {
		t.Errorf("expected 32 hex chars, got %q", a.ID)
	}

	in.LineNumber = 4
	c, _ := uc.Project(ctx, in)
	if c.ID == a.ID {
		t.Errorf("expected a different id for another line")
	}

	if a.Title != "Ship" || !a.Completed || a.Line != 3 {
		t.Errorf("unexpected event: %+v", a)
	}
	if a.Color != "#999999" {
		t.Errorf("expected completed color, got %q", a.Color)
	}
	if uc.cache.Len() != 1 {
		t.Errorf("expected one cached line, got %d", uc.cache.Len())
	}
}

func TestProjectDocument(t *testing.T) {
	uc := newTestUseCase(t, nil, Config{})

	content := "# Work\n" +
		"- [ ] Ship 📅 2025-11-29\n" +
		"- [ ] Late 📅 2025-11-01\n" +
		"- [ ] Someday\n" +
		"## Home\n" +
		"- [x] Groceries [due:: 2025-11-04]\n" +
		"```\n" +
		"- [ ] Example 📅 2025-11-29\n" +
		"```"

	out, err := uc.ProjectDocument(context.Background(), schedule.ProjectDocumentInput{Path: "todo.md", Content: content, Dark: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Events) != 3 || out.Undated != 1 {
		t.Fatalf("expected 3 events and 1 undated task, got %d and %d", len(out.Events), out.Undated)
	}
	if out.Stats.Total != 4 || out.Stats.Completed != 1 {
		t.Errorf("unexpected stats: %+v", out.Stats)
	}

	want := []struct {
		title   string
		section string
		color   string
	}{
		{"Ship", "Work", "#8888ff"},
		{"Late", "Work", "#ff0000"},
		{"Groceries", "Home", "#999999"},
	}
	for i, w := range want {
		ev := out.Events[i]
		if ev.Title != w.title || ev.Section != w.section || ev.Color != w.color {
			t.Errorf("event %d: got %q/%q/%q, want %q/%q/%q", i, ev.Title, ev.Section, ev.Color, w.title, w.section, w.color)
		}
	}
}
