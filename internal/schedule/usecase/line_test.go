package usecase

import (
	"context"
	"errors"
	"testing"

	"markdown-task-calendar/internal/schedule"
	"markdown-task-calendar/pkg/dateparser"
)

func TestParseLine(t *testing.T) {
	uc := newTestUseCase(t, nil, Config{Priority: []dateparser.DateFieldType{dateparser.TypeStart}})
	ctx := context.Background()

	out, err := uc.ParseLine(ctx, schedule.ParseLineInput{Line: "- [ ] Ship release 📅 2025-11-29 🛫 2025-11-20"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Fields) != 2 || !out.HasPrimary || out.Primary.Type != dateparser.TypeStart {
		t.Errorf("expected configured priority to pick Start, got %+v", out)
	}
	if out.Title != "- [ ] Ship release" {
		t.Errorf("unexpected title %q", out.Title)
	}

	out, _ = uc.ParseLine(ctx, schedule.ParseLineInput{
		Line:     "Task [due:: 2025-01-15] [start:: 2025-01-10] 📅 2025-02-01",
		Grammar:  dateparser.GrammarDataview,
		Priority: []dateparser.DateFieldType{},
	})
	if len(out.Fields) != 2 || out.Primary.Type != dateparser.TypeDue {
		t.Errorf("expected dataview only and first field as primary, got %+v", out)
	}

	if _, err := uc.ParseLine(ctx, schedule.ParseLineInput{Line: "x", Grammar: "org"}); !errors.Is(err, schedule.ErrInvalidGrammar) {
		t.Errorf("expected ErrInvalidGrammar, got %v", err)
	}
	if _, err := uc.ParseLine(ctx, schedule.ParseLineInput{}); !errors.Is(err, schedule.ErrEmptyLine) {
		t.Errorf("expected ErrEmptyLine, got %v", err)
	}
}

func TestParseLine_EmptyGrammarUsesConfigured(t *testing.T) {
	uc := newTestUseCase(t, nil, Config{Grammar: dateparser.GrammarKanban})
	line := "- [ ] Card @{2025-03-01} 📅 2025-03-05"

	out, err := uc.ParseLine(context.Background(), schedule.ParseLineInput{Line: line})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Fields) != 1 || out.Primary.Format != dateparser.FormatKanban {
		t.Errorf("expected only the kanban date, got %+v", out.Fields)
	}
	if out.Title != "- [ ] Card 📅 2025-03-05" {
		t.Errorf("unexpected title %q", out.Title)
	}

	// Same line through task parsing sees the same fields.
	tasks := uc.checklist.ParseTasks(line)
	if len(tasks) != 1 || len(tasks[0].Dates) != 1 || tasks[0].Dates[0].Raw != out.Fields[0].Raw {
		t.Errorf("ParseLine and task parsing disagree: %+v", tasks)
	}
}

func TestFormatDate(t *testing.T) {
	uc := newTestUseCase(t, nil, Config{})
	ctx := context.Background()

	tests := []struct {
		name    string
		input   schedule.FormatDateInput
		want    string
		wantErr error
	}{
		{
			name:  "Kanban with time",
			input: schedule.FormatDateInput{Type: dateparser.TypeDue, Date: utc(2025, 3, 1, 9, 0), Format: dateparser.FormatKanban, IncludeTime: true},
			want:  "@{2025-03-01} @@{09:00}",
		},
		{
			name:  "Dataview paren",
			input: schedule.FormatDateInput{Type: dateparser.TypeScheduled, Date: utc(2025, 3, 1, 0, 0), Format: dateparser.FormatDataviewParen},
			want:  "(scheduled:: 2025-03-01)",
		},
		{
			name:    "Simple has no Start",
			input:   schedule.FormatDateInput{Type: dateparser.TypeStart, Date: utc(2025, 3, 1, 0, 0), Format: dateparser.FormatSimple},
			wantErr: schedule.ErrUnsupportedType,
		},
		{
			name:    "Unknown format",
			input:   schedule.FormatDateInput{Type: dateparser.TypeDue, Format: "org"},
			wantErr: schedule.ErrInvalidFormat,
		},
		{
			name:    "Unknown type",
			input:   schedule.FormatDateInput{Type: "deadline", Format: dateparser.FormatTasks},
			wantErr: schedule.ErrInvalidType,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.FormatDate(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("FormatDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRebuildLine(t *testing.T) {
	uc := newTestUseCase(t, nil, Config{})
	ctx := context.Background()

	got, err := uc.RebuildLine(ctx, schedule.RebuildLineInput{
		Line: "- [ ] Ship 📅 2025-11-29 🛫 2025-11-20",
		Updates: map[dateparser.DateFieldType]string{
			dateparser.TypeDue:   "📅 2025-12-01",
			dateparser.TypeStart: "🛫 2025-11-20",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "- [ ] Ship 🛫 2025-11-20 📅 2025-12-01" {
		t.Errorf("RebuildLine() = %q", got)
	}

	_, err = uc.RebuildLine(ctx, schedule.RebuildLineInput{Line: "x", Updates: map[dateparser.DateFieldType]string{"deadline": "x"}})
	if !errors.Is(err, schedule.ErrInvalidType) {
		t.Errorf("expected ErrInvalidType, got %v", err)
	}
}
