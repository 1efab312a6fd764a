package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"markdown-task-calendar/internal/checklist"
	"markdown-task-calendar/internal/colorrule"
	"markdown-task-calendar/pkg/dateparser"
	"markdown-task-calendar/pkg/datemath"
	"markdown-task-calendar/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Fake Google Calendar for testing
type fakePublisher struct {
	upserts  []gcalendar.UpsertEventRequest
	deleted  []string
	existing []gcalendar.Event
	failIDs  map[string]bool
	listErr  error
}

func (f *fakePublisher) UpsertEvent(ctx context.Context, req gcalendar.UpsertEventRequest) (*gcalendar.Event, error) {
	if f.failIDs[req.ID] {
		return nil, errors.New("backend unavailable")
	}
	f.upserts = append(f.upserts, req)
	return &gcalendar.Event{ID: req.ID, Summary: req.Summary}, nil
}

func (f *fakePublisher) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return f.existing, f.listErr
}

func (f *fakePublisher) DeleteEvent(ctx context.Context, calendarID, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func utc(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

var fixedNow = utc(2025, 11, 5, 8, 0)

func newTestUseCase(t *testing.T, publisher *fakePublisher, cfg Config) *implUseCase {
	t.Helper()

	parser, err := dateparser.NewParser("UTC")
	if err != nil {
		t.Fatalf("unexpected error creating parser: %v", err)
	}
	cal, err := datemath.New("UTC")
	if err != nil {
		t.Fatalf("unexpected error creating calendar: %v", err)
	}
	colors, err := colorrule.New(colorrule.ColorSettings{
		Rules: []colorrule.ColorRule{
			{Enabled: true, Condition: colorrule.ConditionCompleted, Color: colorrule.ColorTheme{Light: "#999999"}},
			{Enabled: true, Condition: colorrule.ConditionOverdue, Color: colorrule.ColorTheme{Light: "#ff0000"}},
		},
		Sections: map[string]colorrule.ColorTheme{"Work": {Light: "#0000ff", Dark: "#8888ff"}},
		Default:  colorrule.ColorTheme{Light: "#333333"},
	})
	if err != nil {
		t.Fatalf("unexpected error creating colors: %v", err)
	}

	uc := New(&mockLogger{}, parser, cal, checklist.New(parser, cfg.Priority, cfg.Grammar), colors, nil, cfg)
	if publisher != nil {
		uc.publisher = publisher
	}
	uc.now = func() time.Time { return fixedNow }
	return uc
}
