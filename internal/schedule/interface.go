package schedule

import (
	"context"

	"markdown-task-calendar/internal/model"
	"markdown-task-calendar/pkg/gcalendar"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Line tools
	ParseLine(ctx context.Context, input ParseLineInput) (ParseLineOutput, error)
	FormatDate(ctx context.Context, input FormatDateInput) (string, error)
	RebuildLine(ctx context.Context, input RebuildLineInput) (string, error)

	// Projection
	Project(ctx context.Context, input ProjectInput) (model.Event, error)
	ProjectDocument(ctx context.Context, input ProjectDocumentInput) (ProjectDocumentOutput, error)

	// Edits coming back from the calendar view
	Move(ctx context.Context, input MoveInput) (EditOutput, error)
	Resize(ctx context.Context, input ResizeInput) (EditOutput, error)
	CreateFromSelection(ctx context.Context, input CreateInput) (CreateOutput, error)
	Complete(ctx context.Context, input CompleteInput) (EditOutput, error)

	// Google Calendar
	Publish(ctx context.Context, input PublishInput) (PublishOutput, error)
}

// Publisher pushes events to an external calendar. *gcalendar.Client implements it.
type Publisher interface {
	UpsertEvent(ctx context.Context, req gcalendar.UpsertEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, id string) error
}
