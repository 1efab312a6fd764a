package usecase

import (
	"context"
	"strings"
	"time"

	"markdown-task-calendar/internal/schedule"
	"markdown-task-calendar/pkg/gcalendar"
)

// Publish mirrors the dated tasks of a document into Google Calendar. Events
// are upserted by their stable id; events previously published from the same
// file that no longer match a task are deleted.
func (uc *implUseCase) Publish(ctx context.Context, input schedule.PublishInput) (schedule.PublishOutput, error) {
	if uc.publisher == nil {
		return schedule.PublishOutput{}, schedule.ErrCalendarDisabled
	}
	if strings.TrimSpace(input.Path) == "" {
		return schedule.PublishOutput{}, schedule.ErrEmptyPath
	}

	doc, err := uc.ProjectDocument(ctx, schedule.ProjectDocumentInput{Path: input.Path, Content: input.Content})
	if err != nil {
		return schedule.PublishOutput{}, err
	}

	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = uc.cfg.CalendarID
	}
	timezone := uc.calendar.Location().String()
	if timezone == time.Local.String() {
		timezone = ""
	}

	out := schedule.PublishOutput{Undated: doc.Undated}
	keep := make(map[string]bool, len(doc.Events))
	for _, ev := range doc.Events {
		keep[ev.ID] = true

		summary := ev.Title
		if ev.Completed {
			summary = "✓ " + summary
		}
		_, err := uc.publisher.UpsertEvent(ctx, gcalendar.UpsertEventRequest{
			CalendarID:  calendarID,
			ID:          ev.ID,
			Summary:     summary,
			Description: describe(input.Path, ev.Section, ev.RawLine),
			Start:       ev.Start,
			End:         ev.End,
			AllDay:      ev.AllDay,
			Timezone:    timezone,
			ColorID:     gcalendar.ColorIDFor(ev.Color),
			Source:      input.Path,
		})
		if err != nil {
			uc.l.Errorf(ctx, "schedule.Publish: line %d of %s: %v", ev.Line, input.Path, err)
			out.Failed++
			continue
		}
		out.Published++
	}

	existing, err := uc.publisher.ListEvents(ctx, gcalendar.ListEventsRequest{CalendarID: calendarID, Source: input.Path})
	if err != nil {
		uc.l.Warnf(ctx, "schedule.Publish: skipping cleanup of %s: %v", input.Path, err)
		return out, nil
	}
	for _, ev := range existing {
		if keep[ev.ID] {
			continue
		}
		if err := uc.publisher.DeleteEvent(ctx, calendarID, ev.ID); err != nil {
			uc.l.Warnf(ctx, "schedule.Publish: delete %s: %v", ev.ID, err)
			continue
		}
		out.Deleted++
	}

	uc.l.Infof(ctx, "schedule.Publish: %s: published=%d failed=%d deleted=%d", input.Path, out.Published, out.Failed, out.Deleted)
	return out, nil
}

func describe(path, section, rawLine string) string {
	var b strings.Builder
	b.WriteString(path)
	if section != "" {
		b.WriteString(" > ")
		b.WriteString(section)
	}
	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(rawLine))
	return b.String()
}
