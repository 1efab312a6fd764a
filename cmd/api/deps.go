package main

import (
	"context"
	"fmt"

	"markdown-task-calendar/config"
	"markdown-task-calendar/internal/checklist"
	"markdown-task-calendar/internal/colorrule"
	"markdown-task-calendar/internal/schedule"
	"markdown-task-calendar/internal/schedule/usecase"
	"markdown-task-calendar/pkg/dateparser"
	"markdown-task-calendar/pkg/datemath"
	"markdown-task-calendar/pkg/gcalendar"
	"markdown-task-calendar/pkg/log"
)

type scheduleDeps struct {
	useCase  schedule.UseCase
	calendar *datemath.Calendar
}

// newScheduleDeps builds the schedule use case. Google Calendar is optional.
func newScheduleDeps(ctx context.Context, logger log.Logger, cfg *config.Config) (scheduleDeps, error) {
	calendar, err := datemath.New(cfg.Parser.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Parser.Timezone, err)
		calendar, _ = datemath.New("UTC")
	}
	parser := dateparser.NewParserIn(calendar.Location())

	colors, err := colorrule.New(cfg.Colors)
	if err != nil {
		return scheduleDeps{}, fmt.Errorf("colors: %w", err)
	}

	// A nil *gcalendar.Client must not reach the interface.
	var publisher schedule.Publisher
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, cerr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if cerr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", cerr)
			logger.Warn(ctx, "Run `go run ./scripts/gcal-auth` to generate a token")
		} else {
			publisher = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	uc := usecase.New(
		logger,
		parser,
		calendar,
		checklist.New(parser, cfg.Parser.Priority, cfg.Parser.Grammar),
		colors,
		publisher,
		usecase.Config{
			Priority:      cfg.Parser.Priority,
			Grammar:       cfg.Parser.Grammar,
			DefaultFormat: cfg.Schedule.DefaultFormat,
			CalendarID:    cfg.GoogleCalendar.CalendarID,
			CacheSize:     cfg.Schedule.CacheSize,
			CacheTTL:      cfg.Schedule.CacheTTL,
		},
	)

	return scheduleDeps{useCase: uc, calendar: calendar}, nil
}
