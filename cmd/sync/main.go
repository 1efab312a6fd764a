package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

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

// main publishes markdown files to Google Calendar once and exits.
// Files come from the command line or sync.files.
//
// Pattern:
//  1. Initialize config and logger (same as cmd/api/main.go)
//  2. Create the Google Calendar client and the schedule UseCase
//  3. Publish every file, stop early on SIGINT/SIGTERM
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	files := os.Args[1:]
	if len(files) == 0 {
		files = cfg.Sync.Files
	}
	if len(files) == 0 {
		logger.Error(ctx, "No files to publish: pass paths as arguments or set sync.files")
		os.Exit(1)
	}

	if cfg.GoogleCalendar.CredentialsPath == "" {
		logger.Error(ctx, "google_calendar.credentials_path is required")
		os.Exit(1)
	}
	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Google Calendar: %v", err)
		os.Exit(1)
	}

	calendar, err := datemath.New(cfg.Parser.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone %q: %v", cfg.Parser.Timezone, err)
		os.Exit(1)
	}
	parser := dateparser.NewParserIn(calendar.Location())
	colors, err := colorrule.New(cfg.Colors)
	if err != nil {
		logger.Errorf(ctx, "Invalid colors: %v", err)
		os.Exit(1)
	}

	uc := usecase.New(
		logger,
		parser,
		calendar,
		checklist.New(parser, cfg.Parser.Priority, cfg.Parser.Grammar),
		colors,
		client,
		usecase.Config{
			Priority:   cfg.Parser.Priority,
			Grammar:    cfg.Parser.Grammar,
			CalendarID: cfg.GoogleCalendar.CalendarID,
		},
	)

	failed := 0
	for _, path := range files {
		if ctx.Err() != nil {
			logger.Warn(ctx, "Interrupted, stopping")
			break
		}
		if err := publishFile(ctx, logger, uc, path); err != nil {
			logger.Errorf(ctx, "%s: %v", path, err)
			failed++
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func publishFile(ctx context.Context, logger log.Logger, uc schedule.UseCase, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	out, err := uc.Publish(ctx, schedule.PublishInput{Path: path, Content: string(content)})
	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	logger.Infof(ctx, "%s: published=%d failed=%d deleted=%d undated=%d",
		path, out.Published, out.Failed, out.Deleted, out.Undated)
	if out.Failed > 0 {
		return fmt.Errorf("%d events failed", out.Failed)
	}
	return nil
}
