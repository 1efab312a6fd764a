package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"markdown-task-calendar/config"
	_ "markdown-task-calendar/docs" // Swagger docs
	"markdown-task-calendar/internal/httpserver"
	"markdown-task-calendar/internal/middleware"
	"markdown-task-calendar/pkg/log"
)

// @title       Markdown Task Calendar API
// @description Parses dated markdown tasks, projects them onto calendar events and writes calendar edits back to task lines.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Markdown Task Calendar...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Schedule domain
	deps, err := newScheduleDeps(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize schedule domain: ", err)
		return
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ScheduleUseCase: deps.useCase,
		Calendar:        deps.calendar,
		Middleware: middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
