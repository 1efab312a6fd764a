package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"markdown-task-calendar/internal/middleware"
	"markdown-task-calendar/internal/schedule"
	"markdown-task-calendar/pkg/datemath"
	"markdown-task-calendar/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Schedule domain
	scheduleUC schedule.UseCase
	calendar   *datemath.Calendar
	middleware middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Schedule domain
	ScheduleUseCase schedule.UseCase
	Calendar        *datemath.Calendar
	Middleware      middleware.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		scheduleUC:  cfg.ScheduleUseCase,
		calendar:    cfg.Calendar,
		middleware:  cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.scheduleUC == nil {
		return errors.New("schedule use case is required")
	}
	if srv.calendar == nil {
		return errors.New("calendar is required")
	}
	return nil
}
