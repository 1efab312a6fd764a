package http

import (
	"github.com/gin-gonic/gin"

	"markdown-task-calendar/internal/schedule"
	"markdown-task-calendar/pkg/datemath"
	"markdown-task-calendar/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	ParseLine(c *gin.Context)
	FormatDate(c *gin.Context)
	RebuildLine(c *gin.Context)
	Project(c *gin.Context)
	Move(c *gin.Context)
	Resize(c *gin.Context)
	Create(c *gin.Context)
	Complete(c *gin.Context)
	DocumentEvents(c *gin.Context)
	Publish(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       schedule.UseCase
	calendar *datemath.Calendar
}

// New creates a new HTTP handler for the schedule domain. calendar parses
// the dates sent by clients.
func New(l log.Logger, uc schedule.UseCase, calendar *datemath.Calendar) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		calendar: calendar,
	}
}
