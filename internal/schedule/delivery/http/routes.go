package http

import (
	"github.com/gin-gonic/gin"

	"markdown-task-calendar/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	lines := rg.Group("/lines", mw.RateLimit())
	{
		lines.POST("/parse", h.ParseLine)
		lines.POST("/format", h.FormatDate)
		lines.POST("/rebuild", h.RebuildLine)
	}

	events := rg.Group("/events", mw.RateLimit())
	{
		events.POST("/project", h.Project)
		events.POST("/move", h.Move)
		events.POST("/resize", h.Resize)
		events.POST("/create", h.Create)
		events.POST("/complete", h.Complete)
	}

	documents := rg.Group("/documents", mw.RateLimit())
	{
		documents.POST("/events", h.DocumentEvents)
		documents.POST("/publish", h.Publish)
	}
}
