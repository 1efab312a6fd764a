package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"markdown-task-calendar/internal/middleware"
	scheduleHTTP "markdown-task-calendar/internal/schedule/delivery/http"
)

// setupScheduleDomain registers the schedule routes under /api/v1.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase in cmd and pass it through Config
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, ...)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(rg, h, mw)
func (srv HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := scheduleHTTP.New(srv.l, srv.scheduleUC, srv.calendar)

	// Registers /api/v1/lines, /api/v1/events and /api/v1/documents
	scheduleHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Schedule domain registered")
}
