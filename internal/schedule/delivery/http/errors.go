package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"markdown-task-calendar/internal/schedule"
	"markdown-task-calendar/pkg/response"
)

var (
	errWrongBody = response.NewHTTPError(http.StatusBadRequest, "wrong body")
	errWrongDate = response.NewHTTPError(http.StatusBadRequest, "invalid date: expected YYYY-MM-DD or YYYY-MM-DDTHH:mm")
)

// mapError translates use-case errors into HTTP errors. It returns nil for
// errors the domain does not know about.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrEmptyLine),
		errors.Is(err, schedule.ErrInvalidRange),
		errors.Is(err, schedule.ErrInvalidFormat),
		errors.Is(err, schedule.ErrInvalidGrammar),
		errors.Is(err, schedule.ErrInvalidType),
		errors.Is(err, schedule.ErrUnsupportedType),
		errors.Is(err, schedule.ErrEmptyTitle),
		errors.Is(err, schedule.ErrEmptyPath),
		errors.Is(err, schedule.ErrLineOutOfRange):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, schedule.ErrNotATask),
		errors.Is(err, schedule.ErrNoDate):
		return response.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, schedule.ErrCalendarDisabled):
		return response.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	return nil
}

// fail writes a use-case error, hiding unknown ones behind a 500.
func (h *handler) fail(c *gin.Context, op string, err error) {
	h.l.Errorf(c.Request.Context(), "schedule.http.%s: %v", op, err)
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped, nil)
		return
	}
	response.InternalError(c, err)
}
