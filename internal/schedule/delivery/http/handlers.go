package http

import (
	"github.com/gin-gonic/gin"

	"markdown-task-calendar/pkg/response"
)

// ParseLine godoc
// @Summary     Parse a task line
// @Description Extracts every recognized date field from one markdown line and picks the primary date.
// @Tags        Lines
// @Accept      json
// @Produce     json
// @Param       body body parseLineReq true "Line to parse"
// @Success     200  {object} parseLineResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lines/parse [POST]
func (h *handler) ParseLine(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processParseLineReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ParseLine(ctx, input)
	if err != nil {
		h.fail(c, "ParseLine", err)
		return
	}

	response.OK(c, h.newParseLineResp(output))
}

// FormatDate godoc
// @Summary     Format a date field
// @Description Renders one date field in the requested storage format.
// @Tags        Lines
// @Accept      json
// @Produce     json
// @Param       body body formatDateReq true "Field to format"
// @Success     200  {object} textResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lines/format [POST]
func (h *handler) FormatDate(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processFormatDateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	text, err := h.uc.FormatDate(ctx, input)
	if err != nil {
		h.fail(c, "FormatDate", err)
		return
	}

	response.OK(c, textResp{Text: text})
}

// RebuildLine godoc
// @Summary     Rewrite date fields of a line
// @Description Replaces the given date fields, keeping every other field in its original format.
// @Tags        Lines
// @Accept      json
// @Produce     json
// @Param       body body rebuildLineReq true "Line and updates"
// @Success     200  {object} lineResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lines/rebuild [POST]
func (h *handler) RebuildLine(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processRebuildLineReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	line, err := h.uc.RebuildLine(ctx, input)
	if err != nil {
		h.fail(c, "RebuildLine", err)
		return
	}

	response.OK(c, lineResp{Line: line})
}

// Project godoc
// @Summary     Project a task to an event
// @Description Computes the calendar event for one task line.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body projectReq true "Task location"
// @Success     200  {object} eventResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Not a task or no date"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/project [POST]
func (h *handler) Project(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processProjectReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	event, err := h.uc.Project(ctx, input)
	if err != nil {
		h.fail(c, "Project", err)
		return
	}

	response.OK(c, newEventResp(event))
}

// Move godoc
// @Summary     Move an event
// @Description Applies a drag-and-drop to the task line behind an event.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body rescheduleReq true "Task location and new start"
// @Success     200  {object} editResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Not a task or no date"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/move [POST]
func (h *handler) Move(c *gin.Context) {
	ctx := c.Request.Context()

	req, s, err := h.processRescheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Move(ctx, req.toMoveInput(s))
	if err != nil {
		h.fail(c, "Move", err)
		return
	}

	response.OK(c, h.newEditResp(output))
}

// Resize godoc
// @Summary     Resize an event
// @Description Applies a new start and end to the task line behind an event.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body rescheduleReq true "Task location and new range"
// @Success     200  {object} editResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Not a task or no date"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/resize [POST]
func (h *handler) Resize(c *gin.Context) {
	ctx := c.Request.Context()

	req, s, err := h.processRescheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Resize(ctx, req.toResizeInput(s))
	if err != nil {
		h.fail(c, "Resize", err)
		return
	}

	response.OK(c, h.newEditResp(output))
}

// Create godoc
// @Summary     Create a task from a selection
// @Description Builds a new task line for a range selected in the calendar view.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Title and selected range"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/create [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateFromSelection(ctx, input)
	if err != nil {
		h.fail(c, "CreateFromSelection", err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Complete godoc
// @Summary     Toggle task completion
// @Description Checks or unchecks a task, adding or removing its done date.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body completeReq true "Task location and state"
// @Success     200  {object} editResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Not a task"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCompleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Complete(ctx, input)
	if err != nil {
		h.fail(c, "Complete", err)
		return
	}

	response.OK(c, h.newEditResp(output))
}

// DocumentEvents godoc
// @Summary     Project a document
// @Description Returns the events of every dated task in a markdown document.
// @Tags        Documents
// @Accept      json
// @Produce     json
// @Param       body body documentReq true "Document"
// @Success     200  {object} documentEventsResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/documents/events [POST]
func (h *handler) DocumentEvents(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processDocumentReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProjectDocument(ctx, input)
	if err != nil {
		h.fail(c, "ProjectDocument", err)
		return
	}

	response.OK(c, h.newDocumentEventsResp(output))
}

// Publish godoc
// @Summary     Publish a document to Google Calendar
// @Description Upserts the document's events and deletes events of tasks that no longer exist.
// @Tags        Documents
// @Accept      json
// @Produce     json
// @Param       body body publishReq true "Document"
// @Success     200  {object} publishResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     503  {object} response.Resp "Calendar disabled"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/documents/publish [POST]
func (h *handler) Publish(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processPublishReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Publish(ctx, input)
	if err != nil {
		h.fail(c, "Publish", err)
		return
	}

	response.OK(c, h.newPublishResp(output))
}
