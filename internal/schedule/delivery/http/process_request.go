package http

import (
	"github.com/gin-gonic/gin"

	"markdown-task-calendar/internal/schedule"
)

func (h *handler) processParseLineReq(c *gin.Context) (schedule.ParseLineInput, error) {
	var req parseLineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return schedule.ParseLineInput{}, errWrongBody
	}
	return req.toInput()
}

func (h *handler) processFormatDateReq(c *gin.Context) (schedule.FormatDateInput, error) {
	var req formatDateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return schedule.FormatDateInput{}, errWrongBody
	}
	date, _, err := h.calendar.ParseInput(req.Date)
	if err != nil {
		return schedule.FormatDateInput{}, errWrongDate
	}
	return req.toInput(date), nil
}

func (h *handler) processRebuildLineReq(c *gin.Context) (schedule.RebuildLineInput, error) {
	var req rebuildLineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return schedule.RebuildLineInput{}, errWrongBody
	}
	return req.toInput(), nil
}

func (h *handler) processProjectReq(c *gin.Context) (schedule.ProjectInput, error) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return schedule.ProjectInput{}, errWrongBody
	}
	if err := req.validate(); err != nil {
		return schedule.ProjectInput{}, err
	}
	return req.toInput(), nil
}

func (h *handler) processRescheduleReq(c *gin.Context) (rescheduleReq, span, error) {
	var req rescheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, span{}, errWrongBody
	}
	if err := req.validate(); err != nil {
		return req, span{}, err
	}
	s, err := h.parseSpan(req.Start, req.End, req.AllDay)
	return req, s, err
}

func (h *handler) processCreateReq(c *gin.Context) (schedule.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return schedule.CreateInput{}, errWrongBody
	}
	s, err := h.parseSpan(req.Start, req.End, req.AllDay)
	if err != nil {
		return schedule.CreateInput{}, err
	}
	return req.toInput(s), nil
}

func (h *handler) processCompleteReq(c *gin.Context) (schedule.CompleteInput, error) {
	var req completeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return schedule.CompleteInput{}, errWrongBody
	}
	if err := req.validate(); err != nil {
		return schedule.CompleteInput{}, err
	}
	return req.toInput(), nil
}

func (h *handler) processDocumentReq(c *gin.Context) (schedule.ProjectDocumentInput, error) {
	var req documentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return schedule.ProjectDocumentInput{}, errWrongBody
	}
	return req.toInput(), nil
}

func (h *handler) processPublishReq(c *gin.Context) (schedule.PublishInput, error) {
	var req publishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return schedule.PublishInput{}, errWrongBody
	}
	return req.toInput(), nil
}

// parseSpan parses view coordinates. Without an explicit all_day flag a
// start without a clock is an all-day coordinate.
func (h *handler) parseSpan(start, end string, allDay *bool) (span, error) {
	s, hasTime, err := h.calendar.ParseInput(start)
	if err != nil {
		return span{}, errWrongDate
	}
	out := span{start: s, allDay: !hasTime}
	if end != "" {
		if out.end, _, err = h.calendar.ParseInput(end); err != nil {
			return span{}, errWrongDate
		}
	}
	if allDay != nil {
		out.allDay = *allDay
	}
	return out, nil
}
