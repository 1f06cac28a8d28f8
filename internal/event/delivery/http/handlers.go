package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zenned/internal/event"
	"zenned/pkg/response"
)

// List godoc
// @Summary     List events
// @Description Returns the caller's events ordered by date, start time and id.
// @Tags        Events
// @Produce     json
// @Security    BearerAuth
// @Param       from query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param       to   query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create an event
// @Description Stores an event, or a note when note_only is set. An empty title falls back to the description.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Event"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Update godoc
// @Summary     Update an event
// @Description Patches start_time, end_time or completed. A null time clears it.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path int       true "Event ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} successResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Update(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, successResp{Success: true})
}

// Delete godoc
// @Summary     Delete an event
// @Tags        Events
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Event ID"
// @Success     200 {object} successResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := h.userID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	id, err := h.eventID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, event.DeleteInput{UserID: userID, ID: id}); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, successResp{Success: true})
}

// Export godoc
// @Summary     Export events as iCalendar
// @Description Dated events only. Timed events carry the server timezone; others are all-day.
// @Tags        Events
// @Produce     text/calendar
// @Security    BearerAuth
// @Param       from query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param       to   query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success     200 {string} string "VCALENDAR document"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/events/export.ics [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Export(ctx, req.toExportInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", output.Content)
}
