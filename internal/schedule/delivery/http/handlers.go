package http

import (
	"github.com/gin-gonic/gin"

	"zenned/pkg/response"
)

// Import godoc
// @Summary     Import a weekly plan
// @Description Sends the prompt to the configured AI provider, parses the reply into events and stores them.
// @Description Records are stored one by one; created and failed report the outcome.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body importReq true "Plan prompt"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Missing provider credentials or nothing stored"
// @Failure     502 {object} response.Resp "Provider error or empty reply"
// @Failure     504 {object} response.Resp "Provider timed out"
// @Router      /api/v1/schedule/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := h.userID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	req, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Import(ctx, req.toImportInput(userID))
	if err != nil {
		h.l.Errorf(ctx, "uc.Import: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newImportResp(output))
}

// Preview godoc
// @Summary     Preview a weekly plan
// @Description Same as import but nothing is stored.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body importReq true "Plan prompt"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Missing provider credentials"
// @Failure     502 {object} response.Resp "Provider error or empty reply"
// @Failure     504 {object} response.Resp "Provider timed out"
// @Router      /api/v1/schedule/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Preview(ctx, req.toPreviewInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPreviewResp(output))
}
