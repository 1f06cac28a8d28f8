package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"zenned/pkg/scope"
)

func (h *handler) userID(c *gin.Context) (int64, error) {
	p, ok := scope.GetPayloadFromContext(c.Request.Context())
	if !ok || p.UserID <= 0 {
		return 0, errUnauthorized
	}
	return p.UserID, nil
}

func (h *handler) eventID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	var err error
	if req.UserID, err = h.userID(c); err != nil {
		return req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	userID, err := h.userID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidJSON
	}
	req.UserID = userID
	return req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	userID, err := h.userID(c)
	if err != nil {
		return req, err
	}
	id, err := h.eventID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidJSON
	}
	req.UserID = userID
	req.ID = id
	return req, nil
}
