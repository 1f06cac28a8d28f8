package http

import (
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

func (h *handler) processImportReq(c *gin.Context) (importReq, error) {
	var req importReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidJSON
	}
	return req, nil
}
