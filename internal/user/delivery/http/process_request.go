package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zenned/internal/user"
	"zenned/pkg/scope"
)

func (h *handler) userID(c *gin.Context) (int64, error) {
	p, ok := scope.GetPayloadFromContext(c.Request.Context())
	if !ok || p.UserID <= 0 {
		return 0, errUnauthorized
	}
	return p.UserID, nil
}

func (h *handler) processSignupReq(c *gin.Context) (signupReq, error) {
	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidJSON
	}
	return req, nil
}

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidJSON
	}
	return req, nil
}

func (h *handler) processUpdateSettingsReq(c *gin.Context) (updateSettingsReq, error) {
	var req updateSettingsReq
	userID, err := h.userID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, h.mapError(user.ErrInvalidSettings)
	}
	if err := req.validate(); err != nil {
		return req, h.mapError(err)
	}
	req.UserID = userID
	return req, nil
}

// setAuthCookie stores token in an HTTP-only cookie. maxAge < 0 deletes it.
func (h *handler) setAuthCookie(c *gin.Context, token string, maxAge int) {
	if h.cookie.Name == "" {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, maxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}

func (h *handler) cookieMaxAge() int {
	return int(h.tokenTTL.Seconds())
}
