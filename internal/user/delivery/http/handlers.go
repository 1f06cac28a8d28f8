package http

import (
	"github.com/gin-gonic/gin"

	"zenned/pkg/response"
)

// Signup godoc
// @Summary     Register
// @Description Creates an account and its events store, then signs the user in.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signupReq true "Credentials"
// @Success     200 {object} signupResp
// @Failure     400 {object} response.Resp "Missing fields"
// @Failure     409 {object} response.Resp "Email already registered"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/signup [POST]
func (h *handler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignupReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Signup(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Signup: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.setAuthCookie(c, output.Token, h.cookieMaxAge())
	response.OK(c, h.newSignupResp(output))
}

// Login godoc
// @Summary     Sign in
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     400 {object} response.Resp "Missing fields"
// @Failure     401 {object} response.Resp "Invalid password"
// @Failure     404 {object} response.Resp "User not found"
// @Failure     429 {object} response.Resp "Too many requests"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.setAuthCookie(c, output.Token, h.cookieMaxAge())
	response.OK(c, h.newLoginResp(output))
}

// Logout godoc
// @Summary     Sign out
// @Description Clears the auth cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	h.setAuthCookie(c, "", -1)
	response.OK(c, nil)
}

// GetSettings godoc
// @Summary     Get settings
// @Tags        Users
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} settingsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "User not found"
// @Router      /api/v1/users/me/settings [GET]
func (h *handler) GetSettings(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := h.userID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetSettings(ctx, userID)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSettings: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, settingsResp{DarkMode: output.DarkMode})
}

// UpdateSettings godoc
// @Summary     Update settings
// @Tags        Users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body updateSettingsReq true "Settings"
// @Success     200 {object} settingsResp
// @Failure     400 {object} response.Resp "dark_mode must be a boolean"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "User not found"
// @Router      /api/v1/users/me/settings [PATCH]
func (h *handler) UpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateSettingsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.UpdateSettings(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.UpdateSettings: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, settingsResp{DarkMode: *req.DarkMode})
}
