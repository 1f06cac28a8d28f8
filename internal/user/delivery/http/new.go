package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"zenned/config"
	"zenned/internal/user"
	"zenned/pkg/log"
)

// Handler is the users HTTP delivery layer.
type Handler interface {
	Signup(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	GetSettings(c *gin.Context)
	UpdateSettings(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       user.UseCase
	cookie   config.CookieConfig
	tokenTTL time.Duration
}

// New creates the users HTTP handler. tokenTTL sets the auth cookie lifetime.
func New(l log.Logger, uc user.UseCase, cookie config.CookieConfig, tokenTTL time.Duration) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		cookie:   cookie,
		tokenTTL: tokenTTL,
	}
}
