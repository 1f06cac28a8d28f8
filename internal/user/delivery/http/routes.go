package http

import (
	"github.com/gin-gonic/gin"

	"zenned/internal/middleware"
)

// RegisterRoutes maps /auth and /users routes. Login is rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware, loginRatePerMin int) {
	auth := rg.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", mw.RateLimitByIP(loginRatePerMin), h.Login)
		auth.POST("/logout", h.Logout)
	}

	me := rg.Group("/users/me", mw.Auth())
	{
		me.GET("/settings", h.GetSettings)
		me.PATCH("/settings", h.UpdateSettings)
	}
}
