package http

import (
	"github.com/gin-gonic/gin"

	"zenned/internal/middleware"
)

// RegisterRoutes maps /schedule routes. Both call the AI provider, so both
// are rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware, ratePerMin int) {
	sched := rg.Group("/schedule", mw.Auth(), mw.RateLimitByUser(ratePerMin))
	{
		sched.POST("/import", h.Import)
		sched.POST("/preview", h.Preview)
	}
}
