package http

import (
	"github.com/gin-gonic/gin"

	"zenned/internal/middleware"
)

// RegisterRoutes maps /events routes. Every route requires a signed-in user.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	events := rg.Group("/events", mw.Auth())
	{
		events.GET("", h.List)
		events.POST("", h.Create)
		events.GET("/export.ics", h.Export)
		events.PATCH("/:id", h.Update)
		events.DELETE("/:id", h.Delete)
	}
}
