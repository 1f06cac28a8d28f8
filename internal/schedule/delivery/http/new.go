package http

import (
	"github.com/gin-gonic/gin"

	"zenned/internal/schedule"
	"zenned/pkg/log"
)

// Handler is the schedule HTTP delivery layer.
type Handler interface {
	Import(c *gin.Context)
	Preview(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc schedule.UseCase
}

// New creates the schedule HTTP handler.
func New(l log.Logger, uc schedule.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
