package http

import (
	"github.com/gin-gonic/gin"

	"zenned/internal/event"
	"zenned/pkg/log"
)

// Handler is the events HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Export(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc event.UseCase
}

// New creates the events HTTP handler.
func New(l log.Logger, uc event.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
