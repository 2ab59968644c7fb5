package http

import (
	"github.com/gin-gonic/gin"

	"task-quickadd/internal/quickadd"
	"task-quickadd/pkg/log"
)

// Handler is the public interface for the quickadd HTTP delivery layer.
type Handler interface {
	Preview(c *gin.Context)
	Detect(c *gin.Context)
	Schedule(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc quickadd.UseCase
}

// New creates a new HTTP handler for the quickadd domain.
func New(l log.Logger, uc quickadd.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
