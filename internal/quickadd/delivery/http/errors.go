package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-quickadd/internal/quickadd"
	"task-quickadd/pkg/response"
)

// isClientError reports whether err is a domain error the caller can fix by
// changing the request.
func isClientError(err error) bool {
	return errors.Is(err, quickadd.ErrEmptyInput) ||
		errors.Is(err, quickadd.ErrNothingToSchedule)
}

// respondError translates use-case errors into HTTP responses. Known domain
// errors surface as 400 with their own message, anything else becomes an
// opaque 500.
func (h *handler) respondError(c *gin.Context, err error) {
	if isClientError(err) {
		response.Error(c, err, nil)
		return
	}
	response.InternalError(c, err)
}
