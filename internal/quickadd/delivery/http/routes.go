package http

import (
	"github.com/gin-gonic/gin"

	"task-quickadd/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route is rate limited per client IP; /detect is meant to be called
// on every keystroke, so it shares the same limiter as the rest.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	qa := rg.Group("/quickadd")
	{
		qa.POST("/parse", mw.RateLimit(), h.Preview)
		qa.POST("/detect", mw.RateLimit(), h.Detect)
		qa.POST("/schedule", mw.RateLimit(), h.Schedule)
	}
}
