package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"task-quickadd/pkg/response"
)

// RateLimit caps requests per client IP. Limiters live in an expiring LRU
// so idle clients are evicted automatically. A per_min of zero disables
// the limiter.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMin := m.cfg.RateLimit.PerMin
	if perMin <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	burst := perMin / 10
	if burst < 1 {
		burst = 1
	}

	limiters := expirable.NewLRU[string, *rate.Limiter](
		1000,          // Max 1000 unique clients
		nil,           // No eviction callback
		time.Minute*5, // TTL: 5 minutes
	)
	limit := rate.Limit(float64(perMin) / 60.0) // Per second

	return func(c *gin.Context) {
		key := c.ClientIP()

		limiter, ok := limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(limit, burst)
			limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware: rate limit exceeded for %s", key)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests",
			})
			return
		}

		c.Next()
	}
}
