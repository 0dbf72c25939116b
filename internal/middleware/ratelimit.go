package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"appointment-assistant/pkg/response"
)

// RateLimit applies a per-client token bucket. The key is the client IP as
// resolved by gin (X-Forwarded-For aware when trusted proxies are set).
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(m.rate, m.burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: client %s throttled", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
