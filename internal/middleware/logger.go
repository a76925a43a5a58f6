package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog writes one line per request, at a level chosen by the status class.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)

		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%d %s %s?%s %s", status, c.Request.Method, path, query, latency)
		case status >= 400:
			m.l.Warnf(ctx, "%d %s %s?%s %s", status, c.Request.Method, path, query, latency)
		default:
			m.l.Infof(ctx, "%d %s %s?%s %s", status, c.Request.Method, path, query, latency)
		}
	}
}
