package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	// Longer client-supplied ids are replaced to keep them out of logs.
	requestIDMaxLen = 64
)

// RequestID reads X-Request-ID or generates a UUID, echoes it back, and attaches it to
// the request-scoped logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header(RequestIDHeader, rid)
		c.Request = c.Request.WithContext(m.l.With(c.Request.Context(), requestIDKey, rid))

		c.Next()
	}
}
