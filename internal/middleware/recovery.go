package middleware

import (
	"department-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery renders any panic as a 500 error envelope.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				m.l.Errorf(c.Request.Context(), "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err)
			}
		}()
		c.Next()
	}
}
