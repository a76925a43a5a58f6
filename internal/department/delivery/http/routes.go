package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var methods = []string{http.MethodGet, http.MethodPost, http.MethodDelete}

// RegisterRoutes registers the department routes. Every method reaches Handle, which
// answers 404 for combinations it does not serve.
func (h Handler) RegisterRoutes(r *gin.RouterGroup) {
	departments := r.Group("/departments")
	{
		departments.Match(methods, "", h.Handle)
		departments.Match(methods, "/:id", h.Handle)
	}
}
