package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the user-department routes.
func (h Handler) RegisterRoutes(r *gin.RouterGroup) {
	methods := []string{http.MethodGet, http.MethodPost, http.MethodDelete}

	userDepartments := r.Group("/user_departments")
	{
		userDepartments.Match(methods, "", h.Handle)
		userDepartments.Match(methods, "/:id", h.Handle)
	}
}
