package httpserver

import (
	"net/http"

	"department-api/config/postgre"
	pkgErrors "department-api/pkg/errors"
	"department-api/pkg/response"

	"github.com/gin-gonic/gin"
)

const serviceName = "department-api"

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the service and its database are healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Failure 503 {object} response.Resp "Database unreachable"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	if err := postgre.HealthCheck(c.Request.Context(), srv.postgresDB); err != nil {
		srv.logger.Errorf(c.Request.Context(), "internal.httpserver.healthCheck: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "PostgreSQL connection failed", http.StatusServiceUnavailable))
		return
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  serviceName,
		"postgres": "connected",
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} response.Resp "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if err := postgre.HealthCheck(c.Request.Context(), srv.postgresDB); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "PostgreSQL connection not available", http.StatusServiceUnavailable))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": serviceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
	})
}
