package httpserver

import (
	"net/http"

	_ "department-api/docs"
	departmentHTTP "department-api/internal/department/delivery/http"
	departmentRepo "department-api/internal/department/repository/postgre"
	departmentUC "department-api/internal/department/usecase"
	"department-api/internal/middleware"
	"department-api/internal/sqlboiler"
	userDepartmentHTTP "department-api/internal/userdepartment/delivery/http"
	userDepartmentRepo "department-api/internal/userdepartment/repository/postgre"
	userDepartmentUC "department-api/internal/userdepartment/usecase"
	pkgErrors "department-api/pkg/errors"
	"department-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() {
	dialect := srv.dialect
	if dialect == nil {
		dialect = &sqlboiler.PostgresDialect
	}

	srv.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewDBStatsCollector(srv.postgresDB, "department"),
	)
	mw := middleware.New(srv.logger, middleware.NewMetrics(srv.registry))

	srv.gin.Use(
		mw.RequestID(),
		mw.AccessLog(),
		mw.Recovery(),
		mw.Metrics(),
		middleware.CORS(middleware.DefaultCORSConfig(srv.allowedOrigins)),
	)

	// Health check endpoints
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.registry, promhttp.HandlerOpts{})))
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv.gin.NoRoute(func(c *gin.Context) {
		response.Error(c, pkgErrors.NewNotFoundHTTPError())
	})

	// Repositories
	deptRepo := departmentRepo.New(srv.logger, srv.postgresDB, dialect)
	udRepo := userDepartmentRepo.New(srv.logger, srv.postgresDB, dialect)

	// Usecases
	deptUC := departmentUC.New(srv.logger, deptRepo)
	udUC := userDepartmentUC.New(srv.logger, udRepo)

	// Handlers
	root := &srv.gin.RouterGroup
	departmentHTTP.New(srv.logger, deptUC).RegisterRoutes(root)
	userDepartmentHTTP.New(srv.logger, udUC).RegisterRoutes(root)
}

// ServeHTTP lets the server be driven directly, e.g. by httptest.
func (srv *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	srv.gin.ServeHTTP(w, r)
}
