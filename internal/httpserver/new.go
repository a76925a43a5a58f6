package httpserver

import (
	"database/sql"
	"errors"

	"department-api/pkg/log"

	"github.com/aarondl/sqlboiler/v4/drivers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them; Run() serves.
type HTTPServer struct {
	gin    *gin.Engine
	logger log.Logger
	host   string
	port   int

	postgresDB *sql.DB
	dialect    *drivers.Dialect

	allowedOrigins []string
	registry       *prometheus.Registry
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Host string
	Port int
	Mode string

	PostgresDB *sql.DB
	// Dialect defaults to PostgreSQL.
	Dialect *drivers.Dialect

	AllowedOrigins []string
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	engine := gin.New()
	// "/departments/" names neither the collection nor an item; serve 404 instead of a 301.
	engine.RedirectTrailingSlash = false

	srv := &HTTPServer{
		gin:    engine,
		logger: logger,
		host:   cfg.Host,
		port:   cfg.Port,

		postgresDB: cfg.PostgresDB,
		dialect:    cfg.Dialect,

		allowedOrigins: cfg.AllowedOrigins,
		registry:       prometheus.NewRegistry(),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("PostgresDB is required")
	}

	return nil
}
