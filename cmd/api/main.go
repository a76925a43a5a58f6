package main

import (
	"context"
	"fmt"
	"os"

	"department-api/config"
	"department-api/config/postgre"
	"department-api/internal/httpserver"
	"department-api/pkg/log"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "api",
	Short: "Department API",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	rootCmd.AddCommand(serveCmd)
}

// @title Department API
// @description Departments and user-department memberships.
// @version 1
// @host localhost:8080
// @schemes http
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	defer logger.Sync()

	// Initialize PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return err
	}
	defer postgre.Disconnect(postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host: cfg.HTTPServer.Host,
		Port: cfg.HTTPServer.Port,
		Mode: cfg.HTTPServer.Mode,

		PostgresDB: postgresDB,

		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return err
	}

	return httpServer.Run()
}
