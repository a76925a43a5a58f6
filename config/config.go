package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Postgres PostgresConfig

	CORS CORSConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for PostgreSQL
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// CORSConfig lists the origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration using Viper. When path is empty the default search paths are used.
func Load(path string) (*Config, error) {
	// A missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("department-config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/department-api/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment
	cfg.Environment.Name = v.GetString("environment.name")

	// HTTP server
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")

	// Logger
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = v.GetString("postgres.host")
	cfg.Postgres.Port = v.GetInt("postgres.port")
	cfg.Postgres.User = v.GetString("postgres.user")
	cfg.Postgres.Password = v.GetString("postgres.password")
	cfg.Postgres.DBName = v.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = v.GetString("postgres.sslmode")
	cfg.Postgres.MaxOpenConns = v.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = v.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = v.GetDuration("postgres.conn_max_lifetime")
	cfg.Postgres.ConnMaxIdleTime = v.GetDuration("postgres.conn_max_idle_time")

	// CORS
	cfg.CORS.AllowedOrigins = v.GetStringSlice("cors.allowed_origins")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "production")

	// HTTP server
	v.SetDefault("http_server.host", "0.0.0.0")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "release")

	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.color_enabled", false)

	// Postgres
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_open_conns", 50)
	v.SetDefault("postgres.max_idle_conns", 10)
	v.SetDefault("postgres.conn_max_lifetime", 30*time.Minute)
	v.SetDefault("postgres.conn_max_idle_time", 5*time.Minute)

	// CORS
	v.SetDefault("cors.allowed_origins", []string{"*"})
}

func validate(cfg *Config) error {
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.HTTPServer.Port == 0 {
		return fmt.Errorf("http_server.port is required")
	}

	return nil
}
