// Package config provides application configuration loading from environment.
package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Telemetry exporters.
const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Config holds all configuration for the application.
type Config struct {
	DatabaseURL     string
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	AuthHeader      string
	Timezone        string
	Location        *time.Location
	RecentLimit     int
	ShutdownTimeout time.Duration

	ServiceName  string
	OTelExporter string
	OTLPEndpoint string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "console"),
		AuthHeader:   http.CanonicalHeaderKey(getEnv("AUTH_HEADER", "X-Forwarded-Email")),
		Timezone:     getEnv("TIMEZONE", "UTC"),
		ServiceName:  getEnv("SERVICE_NAME", "expense-tracker"),
		OTelExporter: strings.ToLower(getEnv("OTEL_EXPORTER", ExporterNone)),
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	cfg.RecentLimit = 5
	if v := os.Getenv("RECENT_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RecentLimit = n
		} else {
			cfg.RecentLimit = -1
		}
	}

	cfg.ShutdownTimeout = 10 * time.Second
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ShutdownTimeout = d
		} else {
			cfg.ShutdownTimeout = -1
		}
	}

	// Validate required configuration.
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that all required configuration is present.
func (c *Config) validate() error {
	var errs []string

	if c.DatabaseURL == "" {
		errs = append(errs, "DATABASE_URL is required")
	}

	if c.AuthHeader == "" {
		errs = append(errs, "AUTH_HEADER cannot be empty")
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid TIMEZONE %q: %v", c.Timezone, err))
	} else {
		c.Location = loc
	}

	if c.RecentLimit < 1 || c.RecentLimit > 100 {
		errs = append(errs, "RECENT_LIMIT must be a number between 1 and 100")
	}

	if c.ShutdownTimeout <= 0 {
		errs = append(errs, "SHUTDOWN_TIMEOUT must be a positive duration such as 10s")
	}

	if c.LogFormat != "console" && c.LogFormat != "json" {
		errs = append(errs, fmt.Sprintf("invalid LOG_FORMAT %q: must be console or json", c.LogFormat))
	}

	switch c.OTelExporter {
	case ExporterNone, ExporterStdout:
	case ExporterOTLP:
		if c.OTLPEndpoint == "" {
			errs = append(errs, "OTEL_EXPORTER_OTLP_ENDPOINT is required when OTEL_EXPORTER=otlp")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid OTEL_EXPORTER %q: must be none, stdout or otlp", c.OTelExporter))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
