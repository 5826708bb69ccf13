// Package config loads application configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the envconfig prefix: CALC_HTTP_HOST, CALC_LOG_LEVEL, and so on.
const Prefix = "CALC"

// HTTPConfig holds the web front end's listen address.
type HTTPConfig struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port string `envconfig:"PORT" default:"8080"`
}

func (c HTTPConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// Config is the full application configuration, shared by both binaries.
type Config struct {
	HTTP HTTPConfig `envconfig:"HTTP"`

	// LogLevel is a zap level string: debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// OTelExport enables the OTLP trace/metric/log exporters. Off by
	// default so local runs and the console binary work without a
	// collector; the Prometheus /metrics endpoint is always served.
	OTelExport bool `envconfig:"OTEL_EXPORT" default:"false"`

	// ConsoleLogFile, when set, makes the console binary write its zap
	// logs there instead of discarding them, keeping the interactive
	// terminal clean.
	ConsoleLogFile string `envconfig:"CONSOLE_LOG_FILE"`
}

// Load reads .env when present (existing environment variables win) and then
// fills Config from the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}
	return cfg, nil
}
