// Package config loads fieldguard settings from FIELDGUARD_* environment variables.
package config

import (
	"time"

	"github.com/gabapcia/fieldguard/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// prefix is prepended to every environment variable name.
const prefix = "FIELDGUARD"

// Redis holds the report storage connection settings. Storage is disabled
// when Addr is empty.
type Redis struct {
	Addr      string        `envconfig:"ADDR"`
	Username  string        `envconfig:"USERNAME"`
	Password  string        `envconfig:"PASSWORD"`
	DB        int           `envconfig:"DB" default:"0" validate:"min=0"`
	ReportTTL time.Duration `envconfig:"REPORT_TTL" default:"168h" validate:"min=0"`
}

// Enabled reports whether report storage is configured.
func (r Redis) Enabled() bool {
	return r.Addr != ""
}

// HTTP holds the settings of the client used to fetch remote manifests.
type HTTP struct {
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"5s" validate:"gt=0"`
	RetryMax int           `envconfig:"RETRY_MAX" default:"2" validate:"min=0"`
}

// Config is the full application configuration.
type Config struct {
	ServiceName      string `envconfig:"SERVICE_NAME" default:"fieldguard" validate:"required"`
	LogLevel         string `envconfig:"LOG_LEVEL" default:"warn" validate:"oneof=debug info warn error"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	Workers          int    `envconfig:"WORKERS" default:"4" validate:"min=1"`

	Redis Redis `envconfig:"REDIS"`
	HTTP  HTTP  `envconfig:"HTTP"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
