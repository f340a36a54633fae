package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment variables consulted for settings not given on the command line.
const (
	EnvLogLevel  = "GRAPHLIB_LOG_LEVEL"
	EnvLogFormat = "GRAPHLIB_LOG_FORMAT"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LogFormat string
	LogLevel  string
}

// NewConfig fills empty fields from the environment and validates the result.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = envOr(EnvLogLevel, "info")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = envOr(EnvLogFormat, "text")
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	return &cfg, nil
}

// LoadEnvFile loads variables from a dotenv file without overriding ones that
// are already set. An empty path does nothing.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "load env file %s", path)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
