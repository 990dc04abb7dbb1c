package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvServerURL    = "YTFETCH_SERVER_URL"
	EnvPollInterval = "YTFETCH_POLL_INTERVAL"
	EnvMaxPolls     = "YTFETCH_MAX_POLLS"
	EnvTimeout      = "YTFETCH_TIMEOUT"
	EnvLogLevel     = "LOG_LEVEL"
)

// Defaults used when the environment leaves a value unset
const (
	DefaultServerURL    = "http://localhost:8000"
	DefaultPollInterval = time.Second
	DefaultLogLevel     = "INFO"
)

// Config holds the process-wide configuration read from the environment
type Config struct {
	ServerURL    string        // base URL of the job server
	PollInterval time.Duration // delay between status checks
	MaxPolls     int           // 0 means unbounded
	Timeout      time.Duration // 0 means no overall deadline
	LogLevel     string        // DEBUG, INFO, WARN, ERROR, FATAL
}

// LoadConfig reads .env files (if present) and the environment. A missing
// .env is not an error.
func LoadConfig(envFiles ...string) (*Config, error) {
	// godotenv never overrides variables already set in the environment
	_ = godotenv.Load(envFiles...)

	validator := NewEnvValidator()
	if err := validator.Validate(); err != nil {
		return nil, fmt.Errorf("environment validation failed: %w", err)
	}

	cfg := &Config{
		ServerURL:    validator.ServerURL(),
		PollInterval: validator.PollInterval(),
		MaxPolls:     validator.MaxPolls(),
		Timeout:      validator.Timeout(),
		LogLevel:     validator.LogLevel(),
	}

	return cfg, cfg.Validate()
}

// Validate performs additional validation on the loaded configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ServerURL) == "" {
		return fmt.Errorf("server URL cannot be empty")
	}

	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got: %s", c.PollInterval)
	}

	if c.MaxPolls < 0 {
		return fmt.Errorf("max polls cannot be negative, got: %d", c.MaxPolls)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative, got: %s", c.Timeout)
	}

	if !IsValidLogLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level: %s. Valid levels are: DEBUG, INFO, WARN, ERROR, FATAL", c.LogLevel)
	}

	return nil
}

// IsValidLogLevel reports whether level is one of the supported levels
func IsValidLogLevel(level string) bool {
	switch strings.ToUpper(level) {
	case "DEBUG", "INFO", "WARN", "ERROR", "FATAL":
		return true
	default:
		return false
	}
}
