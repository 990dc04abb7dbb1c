package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvValidator validates and reads the YTFETCH_* environment variables
type EnvValidator struct{}

// NewEnvValidator creates a new environment validator instance
func NewEnvValidator() *EnvValidator {
	return &EnvValidator{}
}

// Validate checks every variable that is set. Unset variables fall back to
// defaults, so nothing is required.
func (e *EnvValidator) Validate() error {
	var problems []string

	if raw := os.Getenv(EnvServerURL); raw != "" {
		parsed, err := url.Parse(raw)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			problems = append(problems, fmt.Sprintf("%s must be an http(s) URL, got: %s", EnvServerURL, raw))
		}
	}

	for _, name := range []string{EnvPollInterval, EnvTimeout} {
		if raw := os.Getenv(name); raw != "" {
			if d, err := parseDuration(raw); err != nil || d < 0 {
				problems = append(problems, fmt.Sprintf("%s must be a duration such as 1s or 1500ms, got: %s", name, raw))
			}
		}
	}

	if raw := os.Getenv(EnvMaxPolls); raw != "" {
		if n, err := strconv.Atoi(raw); err != nil || n < 0 {
			problems = append(problems, fmt.Sprintf("%s must be a non-negative integer, got: %s", EnvMaxPolls, raw))
		}
	}

	if raw := os.Getenv(EnvLogLevel); raw != "" && !IsValidLogLevel(raw) {
		problems = append(problems, fmt.Sprintf("%s must be one of DEBUG, INFO, WARN, ERROR, FATAL, got: %s", EnvLogLevel, raw))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid environment variables: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ServerURL returns the job server URL
func (e *EnvValidator) ServerURL() string {
	if v := strings.TrimSpace(os.Getenv(EnvServerURL)); v != "" {
		return strings.TrimRight(v, "/")
	}
	return DefaultServerURL
}

// PollInterval returns the delay between status checks
func (e *EnvValidator) PollInterval() time.Duration {
	if d, err := parseDuration(os.Getenv(EnvPollInterval)); err == nil && d > 0 {
		return d
	}
	return DefaultPollInterval
}

// MaxPolls returns the poll cap, 0 when unset
func (e *EnvValidator) MaxPolls() int {
	if n, err := strconv.Atoi(os.Getenv(EnvMaxPolls)); err == nil && n > 0 {
		return n
	}
	return 0
}

// Timeout returns the overall deadline, 0 when unset
func (e *EnvValidator) Timeout() time.Duration {
	if d, err := parseDuration(os.Getenv(EnvTimeout)); err == nil && d > 0 {
		return d
	}
	return 0
}

// LogLevel returns the upper-cased log level
func (e *EnvValidator) LogLevel() string {
	if v := os.Getenv(EnvLogLevel); v != "" {
		return strings.ToUpper(v)
	}
	return DefaultLogLevel
}

// parseDuration accepts Go durations and bare integers as milliseconds
func parseDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("empty duration")
	}
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(raw)
}
