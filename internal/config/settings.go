package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/ytfetch/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL      = "server_url"
	KeyQuality        = "default_quality"
	KeyFileType       = "default_file_type"
	KeyPollIntervalMS = "poll_interval_ms"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultLanguage = "system"

	MinPollInterval = 250 * time.Millisecond
	MaxPollInterval = 30 * time.Second
)

// Settings manages the preferences a user can change from the settings
// dialog. Values not yet saved fall back to the environment configuration.
type Settings struct {
	app      fyne.App
	defaults *Config
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App, defaults *Config) *Settings {
	if defaults == nil {
		defaults = &Config{
			ServerURL:    DefaultServerURL,
			PollInterval: DefaultPollInterval,
			LogLevel:     DefaultLogLevel,
		}
	}
	return &Settings{app: app, defaults: defaults}
}

// GetServerURL returns the configured job server URL
func (s *Settings) GetServerURL() string {
	serverURL := s.app.Preferences().String(KeyServerURL)
	if serverURL == "" {
		return s.defaults.ServerURL
	}
	return serverURL
}

// SetServerURL sets the job server URL. An empty value restores the default.
func (s *Settings) SetServerURL(serverURL string) {
	s.app.Preferences().SetString(KeyServerURL, strings.TrimRight(strings.TrimSpace(serverURL), "/"))
}

// GetQuality returns the quality preselected in the form
func (s *Settings) GetQuality() model.Quality {
	quality := s.app.Preferences().String(KeyQuality)
	if quality == "" {
		return model.DefaultQuality
	}
	return model.Quality(quality)
}

// SetQuality sets the quality preselected in the form
func (s *Settings) SetQuality(quality model.Quality) {
	s.app.Preferences().SetString(KeyQuality, string(quality))
}

// GetFileType returns the file type preselected in the form
func (s *Settings) GetFileType() model.FileType {
	fileType := s.app.Preferences().String(KeyFileType)
	if fileType == "" {
		return model.DefaultFileType
	}
	return model.FileType(fileType)
}

// SetFileType sets the file type preselected in the form
func (s *Settings) SetFileType(fileType model.FileType) {
	s.app.Preferences().SetString(KeyFileType, string(fileType))
}

// GetPollInterval returns the delay between status checks
func (s *Settings) GetPollInterval() time.Duration {
	ms := s.app.Preferences().Int(KeyPollIntervalMS)
	if ms <= 0 {
		return s.defaults.PollInterval
	}
	return time.Duration(ms) * time.Millisecond
}

// SetPollInterval sets the delay between status checks, clamped to a sane range
func (s *Settings) SetPollInterval(interval time.Duration) {
	if interval < MinPollInterval {
		interval = MinPollInterval
	}
	if interval > MaxPollInterval {
		interval = MaxPollInterval
	}
	s.app.Preferences().SetInt(KeyPollIntervalMS, int(interval/time.Millisecond))
}

// GetMaxPolls returns the poll cap from the environment
func (s *Settings) GetMaxPolls() int {
	return s.defaults.MaxPolls
}

// GetTimeout returns the overall deadline from the environment
func (s *Settings) GetTimeout() time.Duration {
	return s.defaults.Timeout
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
