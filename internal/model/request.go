package model

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Quality presets accepted by the job server
type Quality string

const (
	QualityHighest Quality = "highest"
	QualityMedium  Quality = "medium"
	QualityLowest  Quality = "lowest"
)

// FileType is the container requested from the job server
type FileType string

const (
	FileTypeMP4 FileType = "mp4"
	FileTypeMP3 FileType = "mp3"
)

// Defaults used by the job server when a field is omitted
const (
	DefaultQuality  = QualityHighest
	DefaultFileType = FileTypeMP4
)

// ErrEmptyURL is returned when the form is submitted without a URL
var ErrEmptyURL = errors.New("please enter a URL")

// QualityOptions returns the selectable quality presets in display order
func QualityOptions() []Quality {
	return []Quality{QualityHighest, QualityMedium, QualityLowest}
}

// FileTypeOptions returns the selectable file types in display order
func FileTypeOptions() []FileType {
	return []FileType{FileTypeMP4, FileTypeMP3}
}

// DownloadRequest is the body of the job creation call. It is built from the
// form fields at submit time and is not modified after it is sent.
type DownloadRequest struct {
	URL      string   `json:"url"`
	Quality  Quality  `json:"quality"`
	FileType FileType `json:"file_type"`
}

// Normalize trims whitespace and fills in server defaults for empty fields
func (r DownloadRequest) Normalize() DownloadRequest {
	r.URL = strings.TrimSpace(strings.NewReplacer("\n", "", "\r", "", "\t", "").Replace(r.URL))
	r.Quality = Quality(strings.TrimSpace(string(r.Quality)))
	r.FileType = FileType(strings.TrimSpace(string(r.FileType)))
	if r.Quality == "" {
		r.Quality = DefaultQuality
	}
	if r.FileType == "" {
		r.FileType = DefaultFileType
	}
	return r
}

// Validate checks that the URL has a scheme and a host
func (r DownloadRequest) Validate() error {
	if r.URL == "" {
		return ErrEmptyURL
	}
	return ValidateURL(r.URL)
}

// ValidateURL reports whether input looks like an absolute http(s) URL
func ValidateURL(input string) error {
	parsed, err := url.Parse(input)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid URL: must start with http:// or https://")
	}
	if parsed.Host == "" {
		return fmt.Errorf("invalid URL: missing host")
	}
	return nil
}
