package api

import (
	"errors"
	"fmt"
)

// FallbackDetail is shown when the server gives no reason for a failure
const FallbackDetail = "Download failed"

// RequestError is returned when the server answers a call with a non-success
// status. Error() returns the server's detail message verbatim.
type RequestError struct {
	StatusCode int    `json:"status_code"`
	Detail     string `json:"detail"`
	Cause      error  `json:"-"`
}

// Error implements the error interface
func (re *RequestError) Error() string {
	if re.Detail == "" {
		return FallbackDetail
	}
	return re.Detail
}

// Unwrap returns the underlying cause error
func (re *RequestError) Unwrap() error {
	return re.Cause
}

// newUndecodedRequestError records a failure whose body could not be decoded
func newUndecodedRequestError(statusCode int, cause error) *RequestError {
	return &RequestError{StatusCode: statusCode, Detail: FallbackDetail, Cause: cause}
}

// NewRequestError creates a RequestError, falling back to a generic message
func NewRequestError(statusCode int, detail string) *RequestError {
	if detail == "" {
		detail = FallbackDetail
	}
	return &RequestError{StatusCode: statusCode, Detail: detail}
}

// JobError is returned when a status snapshot reports that the job failed
type JobError struct {
	DownloadID string `json:"download_id"`
	Detail     string `json:"detail"`
}

// Error implements the error interface
func (je *JobError) Error() string {
	if je.Detail == "" {
		return FallbackDetail
	}
	return je.Detail
}

// NewJobError creates a JobError, falling back to a generic message
func NewJobError(downloadID, detail string) *JobError {
	if detail == "" {
		detail = FallbackDetail
	}
	return &JobError{DownloadID: downloadID, Detail: detail}
}

// IsRequestError reports whether err wraps a RequestError
func IsRequestError(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}

// IsJobError reports whether err wraps a JobError
func IsJobError(err error) bool {
	var je *JobError
	return errors.As(err, &je)
}

// StatusCode returns the HTTP status of a wrapped RequestError, or 0
func StatusCode(err error) int {
	var re *RequestError
	if errors.As(err, &re) {
		return re.StatusCode
	}
	return 0
}

// errorBody is the failure payload of the job server
type errorBody struct {
	Detail any `json:"detail"`
}

// message flattens the detail field. Validation failures carry a list of
// objects instead of a string.
func (b errorBody) message() string {
	switch d := b.Detail.(type) {
	case string:
		return d
	case nil:
		return ""
	case []any:
		if len(d) == 0 {
			return ""
		}
		if first, ok := d[0].(map[string]any); ok {
			if msg, ok := first["msg"].(string); ok {
				return msg
			}
		}
		return fmt.Sprint(d[0])
	default:
		return fmt.Sprint(d)
	}
}
