package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/ytfetch/internal/model"
)

// Endpoint paths on the job server
const (
	CreatePath   = "/api/download"
	StatusPath   = "/api/status/"
	DownloadPath = "/api/download/"
)

const (
	// DefaultTimeout bounds a single HTTP call
	DefaultTimeout = 30 * time.Second

	// RequestIDHeader carries a per-call ID for server-side log correlation
	RequestIDHeader = "X-Request-ID"

	maxBodySize = 1 << 20
)

// Client talks to the job server over HTTP
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the job server at baseURL
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", baseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: scheme must be http or https", baseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("invalid server URL %q: missing host", baseURL)
	}

	c := &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the server URL without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// CreateJob submits a download request and returns the handle of the new job
func (c *Client) CreateJob(ctx context.Context, req model.DownloadRequest) (model.JobHandle, error) {
	var handle model.JobHandle

	body, err := json.Marshal(req)
	if err != nil {
		return handle, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(CreatePath), bytes.NewReader(body))
	if err != nil {
		return handle, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	if err := c.do(httpReq, &handle); err != nil {
		return model.JobHandle{}, err
	}
	return handle, nil
}

// Status fetches the current status snapshot of a job
func (c *Client) Status(ctx context.Context, downloadID string) (model.StatusSnapshot, error) {
	var snapshot model.StatusSnapshot

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(StatusPath+url.PathEscape(downloadID)), nil)
	if err != nil {
		return snapshot, fmt.Errorf("failed to build request: %w", err)
	}

	if err := c.do(httpReq, &snapshot); err != nil {
		return model.StatusSnapshot{}, err
	}
	return snapshot, nil
}

// DownloadURL returns the link to the finished file. The client never
// fetches it.
func (c *Client) DownloadURL(downloadID string) string {
	return c.endpoint(DownloadPath + url.PathEscape(downloadID))
}

func (c *Client) endpoint(path string) string {
	return c.baseURL.String() + path
}

// do sends the request and decodes a success body into out. Non-2xx answers
// become a RequestError carrying the server's detail message.
func (c *Client) do(req *http.Request, out any) error {
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")

	log := c.logger.With(
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.String("request_id", requestID),
	)
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug("request failed", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	log.Debug("response received",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(started)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body errorBody
		if err := json.Unmarshal(data, &body); err != nil {
			return newUndecodedRequestError(resp.StatusCode, err)
		}
		return NewRequestError(resp.StatusCode, body.message())
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
