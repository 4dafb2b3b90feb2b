// Package apiclient talks to the HRMS backend's REST API.
//
// Each method is one independent round trip: no retry, no caching and no
// client-side timeout beyond the transport default. Callers bound the call
// with their request context (see system/timeouts).
package apiclient

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
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

// Client is a typed wrapper over the employees and attendance resources.
type Client struct {
	BaseURL *url.URL
	HTTP    *http.Client
	Log     *zap.Logger
}

// New builds a Client for baseURL. httpClient may be nil to use a
// dedicated client with the default transport.
func New(baseURL string, httpClient *http.Client, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("api base url must be absolute http(s), got %q", baseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{BaseURL: u, HTTP: httpClient, Log: logger}, nil
}

// CloseIdleConnections releases pooled connections. Called on shutdown.
func (c *Client) CloseIdleConnections() {
	c.HTTP.CloseIdleConnections()
}

// endpoint joins the base URL with path segments, escaping each one.
func (c *Client) endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	u := *c.BaseURL
	u.Path = c.BaseURL.Path + "/" + strings.Join(segments, "/")
	u.RawPath = c.BaseURL.EscapedPath() + "/" + strings.Join(escaped, "/")
	return u.String()
}

// do issues one request. in is JSON-encoded when non-nil; out is decoded
// from a 2xx body when non-nil. Non-2xx responses return *Error.
func (c *Client) do(ctx context.Context, op, method, target string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Log.Debug("api request failed",
			zap.String("op", op),
			zap.String("method", method),
			zap.String("url", target),
			zap.String("request_id", reqID),
			zap.Error(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	c.Log.Debug("api request",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
		zap.String("request_id", reqID))
	if err != nil {
		return fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Op: op, Status: resp.StatusCode, Detail: parseDetail(raw)}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
