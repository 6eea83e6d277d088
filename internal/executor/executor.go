package executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/studiowebux/reqline/internal/types"
)

// DefaultTimeout bounds a request when no timeout is configured
const DefaultTimeout = 30 * time.Second

// maxBodySize caps how much of a response body is kept
const maxBodySize = 1 << 20

// Client sends requests over HTTP
type Client struct {
	http *http.Client
}

// NewClient creates a client with the given timeout (DefaultTimeout when <= 0)
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: &http.Transport{Proxy: http.ProxyFromEnvironment},
		},
	}
}

// Send performs req and returns the response. A non-2xx status is not an
// error; only transport failures are.
func (c *Client) Send(ctx context.Context, req *types.Request) (*types.Response, error) {
	startTime := time.Now()

	var bodyReader io.Reader
	if req.Body != nil {
		bodyReader = strings.NewReader(*req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method.String(), req.URL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for _, h := range req.Headers {
		httpReq.Header.Add(h.Name, h.Value)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body bytes.Buffer
	if _, err := io.Copy(&body, io.LimitReader(resp.Body, maxBodySize)); err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	headers := make(map[string]string, len(resp.Header))
	for key, values := range resp.Header {
		headers[key] = strings.Join(values, ", ")
	}

	return &types.Response{
		Status:   resp.StatusCode,
		Headers:  headers,
		Body:     body.Bytes(),
		Duration: time.Since(startTime),
	}, nil
}

// FormatDuration formats a duration to a short human-readable string
func FormatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	seconds := float64(ms) / 1000.0
	return fmt.Sprintf("%.2fs", seconds)
}

// IsSuccessStatus returns true if status code is 2xx
func IsSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}

// IsRedirectStatus returns true if status code is 3xx
func IsRedirectStatus(status int) bool {
	return status >= 300 && status < 400
}

// IsClientErrorStatus returns true if status code is 4xx
func IsClientErrorStatus(status int) bool {
	return status >= 400 && status < 500
}

// IsServerErrorStatus returns true if status code is 5xx
func IsServerErrorStatus(status int) bool {
	return status >= 500 && status < 600
}
