package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/studiowebux/reqline/internal/dispatch"
	"github.com/studiowebux/reqline/internal/executor"
	"github.com/studiowebux/reqline/internal/logging"
	"github.com/studiowebux/reqline/internal/types"
)

// ErrMissingURL is returned when a one-shot request has no URL
var ErrMissingURL = errors.New("--url is required")

// RunOptions contains options for sending one request in CLI mode
type RunOptions struct {
	URL     string
	Method  string   // empty means Fallback
	Headers []string // "Name: value" pairs from -H
	Body    *string

	Fallback       types.Method
	DefaultHeaders []types.Header // sent before Headers
	Timeout        time.Duration

	Out    io.Writer       // defaults to os.Stdout
	Sender dispatch.Sender // defaults to an executor.Client
	Logger *slog.Logger
}

// Run sends one request and prints its status code. Any HTTP status is a
// success; only invalid arguments and transport failures return an error.
func Run(ctx context.Context, opts RunOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	req, err := BuildRequest(opts)
	if err != nil {
		return err
	}

	sender := opts.Sender
	if sender == nil {
		sender = executor.NewClient(opts.Timeout)
	}

	logger.Info("one-shot request", "method", req.Method, "url", req.URL)
	resp, err := sender.Send(ctx, req)
	if err != nil {
		logger.Warn("request failed", "method", req.Method, "url", req.URL, "error", err)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	logger.Info("request completed", "status", resp.Status, "duration", resp.Duration)

	_, err = fmt.Fprintf(out, "%d\n", resp.Status)
	return err
}

// BuildRequest validates opts and assembles the request
func BuildRequest(opts RunOptions) (*types.Request, error) {
	url := strings.TrimSpace(opts.URL)
	if url == "" {
		return nil, ErrMissingURL
	}

	method := opts.Fallback
	if opts.Method != "" {
		m, err := ParseMethod(opts.Method)
		if err != nil {
			return nil, err
		}
		method = m
	}

	extra, err := ParseHeaders(opts.Headers)
	if err != nil {
		return nil, err
	}
	headers := append(append([]types.Header(nil), opts.DefaultHeaders...), extra...)

	return &types.Request{
		Method:  method,
		URL:     url,
		Headers: headers,
		Body:    opts.Body,
	}, nil
}

// ParseMethod parses a --method value. Unknown names get a suggestion.
func ParseMethod(name string) (types.Method, error) {
	m, err := types.ParseMethod(name)
	if err == nil {
		return m, nil
	}
	if suggestion := SuggestMethod(name); suggestion != "" {
		return m, fmt.Errorf("%w (did you mean %s?)", err, suggestion)
	}
	return m, fmt.Errorf("%w (expected one of %s)", err, strings.Join(types.MethodNames(), ", "))
}

// SuggestMethod returns the closest method name to name, or "" when none
// is close
func SuggestMethod(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	matches := fuzzy.Find(strings.ToUpper(name), types.MethodNames())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// ParseHeaders parses repeated -H values, keeping their order
func ParseHeaders(values []string) ([]types.Header, error) {
	headers := make([]types.Header, 0, len(values))
	for _, v := range values {
		h, err := types.ParseHeader(v)
		if err != nil {
			return nil, err
		}
		headers = append(headers, h)
	}
	return headers, nil
}
