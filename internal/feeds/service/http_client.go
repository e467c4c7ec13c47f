// Package service provides HTTP clients for the upstream feed providers.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	feedsDomain "github.com/gen-relay/genlayer-relay/internal/feeds/domain"
)

// maxResponseBytes bounds how much of an upstream body is read.
const maxResponseBytes = 1 << 20

// QueryStringBody is implemented by request parameter structs.
type QueryStringBody interface {
	GenerateQueryString() (url.Values, error)
}

// HTTPError reports a non-2xx upstream response. It matches ErrUpstreamFailed
// through errors.Is. Only the path is kept so credentials carried in the query
// string never reach logs.
type HTTPError struct {
	Status int
	Path   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream %s returned status %d", e.Path, e.Status)
}

func (e *HTTPError) Unwrap() error { return feedsDomain.ErrUpstreamFailed }

// SimpleHTTPClient performs JSON GET requests against a single upstream base URL.
type SimpleHTTPClient struct {
	BaseURL *url.URL

	client *http.Client
	logger *slog.Logger
}

// NewSimpleHTTPClient returns a client for serverURL with the given request timeout.
func NewSimpleHTTPClient(serverURL string, timeout time.Duration, logger *slog.Logger) (*SimpleHTTPClient, error) {
	return NewWithHTTPClient(serverURL, &http.Client{Timeout: timeout}, logger)
}

// NewWithHTTPClient returns a client for serverURL using the supplied http.Client.
func NewWithHTTPClient(serverURL string, client *http.Client, logger *slog.Logger) (*SimpleHTTPClient, error) {
	baseURL, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream url: %w", err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid upstream url %q: scheme and host are required", serverURL)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &SimpleHTTPClient{
		BaseURL: baseURL,
		client:  client,
		logger:  logger,
	}, nil
}

// NewRequest builds a GET request for path with the query string generated from qsb.
func (c *SimpleHTTPClient) NewRequest(ctx context.Context, path string, qsb QueryStringBody) (*http.Request, error) {
	qs := ""
	if qsb != nil {
		v, err := qsb.GenerateQueryString()
		if err != nil {
			return nil, fmt.Errorf("failed to generate query string: %w", err)
		}
		qs = v.Encode()
	}

	resolvedURL := c.BaseURL.ResolveReference(&url.URL{
		Path:     path,
		RawQuery: qs,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resolvedURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// Do sends req and decodes a 2xx JSON body into v. Transport failures, non-2xx
// statuses and undecodable bodies all match ErrUpstreamFailed.
func (c *SimpleHTTPClient) Do(req *http.Request, v any) error {
	path := req.URL.Path

	resp, err := c.client.Do(req)
	if err != nil {
		// url.Error embeds the full URL, query string included.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("%w: request to %s: %w", feedsDomain.ErrUpstreamFailed, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: reading %s: %w", feedsDomain.ErrUpstreamFailed, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("failed upstream call",
			slog.String("host", req.URL.Host),
			slog.String("path", path),
			slog.Int("response_status", resp.StatusCode),
		)
		return &HTTPError{Status: resp.StatusCode, Path: path}
	}

	if v != nil {
		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("%w: unable to decode %s: %w", feedsDomain.ErrUpstreamFailed, path, err)
		}
	}

	return nil
}
