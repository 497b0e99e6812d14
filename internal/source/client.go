package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/five82/contour/internal/curve"
)

// Client fetches sample documents over HTTP.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
	maxBody   int64
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

const (
	defaultUserAgent = "contour/0.1"
	requestTimeout   = 5 * time.Second

	// maxBodyBytes caps how much of a response body is decoded.
	maxBodyBytes = 32 << 20
)

// NewClient builds a Client for the given endpoint URL. The scheme defaults
// to http when omitted.
func NewClient(endpoint string) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	return &Client{
		endpoint: u,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Location returns the endpoint URL.
func (c *Client) Location() string {
	return c.endpoint.String()
}

// FetchSeries retrieves and decodes the sample document.
func (c *Client) FetchSeries(ctx context.Context) (curve.Series, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/csv;q=0.9, application/yaml;q=0.8")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%s returned status %d", c.endpoint.Path, resp.StatusCode)
	}
	body := io.LimitReader(resp.Body, c.bodyLimit()+1)
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if int64(len(data)) > c.bodyLimit() {
		return nil, fmt.Errorf("%s response exceeds %d bytes", c.endpoint.Path, c.bodyLimit())
	}
	return Decode(bytes.NewReader(data), FormatForContentType(resp.Header.Get("Content-Type")))
}

func (c *Client) bodyLimit() int64 {
	if c.maxBody > 0 {
		return c.maxBody
	}
	return maxBodyBytes
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return nil, fmt.Errorf("endpoint is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse endpoint %q: unsupported scheme %q", endpoint, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", endpoint)
	}
	u.Fragment = ""
	return u, nil
}
