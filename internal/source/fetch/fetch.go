package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Client resolves portfolio locations to markup text. file:// URLs and bare
// paths that exist on disk are read locally; everything else is one
// best-effort HTTP GET with browser-like headers.
type Client struct {
	httpClient *http.Client
	headers    map[string]string
}

// APIError represents a non-2xx HTTP response.
type APIError struct {
	StatusCode int
	Body       string // first 512 bytes
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// Option configures Client behavior.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHeader adds a request header sent on every fetch.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// New creates a Client. Default headers mimic a regular browser so portfolio
// pages that reject bare clients still respond.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		headers: map[string]string{
			"User-Agent":      "Mozilla/5.0 (compatible; HitachiPortfolioBot/1.0; +https://example.com/bot)",
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			"Accept-Language": "en-US,en;q=0.8",
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the markup text at location.
func (c *Client) Fetch(ctx context.Context, location string) (string, error) {
	if strings.HasPrefix(location, "file://") {
		parsed, err := url.Parse(location)
		if err != nil {
			return "", fmt.Errorf("fetch: parse %s: %w", location, err)
		}
		return c.readFile(parsed.Path)
	}
	if _, err := os.Stat(location); err == nil {
		return c.readFile(location)
	}
	return c.get(ctx, location)
}

func (c *Client) readFile(path string) (string, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("fetch: read %s: %w", path, err)
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fetch %s: read body: %w", rawURL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyStr := string(body)
		if len(bodyStr) > 512 {
			bodyStr = bodyStr[:512]
		}
		return "", &APIError{StatusCode: resp.StatusCode, Body: bodyStr}
	}
	return string(body), nil
}
