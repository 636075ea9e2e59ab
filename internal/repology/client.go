package repology

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the public repology instance.
const DefaultBaseURL = "https://repology.org/"

// maxErrorBody bounds how much of an error response body is kept.
const maxErrorBody = 512

// Client queries a repology-compatible HTTP API. Every call issues a fresh
// request; failures are returned as-is, without retries.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	log       *zap.Logger
}

// NewClient creates a Client for the API rooted at baseURL.
// If baseURL is empty, the public repology instance is used.
func NewClient(baseURL, userAgent string, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = "repoctl"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		http:      &http.Client{Timeout: 2 * time.Minute},
		log:       log,
	}
}

// Project fetches api/v1/project/<name>.
func (c *Client) Project(ctx context.Context, name string) ([]Package, error) {
	var pkgs []Package
	if err := c.getJSON(ctx, c.url("api", "v1", "project", name), &pkgs); err != nil {
		return nil, fmt.Errorf("fetching project %q: %w", name, err)
	}
	return pkgs, nil
}

// ProblemsForRepo fetches api/v1/repository/<repo>/problems.
func (c *Client) ProblemsForRepo(ctx context.Context, repo string) ([]Problem, error) {
	var problems []Problem
	if err := c.getJSON(ctx, c.url("api", "v1", "repository", repo, "problems"), &problems); err != nil {
		return nil, fmt.Errorf("fetching problems for repository %q: %w", repo, err)
	}
	return problems, nil
}

// ProblemsForMaintainer fetches api/v1/maintainer/<maintainer>/problems.
func (c *Client) ProblemsForMaintainer(ctx context.Context, maintainer string) ([]Problem, error) {
	var problems []Problem
	if err := c.getJSON(ctx, c.url("api", "v1", "maintainer", maintainer, "problems"), &problems); err != nil {
		return nil, fmt.Errorf("fetching problems for maintainer %q: %w", maintainer, err)
	}
	return problems, nil
}

// getJSON issues a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, u string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.log.Debug("GET", zap.String("url", u))
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", u, err)
	}
	return nil
}

// url builds an API URL from path segments, escaping each one.
func (c *Client) url(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.PathEscape(p)
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

// checkStatus returns an *HTTPError for non-2xx responses.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &HTTPError{
		StatusCode: resp.StatusCode,
		URL:        resp.Request.URL.String(),
		Body:       strings.TrimSpace(string(body)),
	}
}
