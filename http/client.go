// Package http provides the HTTP client for the official BOE API:
// the day-index endpoint, the article XML endpoint and canonical URL
// construction, with an explicit retry policy for transient failures.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/amontero/boletin"
)

// DefaultBaseURL is the official gazette host.
const DefaultBaseURL = "https://www.boe.es"

// DefaultTimeout is the default timeout for a single HTTP request.
const DefaultTimeout = 10 * time.Second

// Ensure Client implements boletin.GazetteClient at compile time.
var _ boletin.GazetteClient = (*Client)(nil)
var _ boletin.PageFetcher = (*Client)(nil)

// Client retrieves gazette markup over HTTP. All requests go through
// the configured RetryPolicy; the HTTP client is injected so tests can
// substitute transports and callers control its lifetime.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	retry      RetryPolicy
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the gazette host, primarily for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient injects the underlying HTTP client. The caller keeps
// ownership of its configuration, including its timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout used when no HTTP client is
// injected. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRetryPolicy overrides the retry policy.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) {
		c.retry = p
	}
}

// NewClient creates a gazette API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		retry:   DefaultRetryPolicy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// FetchDayIndex retrieves the raw XML publication index for a date.
// A 404 means the gazette was not published that day and yields an
// empty string. A successful response whose content type is not
// XML-flavored is an EINVALID error and is never retried.
func (c *Client) FetchDayIndex(ctx context.Context, date boletin.Date) (string, error) {
	url := fmt.Sprintf("%s/datosabiertos/api/boe/sumario/%s", c.baseURL, date.Compact())

	resp, err := c.get(ctx, url, "application/xml")
	if err != nil {
		return "", err
	}
	if resp.status == http.StatusNotFound {
		return "", nil
	}
	if resp.status != http.StatusOK {
		return "", boletin.Errorf(boletin.EINTERNAL, "unexpected status %d for day index %s", resp.status, date.ISO())
	}
	if !strings.Contains(resp.contentType, "xml") {
		return "", boletin.Errorf(boletin.EINVALID, "day index for %s is not XML (Content-Type %q)", date.ISO(), resp.contentType)
	}
	return resp.body, nil
}

// FetchArticle retrieves one article's raw XML by identifier.
func (c *Client) FetchArticle(ctx context.Context, id string) (string, error) {
	resp, err := c.get(ctx, c.ArticleXMLURL(id), "")
	if err != nil {
		return "", err
	}
	if resp.status == http.StatusNotFound {
		return "", boletin.Errorf(boletin.ENOTFOUND, "article %q not found", id)
	}
	if resp.status != http.StatusOK {
		return "", boletin.Errorf(boletin.EINTERNAL, "unexpected status %d for article %q", resp.status, id)
	}
	return resp.body, nil
}

// FetchPage retrieves an arbitrary page's raw body. Used by the scrape
// command, not by the gazette pipeline.
func (c *Client) FetchPage(ctx context.Context, url string) (string, error) {
	resp, err := c.get(ctx, url, "")
	if err != nil {
		return "", err
	}
	if resp.status != http.StatusOK {
		return "", boletin.Errorf(boletin.EINTERNAL, "unexpected status %d for %s", resp.status, url)
	}
	return resp.body, nil
}

// ArticleXMLURL returns the canonical XML URL for an article.
func (c *Client) ArticleXMLURL(id string) string {
	return fmt.Sprintf("%s/diario_boe/xml.php?id=%s", c.baseURL, id)
}

// ArticlePDFURL returns the canonical PDF URL for an article published
// on the given date.
func (c *Client) ArticlePDFURL(id string, date boletin.Date) string {
	return fmt.Sprintf("%s/boe/dias/%04d/%02d/%02d/pdfs/%s.pdf", c.baseURL, date.Year, date.Month, date.Day, id)
}

// response is the outcome of a completed request after retries.
type response struct {
	status      int
	contentType string
	body        string
}

// get performs a GET with the retry policy applied around each attempt.
// A status the policy considers transient is retried; every other
// status, 404 included, terminates the loop and is interpreted by the
// caller.
func (c *Client) get(ctx context.Context, url, accept string) (*response, error) {
	attempts := c.retry.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retry.Delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		if accept != "" {
			req.Header.Set("Accept", accept)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if c.retry.retryableError(ctx, err) {
				lastErr = err
				continue
			}
			return nil, err
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if c.retry.retryableStatus(resp.StatusCode) {
			lastErr = boletin.Errorf(boletin.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
			continue
		}

		return &response{
			status:      resp.StatusCode,
			contentType: resp.Header.Get("Content-Type"),
			body:        string(body),
		}, nil
	}

	if lastErr == nil {
		lastErr = boletin.Errorf(boletin.EUNAVAILABLE, "no attempts made for %s", url)
	}
	var appErr *boletin.Error
	if errors.As(lastErr, &appErr) {
		return nil, lastErr
	}
	return nil, boletin.Errorf(boletin.EUNAVAILABLE, "fetch %s: %v", url, lastErr)
}
