// Package transport issues SPARQL queries and updates over HTTP.
//
// The transport is a deliberately thin collaborator: it URL-escapes queries
// against the query endpoint, POSTs update bodies with the
// application/sparql-update content type, and attaches the security label
// header. It never retries, and beyond the status check it does not interpret
// transport-level failures; they propagate to the caller as-is.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/c360/rdfstore/results"
)

// SecurityLabelHeader carries the opaque security label on update requests.
// The label annotates the update for the store's access-control layer and is
// never embedded in the statement body.
const SecurityLabelHeader = "Security-Label"

const (
	contentTypeUpdate = "application/sparql-update"
	acceptResults     = "application/sparql-results+json"

	defaultTimeout = 30 * time.Second
)

// Client sends queries and updates to a SPARQL 1.1 endpoint pair.
type Client struct {
	queryEndpoint  string
	updateEndpoint string
	httpClient     *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Useful for tests and
// for callers that need custom TLS or proxy configuration.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
// Non-positive durations keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// New creates a transport client for the given query and update endpoints.
func New(queryEndpoint, updateEndpoint string, opts ...Option) *Client {
	c := &Client{
		queryEndpoint:  queryEndpoint,
		updateEndpoint: updateEndpoint,
		httpClient:     &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query issues a SPARQL query via GET with the query URL-escaped into the
// query endpoint, and decodes the SPARQL JSON results body. A response body
// that is not a conforming results document decodes to an empty response.
func (c *Client) Query(ctx context.Context, query string) (*results.Response, error) {
	target := c.queryEndpoint + "?query=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("transport.Query: build request: %w", err)
	}
	req.Header.Set("Accept", acceptResults)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transport.Query: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("transport.Query: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("transport.Query: query endpoint returned %s", resp.Status)
	}

	return results.Decode(body), nil
}

// Update POSTs a SPARQL update body to the update endpoint with content type
// application/sparql-update. A non-empty security label is carried as the
// Security-Label header. Returns the response text.
func (c *Client) Update(ctx context.Context, body, securityLabel string) (string, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.updateEndpoint, strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("transport.Update: build request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeUpdate)
	if securityLabel != "" {
		req.Header.Set(SecurityLabelHeader, securityLabel)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("transport.Update: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("transport.Update: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("transport.Update: update endpoint returned %s", resp.Status)
	}

	return string(text), nil
}
