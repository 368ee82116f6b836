// Package apiclient is the service layer of the console: one method per
// operation of the establishment API. Every method resolves the API base URL,
// issues exactly one HTTP request and returns either the parsed body or an
// error. Nothing is cached and nothing is retried.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gosuda/snet/internal/domain"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// BaseURLFunc resolves the API base URL. It is called once per request so
// runtime configuration changes take effect on the next call.
type BaseURLFunc func() string

// StaticBaseURL returns a BaseURLFunc that always resolves to base.
func StaticBaseURL(base string) BaseURLFunc {
	return func() string { return base }
}

// Client calls the establishment API.
type Client struct {
	baseURL    BaseURLFunc
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a Client that resolves the API base through baseURL.
func New(baseURL BaseURLFunc, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// endpoint joins the resolved base URL with path.
func (c *Client) endpoint(path string) (string, error) {
	if c.baseURL == nil {
		return "", errors.New("api base URL is not configured")
	}
	base := strings.TrimRight(strings.TrimSpace(c.baseURL()), "/")
	if base == "" {
		return "", errors.New("api base URL is empty")
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse api base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("api base URL %q must use http or https", base)
	}
	return base + path, nil
}

// do issues a single request. in, when non-nil, is sent as the JSON body; out,
// when non-nil, receives the decoded JSON response. Non-2xx responses are
// returned as *APIError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	target, err := c.endpoint(path)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		payload, marshalErr := json.Marshal(in)
		if marshalErr != nil {
			return fmt.Errorf("marshal request: %w", marshalErr)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("method", method).Str("path", path).Msg("apiclient: request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("apiclient: request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(method, path, resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// resourcePath builds /{collection}/{id} with the id path-escaped.
func resourcePath(collection string, id domain.ID) (string, error) {
	if strings.TrimSpace(string(id)) == "" {
		return "", fmt.Errorf("%s id is required: %w", strings.TrimSuffix(collection, "s"), domain.ErrInvalidInput)
	}
	return "/" + collection + "/" + url.PathEscape(id.Canonical().String()), nil
}
