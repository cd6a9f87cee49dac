// Package api implements the HTTP client for the Shov platform API.
//
// One Client instance serves one resolved project. Every call is a
// single round-trip: the client paces requests through a local rate
// limiter but never retries, caches, or queues. Failures come back
// either as transport-level sentinel errors or as a classified *Error
// built from the server's error envelope.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.shov.com"

	// EnvBaseURL overrides the endpoint for development setups.
	EnvBaseURL = "SHOV_API_URL"

	defaultTimeout = 60 * time.Second

	// requestsPerSecond paces outbound calls. Generous for single
	// commands; it mostly matters for the function pull fan-out.
	requestsPerSecond = 20

	userAgent = "shov-cli"

	maxErrorBody = 64 * 1024
)

// Client talks to the Shov API on behalf of one project.
type Client struct {
	httpClient   *http.Client
	streamClient *http.Client
	limiter      *rate.Limiter
	baseURL      string
	project      string
	apiKey       string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient swaps the underlying HTTP client, primarily for
// tests. Streaming calls use the same client when this is set.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
		c.streamClient = hc
	}
}

// WithTimeout adjusts the per-request timeout for non-streaming calls.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New creates a client for the given project and key. An empty key is
// allowed only for the anonymous project-creation bootstrap. The base
// URL honors SHOV_API_URL unless WithBaseURL overrides it.
func New(project, apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		// Streaming connections stay open until the caller
		// cancels, so no client timeout here.
		streamClient: &http.Client{},
		limiter:      rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		baseURL:      DefaultBaseURL,
		project:      project,
		apiKey:       apiKey,
	}
	if env := os.Getenv(EnvBaseURL); env != "" {
		c.baseURL = strings.TrimRight(env, "/")
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Project returns the project this client is bound to.
func (c *Client) Project() string {
	return c.project
}

// projectPath builds /api/<op>/<project>[/<extra>...] with each
// segment escaped.
func (c *Client) projectPath(op string, extra ...string) string {
	p := "/api/" + op + "/" + url.PathEscape(c.project)
	for _, seg := range extra {
		p += "/" + url.PathEscape(seg)
	}
	return p
}

// do performs one JSON round-trip. body is marshaled when non-nil,
// out is decoded into when non-nil. Non-2xx responses come back as a
// classified *Error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classify(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return decodeJSON(resp, out)
}

// decodeJSON decodes a success response body into out.
func decodeJSON(resp *http.Response, out any) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

// post is the shorthand for the API's dominant POST-JSON shape.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// classify turns a non-2xx response into an *Error, preferring the
// structured envelope's reason code and falling back to the status.
func classify(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	apiErr := &Error{StatusCode: resp.StatusCode}
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		apiErr.Message = env.Error
		apiErr.Details = env.Details
		apiErr.UpgradeMessage = env.UpgradeMessage
		if r, ok := env.Details["reason"].(string); ok {
			apiErr.Reason = Reason(r)
		}
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
	}
	if apiErr.Reason == "" {
		apiErr.Reason = reasonForStatus(resp.StatusCode)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		apiErr.RetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
	}
	return apiErr
}

// reasonForStatus maps unambiguous status codes to reason codes for
// envelopes that carry none. 403 stays unmapped: it is either a plan
// limit or an ownership conflict and only the envelope can say which.
func reasonForStatus(code int) Reason {
	switch code {
	case http.StatusBadRequest:
		return ReasonValidation
	case http.StatusUnauthorized:
		return ReasonAuthRequired
	case http.StatusNotFound:
		return ReasonNotFound
	case http.StatusTooManyRequests:
		return ReasonRateLimited
	}
	return ""
}

// parseRetryAfter handles both delta-seconds and HTTP-date forms.
func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
