package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
	"github.com/custodia-labs/docshelf-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docshelf-cli/internal/logger"
)

// Ensure Client implements the auth-facing ports directly. The workspace,
// document and recycle bin ports are implemented by wrapper types returned
// from Workspaces, Documents and RecycleBin.
var (
	_ driven.AuthAPI    = (*Client)(nil)
	_ driven.ProfileAPI = (*Client)(nil)
	_ driven.TokenSink  = (*Client)(nil)
)

const (
	// defaultTimeout bounds every request.
	defaultTimeout = 30 * time.Second

	// requestsPerSecond is the proactive client-side throttle. The
	// backend publishes no limits; this keeps bursts of list/search
	// traffic polite without being noticeable interactively.
	requestsPerSecond = 10

	// headerRequestID tags each request for server-side correlation.
	headerRequestID = "X-Request-ID"
)

// Client talks to the remote document-management service.
// It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Useful for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithRateLimit replaces the default request throttle.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst) }
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken installs the bearer token for authenticated calls.
// An empty token means logged out.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// limiterWait blocks until the throttle admits another request.
func (c *Client) limiterWait(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
	}
	return nil
}

// setAuthHeaders applies the request ID and bearer token headers.
func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set(headerRequestID, uuid.NewString())
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// decodeBody decodes a 2xx response body into out.
func decodeBody(body io.Reader, out any) error {
	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", domain.ErrMalformedResponse, err)
	}
	return nil
}

// do issues a request with the standard headers and returns the response.
// body may be nil; a non-nil body is JSON-encoded. The caller must close
// the response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	if err := c.limiterWait(ctx); err != nil {
		return nil, err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setAuthHeaders(req)

	logger.Debug("%s %s", method, u)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, readAPIError(resp)
	}

	return resp, nil
}

// doJSON issues a request and decodes the 2xx response body into out.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resp, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s %s response: %v", domain.ErrMalformedResponse, method, path, err)
	}
	return nil
}

// readAPIError drains a non-2xx response into an APIError. The server
// reports failures as {message}; a body that is not JSON still produces a
// usable error with just the status.
func readAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		apiErr.Message = payload.Message
	}

	logger.Warn("Request failed: %v", apiErr)
	return apiErr
}
