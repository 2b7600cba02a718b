// Package venice is the client for the Venice AI API: image generation and
// upscaling, the model catalog, API key verification, and Raycast provider
// config generation.
package venice

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/go-resty/resty/v2"

	"github.com/venxlabs/venx/pkg/httpx"
)

const (
	// DefaultBaseURL is the production Venice API endpoint.
	DefaultBaseURL = "https://api.venice.ai/api/v1"

	// EnvAPIKey is the environment variable holding the Venice API key.
	EnvAPIKey = "VENICE_API_KEY"

	generatePath = "/image/generate"
	upscalePath  = "/image/upscale"
	modelsPath   = "/models"
	chatPath     = "/chat/completions"
)

// ErrNoAPIKey reports a client constructed without a key.
var ErrNoAPIKey = errors.New("API key not provided: pass --api-key or set " + EnvAPIKey)

// ErrNoImageData reports a generation response carrying no image payload.
var ErrNoImageData = errors.New("no image data found in response")

// Client talks to the Venice API. It owns no global state; the HTTP session
// and logger are passed in by the caller.
type Client struct {
	apiKey  string
	baseURL string
	session *resty.Client
	logger  *slog.Logger

	// seq disambiguates artifact stems minted within the same second.
	seq atomic.Int64
}

// Option configures a Client created with NewClient.
type Option func(*Client)

// WithBaseURL overrides the production endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithSession overrides the default HTTP session.
func WithSession(session *resty.Client) Option {
	return func(c *Client) { c.session = session }
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a Venice API client with the given key.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.session == nil {
		c.session = httpx.NewSession()
	}

	return c, nil
}

// APIError is a non-2xx response from the Venice API. It carries everything
// an operator needs to diagnose the failure: status, raw body, the request id
// from the response headers, and the parsed JSON error body when present.
type APIError struct {
	Status    int
	RequestID string
	Body      string
	JSON      map[string]any
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("venice API returned status %d", e.Status)
	if e.RequestID != "" {
		msg += fmt.Sprintf(" (request id %s)", e.RequestID)
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// apiError builds an APIError from a failed response.
func apiError(resp *resty.Response) *APIError {
	apiErr := &APIError{
		Status:    resp.StatusCode(),
		RequestID: requestID(resp),
		Body:      resp.String(),
	}

	var parsed map[string]any
	if json.Unmarshal(resp.Body(), &parsed) == nil {
		apiErr.JSON = parsed
	}

	return apiErr
}

// requestID extracts the request id header in either casing Venice uses.
func requestID(resp *resty.Response) string {
	if id := resp.Header().Get("x-request-id"); id != "" {
		return id
	}
	return resp.Header().Get("X-Request-ID")
}

// authorized returns a request carrying the bearer token.
func (c *Client) authorized() *resty.Request {
	return c.session.R().SetHeader("Authorization", "Bearer "+c.apiKey)
}
