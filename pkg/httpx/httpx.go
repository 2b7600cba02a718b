// Package httpx builds the preconfigured HTTP session every outward venx
// network call goes through. Sessions carry bounded retries with exponential
// backoff, connect and read timeouts, a fixed identifying user-agent, and a
// short random jitter before each dispatch.
package httpx

import (
	"math/rand"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// UserAgent identifies venx on every outgoing request.
	UserAgent = "venx-cli/1.0"

	// DefaultConnectTimeout bounds the connection phase of a request.
	DefaultConnectTimeout = 10 * time.Second

	// DefaultReadTimeout bounds the full request including the response body.
	DefaultReadTimeout = 120 * time.Second

	// retryCount is the maximum number of retry attempts after the first try.
	retryCount = 5

	// retryWaitMin is the initial backoff; resty doubles it per attempt.
	retryWaitMin = 500 * time.Millisecond

	// retryWaitMax caps the backoff at the fifth attempt (0.5s * 2^4).
	retryWaitMax = 8 * time.Second

	// maxJitter is the upper bound of the random pre-dispatch sleep.
	maxJitter = 50 * time.Millisecond
)

// retryStatuses are the HTTP statuses eligible for transparent retry.
var retryStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// config holds the resolved session settings built up from Options.
type config struct {
	baseURL        string
	connectTimeout time.Duration
	readTimeout    time.Duration
	jitter         bool
}

// Option configures a session created with NewSession.
type Option func(*config)

// WithBaseURL sets the base URL prepended to request paths.
func WithBaseURL(u string) Option {
	return func(c *config) { c.baseURL = u }
}

// WithConnectTimeout overrides the default 10s connect timeout.
func WithConnectTimeout(d time.Duration) Option {
	return func(c *config) { c.connectTimeout = d }
}

// WithReadTimeout overrides the default 120s read timeout.
func WithReadTimeout(d time.Duration) Option {
	return func(c *config) { c.readTimeout = d }
}

// WithoutJitter disables the random pre-dispatch sleep. Tests use this to
// keep retry timing deterministic.
func WithoutJitter() Option {
	return func(c *config) { c.jitter = false }
}

// NewSession returns a resty client preconfigured with the venx retry,
// timeout, and header policy. Retries apply only to GET and POST requests,
// either on a transport-level failure or on a retryable status; once retries
// exhaust, the transport error or final response propagates to the caller.
func NewSession(opts ...Option) *resty.Client {
	c := &config{
		connectTimeout: DefaultConnectTimeout,
		readTimeout:    DefaultReadTimeout,
		jitter:         true,
	}

	for _, opt := range opts {
		opt(c)
	}

	client := resty.New().
		SetTransport(&http.Transport{
			DialContext: (&net.Dialer{
				Timeout: c.connectTimeout,
			}).DialContext,
		}).
		SetTimeout(c.readTimeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWaitMin).
		SetRetryMaxWaitTime(retryWaitMax).
		AddRetryCondition(shouldRetry).
		SetHeaders(map[string]string{
			"User-Agent":   UserAgent,
			"Accept":       "application/json",
			"Content-Type": "application/json",
		})

	if c.baseURL != "" {
		client.SetBaseURL(c.baseURL)
	}

	if c.jitter {
		client.OnBeforeRequest(func(_ *resty.Client, _ *resty.Request) error {
			time.Sleep(time.Duration(rand.Int63n(int64(maxJitter))))
			return nil
		})
	}

	return client
}

// shouldRetry reports whether a request attempt is eligible for retry:
// GET/POST only, on transport failure or a retryable status.
func shouldRetry(r *resty.Response, err error) bool {
	if r == nil || r.Request == nil {
		return err != nil
	}

	method := r.Request.Method
	if method != http.MethodGet && method != http.MethodPost {
		return false
	}

	if err != nil {
		return true
	}

	return retryStatuses[r.StatusCode()]
}
