// Package chat dispatches chat completions against external OpenAI-compatible
// providers from the loaded provider configuration.
//
// Validation failures are distinguishable error kinds internally; the public
// Complete entry point converts every outcome into a uniform Result so raw
// errors never escape to the command layer.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/venxlabs/venx/pkg/credentials"
	"github.com/venxlabs/venx/pkg/httpx"
	"github.com/venxlabs/venx/pkg/providers"
)

const (
	// DefaultTemperature applies when a request does not set one.
	DefaultTemperature = 0.7

	// DefaultTimeout bounds a single completion call. Chat dispatch must
	// never run unbounded.
	DefaultTimeout = 30 * time.Second
)

var (
	// ErrProviderNotFound reports a provider id absent from the loaded
	// configuration. No network call is made.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrModelNotFound reports a model id the provider does not declare.
	ErrModelNotFound = errors.New("model not found")

	// ErrConfigInvalid reports a provider record unusable for dispatch,
	// such as a missing base_url.
	ErrConfigInvalid = errors.New("invalid provider configuration")
)

// Message is a single role/content pair in a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request describes one chat completion invocation.
type Request struct {
	ProviderID string
	ModelID    string
	Messages   []Message

	// Temperature is sent as-is when set; nil falls back to
	// DefaultTemperature. The pointer keeps an explicit 0 distinguishable
	// from unset.
	Temperature *float64

	MaxTokens int

	// Extra carries caller-supplied additional body parameters. Entries
	// with nil values are skipped.
	Extra map[string]any
}

// Result is the uniform outcome shape returned to the command layer.
type Result struct {
	Success    bool           `json:"success"`
	StatusCode int            `json:"status_code,omitempty"`
	Response   map[string]any `json:"response,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// Dispatcher validates and issues chat completions. It owns no global state;
// the provider store and HTTP session are passed in by the caller.
type Dispatcher struct {
	store   *providers.Store
	session *resty.Client
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures a Dispatcher created with NewDispatcher.
type Option func(*Dispatcher)

// WithSession overrides the default HTTP session.
func WithSession(session *resty.Client) Option {
	return func(d *Dispatcher) { d.session = session }
}

// WithTimeout overrides the per-call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) { d.timeout = timeout }
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// NewDispatcher creates a Dispatcher over the given provider store.
func NewDispatcher(store *providers.Store, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store:   store,
		logger:  slog.Default(),
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.session == nil {
		d.session = httpx.NewSession()
	}

	return d
}

// Complete validates the request, resolves credentials, issues the POST, and
// maps every outcome to a Result. Validation failures never touch the network.
func (d *Dispatcher) Complete(ctx context.Context, req Request) Result {
	response, status, err := d.complete(ctx, req)
	if err != nil {
		d.logger.Debug("chat completion failed",
			"provider", req.ProviderID,
			"model", req.ModelID,
			"error", err,
		)
		return Result{Success: false, StatusCode: status, Error: err.Error()}
	}

	return Result{Success: true, StatusCode: status, Response: response}
}

// complete runs the per-call validation chain and dispatch, unwinding with a
// typed error at the first failed step.
func (d *Dispatcher) complete(ctx context.Context, req Request) (map[string]any, int, error) {
	provider, ok := d.store.Provider(req.ProviderID)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q is not in the loaded configuration", ErrProviderNotFound, req.ProviderID)
	}

	if provider.BaseURL == "" {
		return nil, 0, fmt.Errorf("%w: no base_url for provider %q", ErrConfigInvalid, req.ProviderID)
	}

	secret, err := credentials.ResolveProvider(provider)
	if err != nil {
		return nil, 0, fmt.Errorf("resolving credential for provider %q: %w", req.ProviderID, err)
	}

	if err := validateModel(provider, req.ModelID); err != nil {
		return nil, 0, err
	}

	body := d.buildBody(req)

	callCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	resp, err := d.session.R().
		SetContext(callCtx).
		SetHeader("Authorization", "Bearer "+secret).
		SetBody(body).
		Post(provider.BaseURL + "/chat/completions")
	if err != nil {
		return nil, 0, fmt.Errorf("request to provider %q failed: %w", req.ProviderID, err)
	}

	if resp.StatusCode() != 200 {
		return nil, resp.StatusCode(), fmt.Errorf(
			"provider %q returned status %d: %s", req.ProviderID, resp.StatusCode(), resp.String())
	}

	var parsed map[string]any
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, resp.StatusCode(), fmt.Errorf("decoding response from provider %q: %w", req.ProviderID, err)
	}

	return parsed, resp.StatusCode(), nil
}

// buildBody assembles the OpenAI-compatible request payload.
func (d *Dispatcher) buildBody(req Request) map[string]any {
	temperature := DefaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	body := map[string]any{
		"model":       req.ModelID,
		"messages":    req.Messages,
		"temperature": temperature,
	}

	if req.MaxTokens > 0 {
		body["max_tokens"] = req.MaxTokens
	}

	for key, value := range req.Extra {
		if value != nil {
			body[key] = value
		}
	}

	return body
}

// validateModel checks that the model id is among the provider's declared
// models. The error enumerates the known ids for operator diagnosis.
func validateModel(provider providers.Provider, modelID string) error {
	available := make([]string, 0, len(provider.Models))
	for _, m := range provider.Models {
		if m.ID == modelID {
			return nil
		}
		available = append(available, m.ID)
	}

	return fmt.Errorf("%w: model %q not available for provider %q (available: %v)",
		ErrModelNotFound, modelID, provider.ID, available)
}
