package ocean

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bluetide-io/bluetide/internal/transport"
)

// Logger is the structured logging interface the client reports through.
// It matches common logging facades so adapters stay one method deep.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client executes built requests against the API. It is safe for concurrent
// use.
type Client struct {
	transport *transport.Client
}

type config struct {
	endpoint     string
	userAgent    string
	logger       Logger
	debug        bool
	retryEnabled bool
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

// Option configures a Client during New.
type Option func(*config)

// WithEndpoint rebases executed requests onto a different API host, leaving
// request construction untouched. Useful for test servers and proxies.
func WithEndpoint(endpoint string) Option {
	return func(c *config) {
		c.endpoint = endpoint
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *config) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *config) {
		c.debug = debug
	}
}

// WithRetryConfig enables retries on transient failures and 429/5xx
// responses. Retries are off by default.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *config) {
		c.retryEnabled = true
		c.retryMax = maxRetries
		c.retryWaitMin = waitMin
		c.retryWaitMax = waitMax
	}
}

// New creates a Client authenticating with the given personal access token.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrTokenRequired
	}

	cfg := &config{endpoint: RootURL}
	for _, opt := range opts {
		opt(cfg)
	}

	parsed, err := url.Parse(cfg.endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEndpoint, cfg.endpoint)
	}

	transportOpts := []transport.Option{}
	if cfg.userAgent != "" {
		transportOpts = append(transportOpts, transport.WithUserAgent(cfg.userAgent))
	}

	if cfg.logger != nil {
		transportOpts = append(transportOpts, transport.WithLogger(cfg.logger))
	}

	if cfg.debug {
		transportOpts = append(transportOpts, transport.WithDebug(true))
	}

	if cfg.retryEnabled {
		transportOpts = append(transportOpts, transport.WithRetryConfig(cfg.retryMax, cfg.retryWaitMin, cfg.retryWaitMax))
	}

	return &Client{
		transport: transport.NewClient(cfg.endpoint, token, transportOpts...),
	}, nil
}

// Execute performs the single HTTP round trip a built request describes and
// decodes the response into the value type the request promises. The verb
// and the envelope key both follow from the request's type parameters, so a
// request cannot be executed with the wrong verb or decoded into the wrong
// shape.
//
// Failures are classified: *TransportError when no response was produced,
// *APIError for non-success statuses, *DecodeError when a payload could not
// be encoded or the response body does not match the promised shape.
func Execute[M Method, V ResponseValue](ctx context.Context, client *Client, req *Request[M, V]) (V, error) {
	var zero V

	var method M

	treq := &transport.Request{
		Method: method.verb(),
		Path:   strings.TrimPrefix(req.target.Path, apiRoot.Path),
		Query:  req.target.Query(),
	}

	if method.expectsBody() && req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return zero, &DecodeError{Err: fmt.Errorf("encoding request body: %w", err)}
		}

		treq.Body = encoded
	}

	resp, err := client.transport.Do(ctx, treq)
	if err != nil {
		return zero, &TransportError{Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return zero, parseAPIError(resp.StatusCode, resp.Body)
	}

	key := zero.responseKey()
	if key == "" || resp.StatusCode == http.StatusNoContent || len(resp.Body) == 0 {
		return zero, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return zero, &DecodeError{Key: key, Err: fmt.Errorf("parsing response envelope: %w", err)}
	}

	raw, ok := envelope[key]
	if !ok {
		return zero, &DecodeError{Key: key, Err: ErrMissingEnvelopeKey}
	}

	var value V
	if err := json.Unmarshal(raw, &value); err != nil {
		return zero, &DecodeError{Key: key, Err: fmt.Errorf("parsing response value: %w", err)}
	}

	return value, nil
}
