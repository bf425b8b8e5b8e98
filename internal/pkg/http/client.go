package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/groomer/internal/pkg/circuitbreaker"
	"github.com/piresc/groomer/internal/pkg/logger"
	"github.com/piresc/groomer/internal/pkg/retry"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 10 * time.Second
	// RequestIDHeader correlates client and backend logs
	RequestIDHeader = "X-Request-ID"
)

// Config configures the backend client
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// TokenProvider supplies the bearer token for outgoing requests
type TokenProvider interface {
	CurrentToken() string
}

// Client is a JSON client for the groomer backend. Every request carries
// the current bearer token, and every 401 fires the unauthorized hook.
type Client struct {
	baseURL    string
	host       string
	httpClient *nethttp.Client
	retrier    *retry.Retrier
	breakers   *circuitbreaker.Hosts
	logger     *logger.ZapLogger

	mu             sync.RWMutex
	tokens         TokenProvider
	onUnauthorized func(ctx context.Context)
}

// NewClient creates a new backend client
func NewClient(config Config, log *logger.ZapLogger) *Client {
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.GetGlobalLogger()
	}

	retryPolicy := retry.DefaultPolicy()
	retryPolicy.MaxRetries = config.MaxRetries
	retryPolicy.Retryable = IsTransient

	breakerSettings := circuitbreaker.DefaultSettings()
	breakerSettings.Counts = func(err error) bool {
		return IsTransient(err) && !errors.Is(err, context.Canceled)
	}

	baseURL := strings.TrimRight(config.BaseURL, "/")
	host := baseURL
	if req, err := nethttp.NewRequest(nethttp.MethodGet, baseURL, nil); err == nil && req.URL.Host != "" {
		host = req.URL.Host
	}

	return &Client{
		baseURL: baseURL,
		host:    host,
		httpClient: &nethttp.Client{
			Timeout: config.Timeout,
		},
		retrier:  retry.New(retryPolicy, log),
		breakers: circuitbreaker.NewHosts(breakerSettings, log),
		logger:   log,
	}
}

// SetTokenProvider sets the source of the Authorization header
func (c *Client) SetTokenProvider(p TokenProvider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = p
}

// OnUnauthorized registers fn to run after any 401 response
func (c *Client) OnUnauthorized(fn func(ctx context.Context)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

// GetJSON performs a GET request and decodes the JSON response into out
func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	return c.Do(ctx, nethttp.MethodGet, path, nil, out)
}

// PostJSON performs a POST request with a JSON body
func (c *Client) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, nethttp.MethodPost, path, body, out)
}

// PutJSON performs a PUT request with a JSON body
func (c *Client) PutJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, nethttp.MethodPut, path, body, out)
}

// PatchJSON performs a PATCH request with a JSON body
func (c *Client) PatchJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, nethttp.MethodPatch, path, body, out)
}

// Do sends one request through the host's circuit breaker. GETs are
// retried on transport failures and 5xx responses; other methods are not
// idempotent on this backend and run once.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	attempt := func(ctx context.Context) error {
		return c.doOnce(ctx, method, path, payload, out)
	}

	return c.breakers.For(c.host).Execute(ctx, func(ctx context.Context) error {
		if method == nethttp.MethodGet {
			return c.retrier.Execute(ctx, attempt)
		}
		return attempt(ctx)
	})
}

func (c *Client) doOnce(ctx context.Context, method, path string, payload []byte, out interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	requestID := logger.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set(RequestIDHeader, requestID)

	c.mu.RLock()
	tokens := c.tokens
	c.mu.RUnlock()
	if tokens != nil {
		if token := tokens.CurrentToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("HTTP request failed",
			logger.String("request_id", requestID),
			logger.String("method", method),
			logger.String("path", path),
			logger.Err(err))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("HTTP request completed",
		logger.String("request_id", requestID),
		logger.String("method", method),
		logger.String("path", path),
		logger.Int("status_code", resp.StatusCode))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == nethttp.StatusUnauthorized {
		c.mu.RLock()
		hook := c.onUnauthorized
		c.mu.RUnlock()
		if hook != nil {
			hook(ctx)
		}
	}

	if resp.StatusCode >= 400 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw),
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage extracts the backend's "message" (or "error") field
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
