// Package api provides the authenticated REST client for the back-office
// commerce backend. Every endpoint responds with the envelope
// {success, message, data}; each resource sub-client decodes that into an
// explicit typed response, so server-reported business failures are plain
// values while transport failures are errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/commercia/backoffice/internal/session"
	"github.com/commercia/backoffice/pkg/logger"
)

// requestIDHeader correlates console requests in backend logs.
const requestIDHeader = "X-Request-ID"

// Status is the success/message pair every backend endpoint reports.
type Status struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Client is the core REST client. Resource sub-clients share its
// transport, base URL, and session-backed header builder.
type Client struct {
	baseURL    string
	session    session.Store
	httpClient *http.Client
	retry      RetryConfig
	log        *logger.Logger
}

// Config holds client configuration.
type Config struct {
	// BaseURL is the backend root, without a trailing slash. Required.
	BaseURL string
	// Session supplies the bearer token for authorized calls. Required.
	Session session.Store
	// HTTPClient overrides the default transport.
	HTTPClient *http.Client
	// Timeout applies when HTTPClient is nil.
	Timeout time.Duration
	// Retry governs re-attempts of read calls on transient failures.
	Retry RetryConfig
	Log   *logger.Logger
}

// New creates a backend client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("BaseURL is required")
	}
	if cfg.Session == nil {
		return nil, fmt.Errorf("Session is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	retry := cfg.Retry
	if retry.MaxRetries == 0 && retry.InitialBackoff == 0 {
		retry = DefaultRetryConfig()
	}

	log := cfg.Log
	if log == nil {
		log = logger.NewDefault("api")
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		session:    cfg.Session,
		httpClient: httpClient,
		retry:      retry,
		log:        log,
	}, nil
}

// Auth returns the login/logout client.
func (c *Client) Auth() *AuthClient { return &AuthClient{client: c} }

// Buyers returns the buyer resource client.
func (c *Client) Buyers() *BuyerClient { return &BuyerClient{client: c} }

// Products returns the product resource client.
func (c *Client) Products() *ProductClient { return &ProductClient{client: c} }

// Orders returns the order resource client.
func (c *Client) Orders() *OrderClient { return &OrderClient{client: c} }

// OrderDetails returns the order-detail resource client.
func (c *Client) OrderDetails() *OrderDetailClient { return &OrderDetailClient{client: c} }

// Users returns the administrative-user resource client.
func (c *Client) Users() *UserClient { return &UserClient{client: c} }

// APIError is a transport-level failure: the request never completed, or
// the backend answered outside the 2xx range.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

// do executes an authorized JSON call and decodes the response envelope
// into out. Server-reported failures (success=false on a 2xx response)
// are not errors here; callers branch on the decoded Status.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	return c.roundTrip(ctx, method, path, body, out, true)
}

// doUnauth is do without the Authorization header; login is the one call
// that uses it.
func (c *Client) doUnauth(ctx context.Context, method, path string, body, out interface{}) error {
	return c.roundTrip(ctx, method, path, body, out, false)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body, out interface{}, authorized bool) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
	}

	// Only reads are re-attempted; replaying a mutation on an ambiguous
	// failure could double-apply it.
	attempts := 1
	if method == http.MethodGet {
		attempts += c.retry.MaxRetries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			backoff := c.retry.backoffFor(attempt - 1)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			c.log.WithField("path", path).
				WithField("attempt", attempt).
				Debug("retrying request")
		}

		done, err := c.attempt(ctx, method, path, payload, out, authorized)
		if done {
			return err
		}
		lastErr = err
	}
	return lastErr
}

// attempt performs one round trip. done=false means the failure is
// retryable.
func (c *Client) attempt(ctx context.Context, method, path string, payload []byte, out interface{}, authorized bool) (bool, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return true, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req, payload != nil, authorized)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport errors on reads are worth another attempt.
		return false, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return true, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
		return !c.retry.retryable(resp.StatusCode), apiErr
	}

	if out == nil {
		return true, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return true, fmt.Errorf("decode response: %w", err)
	}
	return true, nil
}

func (c *Client) setHeaders(req *http.Request, hasBody, authorized bool) {
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())

	if !authorized {
		return
	}
	if token := stripQuotes(c.session.Token()); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

var quoteStripper = strings.NewReplacer(`"`, "", `'`, "")

// stripQuotes removes quote characters from a stored token. The web
// console persisted the token JSON-encoded, so stored values may carry
// literal quotes around them.
func stripQuotes(token string) string {
	return quoteStripper.Replace(token)
}

// errorMessage pulls a human-readable message out of an error body. The
// backend uses {"error": ...} for auth failures and the usual envelope
// message elsewhere.
func errorMessage(data []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return strings.TrimSpace(string(data))
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}
