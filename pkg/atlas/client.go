// Package atlas provides the authenticated HTTP client used by all
// Purview data-plane operations. It handles auth header injection,
// request correlation IDs, JSON codec, and retry of transient failures.
package atlas

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/catalogkit/purview-go/pkg/auth"
)

// Client is an authenticated JSON client for a single Purview account.
type Client struct {
	config   *Config
	client   *http.Client
	provider auth.Provider
	logger   hclog.Logger
}

// NewClient creates a client for the account described by cfg, using
// provider for bearer tokens.
func NewClient(cfg *Config, provider auth.Provider, logger hclog.Logger) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultConfig().MaxRetries
	}
	if cfg.RetryInterval == 0 {
		cfg.RetryInterval = DefaultConfig().RetryInterval
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}
	if provider == nil {
		return nil, fmt.Errorf("auth provider is required")
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Client{
		config:   cfg,
		client:   cfg.NewHTTPClient(),
		provider: provider,
		logger:   logger.Named("atlas"),
	}, nil
}

// Endpoint returns the configured account endpoint.
func (c *Client) Endpoint() string {
	return c.config.Endpoint
}

// transientError marks an error as retryable for the backoff loop.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// Do executes a JSON request against the account endpoint. path is
// appended to the endpoint; query parameters are encoded from query.
// When body is non-nil it is marshaled as the JSON request body; when
// result is non-nil the response body is unmarshaled into it.
//
// Network errors and 5xx responses are retried with exponential
// backoff up to MaxRetries; other non-2xx responses return *APIError
// immediately.
func (c *Client) Do(ctx context.Context, method, path string, query map[string]string, body, result interface{}) error {
	endpoint, err := c.buildURL(path, query)
	if err != nil {
		return err
	}

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	return c.execute(ctx, method, endpoint, payload, result)
}

// DoURL is like Do but takes a fully formed URL rather than a path
// relative to the endpoint. Pagination follows nextLink URLs returned
// by the service, which are already absolute.
func (c *Client) DoURL(ctx context.Context, method, rawURL string, result interface{}) error {
	return c.execute(ctx, method, rawURL, nil, result)
}

// execute runs one logical request, retrying transient failures with
// exponential backoff. The correlation id stays stable across retries
// of the same logical request.
func (c *Client) execute(ctx context.Context, method, endpoint string, payload []byte, result interface{}) error {
	requestID := uuid.New().String()

	policy := backoff.WithContext(backoff.WithMaxRetries(
		backoff.NewExponentialBackOff(
			backoff.WithInitialInterval(c.config.RetryInterval),
		),
		uint64(c.config.MaxRetries),
	), ctx)

	err := backoff.Retry(func() error {
		opErr := c.doOnce(ctx, method, endpoint, requestID, payload, result)
		if opErr == nil {
			return nil
		}
		var transient *transientError
		if errors.As(opErr, &transient) {
			c.logger.Debug("retrying transient failure",
				"method", method,
				"url", endpoint,
				"request_id", requestID,
				"error", transient.err,
			)
			return opErr
		}
		return backoff.Permanent(opErr)
	}, policy)

	var transient *transientError
	if errors.As(err, &transient) {
		return transient.err
	}
	return err
}

func (c *Client) doOnce(ctx context.Context, method, endpoint, requestID string, payload []byte, result interface{}) error {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	token, err := c.provider.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to get auth token: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-ms-client-request-id", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &transientError{err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &transientError{err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newAPIError(resp.StatusCode, requestID, respBody)
		if resp.StatusCode >= 500 {
			return &transientError{err: apiErr}
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) buildURL(path string, query map[string]string) (string, error) {
	u, err := url.Parse(c.config.Endpoint + path)
	if err != nil {
		return "", fmt.Errorf("invalid request URL: %w", err)
	}

	if len(query) > 0 {
		q := u.Query()
		for k, v := range query {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
