package catalyst

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the production Catalyst Cloud endpoint.
const DefaultBaseURL = "https://api.catalyst-neuromorphic.com"

const (
	defaultTimeout      = 30 * time.Second
	defaultPollInterval = 500 * time.Millisecond
	defaultPollTimeout  = 5 * time.Minute
	defaultPollRetries  = 3
)

// maxErrorBodySize limits the size of error response bodies read from the
// server. 4KB is sufficient for any detail message while bounding reads from
// a misbehaving server.
const maxErrorBodySize = 4096

// Client is the Catalyst Cloud API client.
//
// After creation the client is immutable and safe for concurrent use.
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	userAgent    string
	pollInterval time.Duration
	pollTimeout  time.Duration
	pollRetries  int
	logger       *zap.Logger
}

// NewClient creates a new Catalyst Cloud client authenticated with apiKey.
//
// Keys are issued by [Signup] and start with "cn_live_".
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:      DefaultBaseURL,
		apiKey:       apiKey,
		httpClient:   &http.Client{Timeout: defaultTimeout},
		userAgent:    "catalyst-go/" + Version,
		pollInterval: defaultPollInterval,
		pollTimeout:  defaultPollTimeout,
		pollRetries:  defaultPollRetries,
		logger:       zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// newRequest builds an HTTP request with auth and content headers. body, if
// non-nil, is JSON-encoded.
func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	u := strings.TrimRight(c.baseURL, "/") + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	// The documented auth scheme is the bearer header. Older server builds
	// only read X-API-Key, so both are sent.
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("X-API-Key", c.apiKey)
	}

	return req, nil
}

// do executes req and decodes a 2xx JSON response into out (which may be nil).
// Non-2xx responses are translated into the typed error taxonomy.
func (c *Client) do(req *http.Request, out any) error {
	c.logger.Debug("catalyst request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Caller cancellation is not a transport failure; hand back the
		// context's own error so errors.Is(err, context.Canceled) works.
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("catalyst response",
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorBody is the shape of the server's error responses.
type errorBody struct {
	Detail string `json:"detail"`
}

// decodeError maps a non-2xx response to a typed error. The server detail
// message is preserved verbatim.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	detail := strings.TrimSpace(string(raw))
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		detail = body.Detail
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthError{StatusCode: resp.StatusCode, Message: detail}
	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return &RateLimitError{RetryAfter: retryAfter, Message: detail}
	case resp.StatusCode == http.StatusConflict:
		return &NotReadyError{Message: detail}
	case resp.StatusCode >= 500:
		return &ServerError{StatusCode: resp.StatusCode, Message: detail}
	default:
		return &APIError{StatusCode: resp.StatusCode, Message: detail}
	}
}

// retryable reports whether err is a transient failure worth retrying during
// a poll loop. Terminal outcomes and caller errors are never retryable.
func retryable(err error) bool {
	var netErr *NetworkError
	var srvErr *ServerError
	var rateErr *RateLimitError
	return errors.As(err, &netErr) || errors.As(err, &srvErr) || errors.As(err, &rateErr)
}
