package catalyst

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the production endpoint, e.g. to target a staging
// deployment or a local mock server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client. The client's own Timeout is
// used as-is; WithTimeout applied after this option overrides it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithPollInterval sets the delay between successive job status checks in
// [Client.Simulate].
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) {
		c.pollInterval = d
	}
}

// WithPollTimeout sets the maximum wall-clock time [Client.Simulate] waits
// for a job to reach a terminal status before returning a [TimeoutError].
func WithPollTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.pollTimeout = d
	}
}

// WithPollRetries sets how many consecutive transient failures (network,
// rate-limit, 5xx) a poll loop tolerates before surfacing the error. A
// successful poll resets the budget. Set 0 to surface the first failure.
func WithPollRetries(n int) Option {
	return func(c *Client) {
		c.pollRetries = n
	}
}

// WithLogger installs a logger for debug-level request and poll tracing.
// The default is a nop logger; the SDK never logs unless one is supplied.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
