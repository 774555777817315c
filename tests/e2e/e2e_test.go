//go:build e2e

// Package e2e provides end-to-end tests for the Catalyst Cloud Go SDK.
//
// These tests run against a real Catalyst Cloud deployment or a mock server.
// By default, they connect to http://localhost:4010 (Prism default).
//
// To run against a real deployment:
//
//	CATALYST_URL=https://staging.catalyst-neuromorphic.com \
//	CATALYST_API_KEY=cn_live_... \
//	CATALYST_REAL=1 go test -tags e2e ./tests/e2e
//
// Note: Some tests may fail with a mock because it does not persist state
// between requests. Set CATALYST_REAL=1 to run tests that require a real
// deployment.
package e2e

import (
	"context"
	"os"
	"testing"
	"time"

	catalyst "github.com/catalyst-neuromorphic/catalyst-go"
)

// getBaseURL returns the Catalyst Cloud base URL.
// It reads from the CATALYST_URL environment variable, defaulting to Prism's port.
func getBaseURL() string {
	if url := os.Getenv("CATALYST_URL"); url != "" {
		return url
	}
	return "http://localhost:4010" // Prism default
}

// getAPIKey returns the key used for authenticated calls.
func getAPIKey() string {
	if key := os.Getenv("CATALYST_API_KEY"); key != "" {
		return key
	}
	return "cn_live_e2e_test_key"
}

// isRealServer returns true if running against a real deployment.
// Set CATALYST_REAL=1 to indicate a real server.
func isRealServer() bool {
	return os.Getenv("CATALYST_REAL") == "1"
}

// skipIfMock skips the test if running against a mock server.
// Use this for tests that require real server behavior.
func skipIfMock(t *testing.T, reason string) {
	if !isRealServer() {
		t.Skipf("Skipping: %s (set CATALYST_REAL=1 for real server)", reason)
	}
}

// newTestClient creates a client configured for E2E testing.
func newTestClient() *catalyst.Client {
	return catalyst.NewClient(getAPIKey(),
		catalyst.WithBaseURL(getBaseURL()),
		catalyst.WithTimeout(30*time.Second),
	)
}

// newTestContext creates a context with a reasonable timeout for E2E tests.
func newTestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)
	return ctx
}
