package catalyst_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	catalyst "github.com/catalyst-neuromorphic/catalyst-go"
)

// TestErrorMessages spot-checks that each error type carries enough context
// to diagnose without inspecting internals.
func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err      error
		contains []string
	}{
		{&catalyst.APIError{StatusCode: 404, Message: "Job not found"}, []string{"404", "Job not found"}},
		{&catalyst.AuthError{StatusCode: 401, Message: "Invalid API key"}, []string{"401", "Invalid API key"}},
		{&catalyst.RateLimitError{RetryAfter: 30, Message: "quota"}, []string{"30s", "quota"}},
		{&catalyst.ServerError{StatusCode: 503, Message: "down"}, []string{"503", "down"}},
		{&catalyst.ValidationError{Field: "email", Message: "required"}, []string{"email", "required"}},
		{&catalyst.NotReadyError{Message: "status queued"}, []string{"not ready", "queued"}},
		{&catalyst.JobFailedError{JobID: "job_1", Reason: "OOM"}, []string{"job_1", "OOM"}},
		{&catalyst.TimeoutError{JobID: "job_1", Waited: 5 * time.Minute}, []string{"job_1", "5m"}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%T", tt.err), func(t *testing.T) {
			for _, want := range tt.contains {
				assert.Contains(t, tt.err.Error(), want)
			}
		})
	}
}

// TestNetworkError_Unwrap verifies the transport cause stays reachable.
func TestNetworkError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &catalyst.NetworkError{Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}
