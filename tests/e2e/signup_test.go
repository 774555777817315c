//go:build e2e

package e2e

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalyst "github.com/catalyst-neuromorphic/catalyst-go"
)

// TestSignup_E2E creates a throwaway free-tier account.
func TestSignup_E2E(t *testing.T) {
	skipIfMock(t, "Requires real signup flow")

	ctx := newTestContext(t)

	email := fmt.Sprintf("e2e+%d@example.com", time.Now().UnixNano())
	account, err := catalyst.Signup(ctx, email, catalyst.TierFree,
		catalyst.WithBaseURL(getBaseURL()))
	require.NoError(t, err, "Signup should succeed")

	assert.NotEmpty(t, account.APIKey, "APIKey should not be empty")
	assert.Equal(t, catalyst.TierFree, account.Tier)
	t.Logf("Account created: tier=%s jobs_per_day=%d", account.Tier, account.Limits.JobsPerDay)
}
