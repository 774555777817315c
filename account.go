package catalyst

import (
	"context"
	"net/http"

	"github.com/go-openapi/strfmt"
)

type signupRequest struct {
	Email string `json:"email"`
	Tier  string `json:"tier"`
}

// Signup creates a new account and returns its API key.
//
// This is the only unauthenticated call; use the returned [Account.APIKey]
// with [NewClient] for everything else. tier defaults to [TierFree] when
// empty; paid tiers return a checkout URL that must be completed before the
// key activates.
//
// Options apply to the one-off client used for the call, so a non-default
// endpoint is selected the usual way:
//
//	account, err := catalyst.Signup(ctx, "ada@example.com", catalyst.TierFree,
//	    catalyst.WithBaseURL("https://staging.catalyst-neuromorphic.com"),
//	)
func Signup(ctx context.Context, email, tier string, opts ...Option) (*Account, error) {
	if email == "" {
		return nil, &ValidationError{Field: "email", Message: "email is required"}
	}
	if !strfmt.IsEmail(email) {
		return nil, &ValidationError{Field: "email", Message: "not a valid email address"}
	}
	if tier == "" {
		tier = TierFree
	}

	c := NewClient("", opts...)
	req, err := c.newRequest(ctx, http.MethodPost, "/v1/signup", signupRequest{Email: email, Tier: tier})
	if err != nil {
		return nil, err
	}

	var account Account
	if err := c.do(req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Usage returns usage statistics for the current billing period.
func (c *Client) Usage(ctx context.Context) (*UsageStats, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1/usage", nil)
	if err != nil {
		return nil, err
	}

	var stats UsageStats
	if err := c.do(req, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
