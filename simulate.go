package catalyst

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// SimulateOption overrides the client's polling policy for a single call.
type SimulateOption func(*pollPolicy)

type pollPolicy struct {
	interval time.Duration
	maxWait  time.Duration
	retries  int
}

// SimulatePollInterval sets the delay between status checks for one call,
// overriding [WithPollInterval].
func SimulatePollInterval(d time.Duration) SimulateOption {
	return func(p *pollPolicy) {
		p.interval = d
	}
}

// SimulateMaxWait sets the overall wait bound for one call, overriding
// [WithPollTimeout].
func SimulateMaxWait(d time.Duration) SimulateOption {
	return func(p *pollPolicy) {
		p.maxWait = d
	}
}

// Simulate submits a job and blocks until it reaches a terminal status.
//
// On success the returned [Job] is the final server snapshot, with
// [Job.Result] exactly as reported by the last status check. A job that
// reaches the failed status yields a [JobFailedError] carrying the server's
// reason. If the job is still queued or running when the wait bound expires,
// Simulate returns a [TimeoutError]; the job keeps running server side, the
// client merely stops waiting.
//
// The wait is cooperative: each poll cycle suspends on a timer and on
// ctx.Done(), so cancelling the context interrupts the wait mid-interval and
// returns the context's error. A submit failure propagates immediately, with
// no polling attempted.
//
// Transient failures while polling (network, 5xx, rate limit) are retried a
// bounded number of consecutive times (see [WithPollRetries]) so a single
// dropped poll does not abort an otherwise healthy long-running wait.
func (c *Client) Simulate(ctx context.Context, req *JobRequest, opts ...SimulateOption) (*Job, error) {
	job, err := c.SubmitJob(ctx, req)
	if err != nil {
		return nil, err
	}
	return c.WaitForJob(ctx, job.JobID, opts...)
}

// WaitForJob polls an already-submitted job until it reaches a terminal
// status, with the same semantics as [Client.Simulate].
func (c *Client) WaitForJob(ctx context.Context, jobID string, opts ...SimulateOption) (*Job, error) {
	if jobID == "" {
		return nil, &ValidationError{Field: "job_id", Message: "job_id is required"}
	}

	policy := pollPolicy{
		interval: c.pollInterval,
		maxWait:  c.pollTimeout,
		retries:  c.pollRetries,
	}
	for _, opt := range opts {
		opt(&policy)
	}

	start := time.Now()
	failures := 0

	for {
		job, err := c.GetJob(ctx, jobID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if !retryable(err) || failures >= policy.retries {
				return nil, err
			}
			failures++

			delay := policy.interval
			var rateErr *RateLimitError
			if errors.As(err, &rateErr) {
				delay *= 2
				if rateErr.RetryAfter > 0 {
					delay = time.Duration(rateErr.RetryAfter) * time.Second
				}
			}

			c.logger.Debug("poll failed, retrying",
				zap.String("job_id", jobID),
				zap.Int("consecutive_failures", failures),
				zap.Duration("delay", delay),
				zap.Error(err))

			if time.Since(start) >= policy.maxWait {
				return nil, &TimeoutError{JobID: jobID, Waited: time.Since(start)}
			}
			if err := waitInterval(ctx, delay); err != nil {
				return nil, err
			}
			continue
		}
		failures = 0

		switch job.Status {
		case JobCompleted:
			c.logger.Debug("job completed",
				zap.String("job_id", jobID),
				zap.Duration("waited", time.Since(start)))
			return job, nil
		case JobFailed:
			reason := job.FailureReason()
			if reason == "" {
				reason = "job failed"
			}
			return nil, &JobFailedError{JobID: jobID, Reason: reason}
		}

		c.logger.Debug("job not terminal yet",
			zap.String("job_id", jobID),
			zap.String("status", job.Status))

		if time.Since(start) >= policy.maxWait {
			return nil, &TimeoutError{JobID: jobID, Waited: time.Since(start)}
		}
		if err := waitInterval(ctx, policy.interval); err != nil {
			return nil, err
		}
	}
}

// waitInterval suspends for d or until ctx is done, whichever comes first.
func waitInterval(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
