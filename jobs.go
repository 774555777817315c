package catalyst

import (
	"context"
	"net/http"
	"net/url"
)

// SubmitJob submits a simulation job without waiting for it (the returned
// snapshot has status "queued"). Poll [Client.GetJob] for progress, or use
// [Client.Simulate] to block until a terminal status.
func (c *Client) SubmitJob(ctx context.Context, req *JobRequest) (*Job, error) {
	if req == nil {
		return nil, &ValidationError{Field: "request", Message: "request is required"}
	}
	if req.NetworkID == "" {
		return nil, &ValidationError{Field: "network_id", Message: "network_id is required"}
	}
	if req.Timesteps < 1 {
		return nil, &ValidationError{Field: "timesteps", Message: "timesteps must be at least 1"}
	}

	body := *req
	if body.Stimuli == nil {
		body.Stimuli = []Stimulus{}
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, "/v1/jobs", body)
	if err != nil {
		return nil, err
	}

	var job Job
	if err := c.do(httpReq, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// GetJob returns the current snapshot of a job: status, summary result once
// completed, and billed compute time.
func (c *Client) GetJob(ctx context.Context, jobID string) (*Job, error) {
	if jobID == "" {
		return nil, &ValidationError{Field: "job_id", Message: "job_id is required"}
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/v1/jobs/"+url.PathEscape(jobID), nil)
	if err != nil {
		return nil, err
	}

	var job Job
	if err := c.do(req, &job); err != nil {
		return nil, err
	}
	if job.JobID == "" {
		job.JobID = jobID
	}
	return &job, nil
}

// GetSpikes returns the full spike-train data for a completed job. The
// server rejects the request with a not-ready condition while the job is
// still queued or running; that surfaces here as a [NotReadyError]. The data
// is fetched fresh on every call.
func (c *Client) GetSpikes(ctx context.Context, jobID string) (*SpikeTrains, error) {
	if jobID == "" {
		return nil, &ValidationError{Field: "job_id", Message: "job_id is required"}
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/v1/jobs/"+url.PathEscape(jobID)+"/spikes", nil)
	if err != nil {
		return nil, err
	}

	var trains SpikeTrains
	if err := c.do(req, &trains); err != nil {
		return nil, err
	}
	return &trains, nil
}
