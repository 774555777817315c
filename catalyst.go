// Package catalyst provides a Go SDK for the Catalyst Cloud API.
//
// Catalyst Cloud is a neuromorphic compute service: you define a spiking
// neural network, submit simulation jobs against it, and retrieve firing
// rates and spike trains once a job completes. All simulation runs server
// side; this SDK is a typed HTTP client.
//
// # Installation
//
// To install the SDK, use go get:
//
//	go get github.com/catalyst-neuromorphic/catalyst-go
//
// # Quick Start
//
// Sign up once to obtain an API key, then create a client and run a
// simulation:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    catalyst "github.com/catalyst-neuromorphic/catalyst-go"
//	)
//
//	func main() {
//	    ctx := context.Background()
//
//	    client := catalyst.NewClient("cn_live_...")
//
//	    network, err := client.CreateNetwork(ctx,
//	        []catalyst.Population{{Label: "in", Size: 100}},
//	        nil,
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    job, err := client.Simulate(ctx, &catalyst.JobRequest{
//	        NetworkID: network.NetworkID,
//	        Timesteps: 1000,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("total spikes: %d\n", job.Result.TotalSpikes)
//	}
//
// # Client Configuration
//
// The client can be configured using functional options:
//
//	client := catalyst.NewClient("cn_live_...",
//	    catalyst.WithBaseURL("https://staging.catalyst-neuromorphic.com"),
//	    catalyst.WithTimeout(time.Minute),
//	    catalyst.WithPollTimeout(10*time.Minute),
//	)
//
// All settings are fixed at construction time; the [Client] is immutable
// afterwards.
//
// # Blocking vs Non-Blocking
//
// [Client.SubmitJob] returns as soon as the server has queued the job.
// [Client.Simulate] is the blocking convenience wrapper: it submits the job
// and polls [Client.GetJob] until the job reaches a terminal status, honoring
// the caller's context for cancellation. Use SubmitJob/GetJob directly when
// you want to drive the poll loop yourself.
//
// # Error Handling
//
// Failures are reported as typed errors; match them with errors.As:
//
//	job, err := client.Simulate(ctx, req)
//	if err != nil {
//	    var jobErr *catalyst.JobFailedError
//	    var waitErr *catalyst.TimeoutError
//	    switch {
//	    case errors.As(err, &jobErr):
//	        // The simulation itself failed; jobErr.Reason has the server's
//	        // explanation.
//	    case errors.As(err, &waitErr):
//	        // We stopped waiting; the job may still be running server side.
//	    }
//	}
//
// See [AuthError], [RateLimitError], [ServerError], [NetworkError],
// [ValidationError], [NotReadyError], [JobFailedError] and [TimeoutError].
//
// # Thread Safety
//
// The [Client] is safe for concurrent use by multiple goroutines. Each
// method call is independent and does not share state.
//
// # API Version Compatibility
//
// This SDK version targets Catalyst Cloud API v1. Use [IsCompatible] to
// check a server-reported version against the supported range.
package catalyst
