package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	catalyst "github.com/catalyst-neuromorphic/catalyst-go"
	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	var (
		networkID    string
		timesteps    int
		stimuli      []string
		pollInterval time.Duration
		maxWait      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Submit a job and wait for it to complete",
		Long: `simulate submits a simulation job and blocks until the job reaches a
terminal status, then prints the final job snapshot as JSON.

Stimuli are given as population=current pairs, repeatable:

  catalyst simulate --network net_123 --timesteps 1000 \
      --stimulus in=120 --stimulus ctx=80`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			parsed, err := parseStimuli(stimuli)
			if err != nil {
				return err
			}

			job, err := client.Simulate(cmd.Context(), &catalyst.JobRequest{
				NetworkID: networkID,
				Timesteps: timesteps,
				Stimuli:   parsed,
			},
				catalyst.SimulatePollInterval(pollInterval),
				catalyst.SimulateMaxWait(maxWait),
			)
			if err != nil {
				return err
			}
			return printJSON(job)
		},
	}

	cmd.Flags().StringVar(&networkID, "network", "", "Network ID to simulate (required)")
	cmd.Flags().IntVar(&timesteps, "timesteps", 1000, "Number of simulation timesteps")
	cmd.Flags().StringArrayVar(&stimuli, "stimulus", nil, "Stimulus as population=current, repeatable")
	cmd.Flags().DurationVar(&pollInterval, "poll-interval", 500*time.Millisecond, "Delay between status checks")
	cmd.Flags().DurationVar(&maxWait, "max-wait", 5*time.Minute, "Give up waiting after this long")
	_ = cmd.MarkFlagRequired("network")

	return cmd
}

func parseStimuli(pairs []string) ([]catalyst.Stimulus, error) {
	stimuli := make([]catalyst.Stimulus, 0, len(pairs))
	for _, pair := range pairs {
		label, current, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid stimulus %q: expected population=current", pair)
		}
		value, err := strconv.ParseFloat(current, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid stimulus current %q: %w", current, err)
		}
		stimuli = append(stimuli, catalyst.Stimulus{Population: label, Current: value})
	}
	return stimuli, nil
}
