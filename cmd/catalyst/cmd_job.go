package main

import (
	"time"

	catalyst "github.com/catalyst-neuromorphic/catalyst-go"
	"github.com/spf13/cobra"
)

func newJobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Inspect simulation jobs",
	}

	cmd.AddCommand(newJobGetCmd(), newJobSpikesCmd(), newJobWaitCmd())

	return cmd
}

func newJobGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <job-id>",
		Short: "Print the current job snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			job, err := client.GetJob(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(job)
		},
	}
}

func newJobSpikesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spikes <job-id>",
		Short: "Print the full spike trains of a completed job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			trains, err := client.GetSpikes(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(trains)
		},
	}
}

func newJobWaitCmd() *cobra.Command {
	var (
		pollInterval time.Duration
		maxWait      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "wait <job-id>",
		Short: "Block until a job reaches a terminal status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			job, err := client.WaitForJob(cmd.Context(), args[0],
				catalyst.SimulatePollInterval(pollInterval),
				catalyst.SimulateMaxWait(maxWait),
			)
			if err != nil {
				return err
			}
			return printJSON(job)
		},
	}

	cmd.Flags().DurationVar(&pollInterval, "poll-interval", 500*time.Millisecond, "Delay between status checks")
	cmd.Flags().DurationVar(&maxWait, "max-wait", 5*time.Minute, "Give up waiting after this long")

	return cmd
}
