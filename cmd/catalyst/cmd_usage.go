package main

import (
	"github.com/spf13/cobra"
)

func newUsageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Print usage statistics for the current billing period",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			stats, err := client.Usage(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(stats)
		},
	}
}
