package main

import (
	"fmt"

	catalyst "github.com/catalyst-neuromorphic/catalyst-go"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print SDK and target API versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("catalyst-go %s (API %s, supported range %s)\n",
				catalyst.Version, catalyst.APIVersion, catalyst.APIVersionRange)
			return nil
		},
	}
}
