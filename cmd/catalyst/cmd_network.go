package main

import (
	catalyst "github.com/catalyst-neuromorphic/catalyst-go"
	"github.com/spf13/cobra"
)

func newNetworkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Manage spiking network definitions",
	}

	cmd.AddCommand(newNetworkCreateCmd(), newNetworkValidateCmd())

	return cmd
}

func newNetworkCreateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a network on the server from a YAML definition",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			network, err := client.CreateNetworkFromFile(cmd.Context(), file)
			if err != nil {
				return err
			}
			return printJSON(network)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the network definition YAML (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newNetworkValidateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a YAML network definition locally, without an API call",
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := catalyst.LoadNetworkFile(file)
			if err != nil {
				return err
			}
			return printJSON(def)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the network definition YAML (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
