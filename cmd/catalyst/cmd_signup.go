package main

import (
	"fmt"

	catalyst "github.com/catalyst-neuromorphic/catalyst-go"
	"github.com/spf13/cobra"
)

func newSignupCmd() *cobra.Command {
	var tier string

	cmd := &cobra.Command{
		Use:   "signup <email>",
		Short: "Create an account and obtain an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := catalyst.Signup(cmd.Context(), args[0], tier, clientOptions(cmd)...)
			if err != nil {
				return err
			}

			if err := printJSON(account); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Store the api_key securely; it cannot be retrieved again.")
			if account.CheckoutURL != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Complete checkout to activate the key: %s\n", account.CheckoutURL)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tier, "tier", catalyst.TierFree, "Pricing tier (free, researcher, startup, enterprise)")

	return cmd
}
