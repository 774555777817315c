package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	catalyst "github.com/catalyst-neuromorphic/catalyst-go"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	// Pick up CATALYST_API_KEY from a local .env if present.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "catalyst",
		Short: "Catalyst Cloud - neuromorphic simulation from the command line",
		Long: `catalyst drives the Catalyst Cloud API: sign up for an API key,
define spiking networks from YAML files, run simulations, and fetch
results and spike trains.

Authentication reads CATALYST_API_KEY from the environment or a .env
file in the working directory.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("base-url", catalyst.DefaultBaseURL, "API base URL")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "Per-request timeout")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(
		newSignupCmd(),
		newNetworkCmd(),
		newSimulateCmd(),
		newJobCmd(),
		newUsageCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// clientOptions translates the persistent flags into SDK options.
func clientOptions(cmd *cobra.Command) []catalyst.Option {
	baseURL, _ := cmd.Flags().GetString("base-url")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	verbose, _ := cmd.Flags().GetBool("verbose")

	opts := []catalyst.Option{
		catalyst.WithBaseURL(baseURL),
		catalyst.WithTimeout(timeout),
	}
	if verbose {
		if logger, err := zap.NewDevelopment(); err == nil {
			opts = append(opts, catalyst.WithLogger(logger))
		}
	}
	return opts
}

// newClient builds an authenticated SDK client from flags and environment.
func newClient(cmd *cobra.Command) (*catalyst.Client, error) {
	apiKey := os.Getenv("CATALYST_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("CATALYST_API_KEY is not set (export it or add it to .env)")
	}
	return catalyst.NewClient(apiKey, clientOptions(cmd)...), nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
