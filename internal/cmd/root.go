// Package cmd wires the shopctl command tree: the public storefront
// commands, the account surface, and the admin panel.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/soutech/shopctl/internal/log"
)

var (
	flagVerbose bool
	flagOutput  string
	flagAPIURL  string
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "shopctl",
	Short: "Terminal storefront client",
	Long: `shopctl is a terminal client for the storefront backend.
Browse the catalog, manage a locally persisted cart, check out through the
payment provider, and administer products and users with an admin account.

The cart and session live under ~/.shopctl and survive between runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.SetDefaultLogger(log.Verbose())
		}
	},
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "output format (text, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "backend base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.shopctl/config.yaml)")
}
