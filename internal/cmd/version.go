package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soutech/shopctl/internal/render"
	"github.com/soutech/shopctl/internal/version"
)

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Show the shopctl version, commit, and build date.

With --check, also ping the backend's health endpoint to verify
connectivity.

Examples:
  shopctl version
  shopctl version --check
  shopctl version --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		check, _ := cmd.Flags().GetBool("check")

		f, err := render.NewFormatter(flagOutput, nil)
		if err != nil {
			return err
		}
		if err := f.Format(version.GetInfo()); err != nil {
			return err
		}

		if !check {
			return nil
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.client.Health(cmd.Context()); err != nil {
			fmt.Printf("Backend %s: unreachable\n", a.cfg.APIURL)
			return err
		}
		fmt.Printf("Backend %s: ok\n", a.cfg.APIURL)
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "ping the backend health endpoint")
	rootCmd.AddCommand(versionCmd)
}
