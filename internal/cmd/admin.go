package cmd

import (
	"github.com/spf13/cobra"

	"github.com/soutech/shopctl/internal/session"
)

// adminCmd is the parent of the store administration panel. Every
// subcommand verifies the session once, before touching the backend.
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administer the store",
	Long: `Administer products and users. Requires an administrator account.

A customer session is rejected without being logged out; an expired or
invalid session is cleared.`,
}

// requireAdmin wires the app and enforces the admin session in one step
func requireAdmin(cmd *cobra.Command) (*app, error) {
	a, err := newApp()
	if err != nil {
		return nil, err
	}
	if _, err := a.guard.Require(cmd.Context(), session.Admin); err != nil {
		return nil, err
	}
	return a, nil
}

func init() {
	rootCmd.AddCommand(adminCmd)
}
