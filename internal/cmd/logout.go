package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soutech/shopctl/internal/errors"
)

// logoutCmd discards the local session. The cart is left untouched.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the store",
	Long: `Discard the saved session token and cached profile.

The cart is local and survives logout.

Examples:
  shopctl logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if a.session.Token() == "" {
			fmt.Println("Not logged in.")
			return nil
		}

		if err := a.session.Clear(); err != nil {
			return errors.NewStateWriteError("session", err)
		}

		fmt.Println("Logged out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
