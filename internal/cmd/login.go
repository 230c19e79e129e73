package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/soutech/shopctl/internal/errors"
)

// loginCmd authenticates against the backend and stores the session
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the store",
	Long: `Log in to the store and save the session for future commands.

Credentials can be passed as flags or entered interactively.

Examples:
  shopctl login
  shopctl login --email user@example.com --password mypass`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || password == "" {
			if err := promptCredentials(&email, &password); err != nil {
				return err
			}
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		if _, err := a.client.Login(cmd.Context(), email, password); err != nil {
			return errors.Wrap(errors.ErrCodeLoginFailed, "login failed", err).
				WithSuggestion("Check your email and password").
				WithSuggestion("Run 'shopctl signup' if you do not have an account yet")
		}

		if err := a.session.SetToken(a.client.Token); err != nil {
			return errors.NewStateWriteError("session", err)
		}

		// Fetch and cache the profile so later commands can greet the
		// user without a network round trip.
		profile, err := a.client.Me(cmd.Context())
		if err != nil {
			fmt.Println("Logged in.")
			return nil
		}
		if err := a.session.SetProfile(profile); err != nil {
			a.logger.WithError(err).Warn("failed to cache profile")
		}

		fmt.Printf("Logged in as %s.\n", profile.DisplayName())
		if profile.IsAdmin {
			fmt.Println("Administrator account: 'shopctl admin' is available.")
		}
		return nil
	},
}

// promptCredentials asks for any credential not given as a flag
func promptCredentials(email, password *string) error {
	var fields []huh.Field
	if *email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Value(email))
	}
	if *password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(password))
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}

	if *email == "" || *password == "" {
		return errors.New(errors.ErrCodeLoginFailed, "email and password are required")
	}
	return nil
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password")
	rootCmd.AddCommand(loginCmd)
}
