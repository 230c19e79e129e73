package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/soutech/shopctl/internal/errors"
)

const minPasswordLength = 6

// signupCmd creates a new customer account
var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a store account",
	Long: `Create a new customer account.

Signing up does not log you in; run 'shopctl login' afterwards.

Examples:
  shopctl signup
  shopctl signup --name "Ana Silva" --email ana@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if name == "" || email == "" || password == "" {
			var err error
			name, email, password, err = promptSignup(name, email, password)
			if err != nil {
				return err
			}
		}

		if err := validateSignup(name, email, password); err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		profile, err := a.client.Signup(cmd.Context(), name, email, password)
		if err != nil {
			return err
		}

		fmt.Printf("Account created for %s.\n", profile.DisplayName())
		fmt.Println("Run 'shopctl login' to sign in.")
		return nil
	},
}

// promptSignup collects the signup form interactively. The password is
// confirmed twice; a mismatch never leaves the client.
func promptSignup(name, email, password string) (string, string, string, error) {
	confirm := password

	var fields []huh.Field
	if name == "" {
		fields = append(fields, huh.NewInput().Title("Name").Value(&name))
	}
	if email == "" {
		fields = append(fields, huh.NewInput().Title("Email").Value(&email))
	}
	if password == "" {
		fields = append(fields,
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(&confirm))
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return "", "", "", fmt.Errorf("prompt failed: %w", err)
	}

	if password != confirm {
		return "", "", "", errors.New(errors.ErrCodeSignupInvalid, "passwords do not match")
	}
	return name, email, password, nil
}

// validateSignup enforces the client-side signup rules before any request
func validateSignup(name, email, password string) error {
	if name == "" {
		return errors.New(errors.ErrCodeSignupInvalid, "name is required")
	}
	if email == "" {
		return errors.New(errors.ErrCodeSignupInvalid, "email is required")
	}
	if len(password) < minPasswordLength {
		return errors.New(errors.ErrCodeSignupInvalid,
			fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	return nil
}

func init() {
	signupCmd.Flags().String("name", "", "full name")
	signupCmd.Flags().String("email", "", "account email")
	signupCmd.Flags().String("password", "", "account password")
	rootCmd.AddCommand(signupCmd)
}
