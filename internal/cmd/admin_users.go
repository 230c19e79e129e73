package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soutech/shopctl/internal/api"
	"github.com/soutech/shopctl/internal/errors"
	"github.com/soutech/shopctl/internal/render"
	"github.com/soutech/shopctl/internal/tui"
)

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users",
}

// adminUsersListCmd lists all user accounts
var adminUsersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	Long: `List every user account with its role.

Examples:
  shopctl admin users list
  shopctl admin users list --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireAdmin(cmd)
		if err != nil {
			return err
		}

		users, err := a.client.AdminListUsers(cmd.Context())
		if err != nil {
			return err
		}

		f, err := formatter()
		if err != nil {
			return err
		}
		if flagOutput != "text" && flagOutput != "" {
			return f.Format(users)
		}
		return f.Format(render.UserTable{Users: users})
	},
}

// adminUsersCreateCmd creates a customer account with full customer data
var adminUsersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	Long: `Create a user account with customer data. Name, email and a
password of at least 6 characters are required.

Examples:
  shopctl admin users create --name "Ana Silva" --email ana@example.com --password secret1
  shopctl admin users create --name "Ana Silva" --email ana@example.com --password secret1 --admin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := userInputFromFlags(cmd)
		if err := validateUserInput(input); err != nil {
			return err
		}

		a, err := requireAdmin(cmd)
		if err != nil {
			return err
		}

		user, err := a.client.AdminCreateUser(cmd.Context(), input)
		if err != nil {
			return err
		}

		fmt.Printf("Created user #%d (%s).\n", user.ID, user.Email)
		return nil
	},
}

// adminUsersToggleAdminCmd flips a user's admin role
var adminUsersToggleAdminCmd = &cobra.Command{
	Use:   "toggle-admin <user-id>",
	Short: "Toggle a user's admin role",
	Long: `Flip a user's administrator flag: an admin becomes a customer and
a customer becomes an admin. The new state is decided by the backend.

Examples:
  shopctl admin users toggle-admin 7
  shopctl admin users toggle-admin 7 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id < 1 {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes {
			confirmed, err := tui.Confirm(fmt.Sprintf("Toggle the admin role of user #%d?", id))
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Aborted.")
				return nil
			}
		}

		a, err := requireAdmin(cmd)
		if err != nil {
			return err
		}

		user, err := a.client.AdminToggleUserAdmin(cmd.Context(), id)
		if err != nil {
			return err
		}

		role := "customer"
		if user.IsAdmin {
			role = "admin"
		}
		fmt.Printf("User #%d (%s) is now a %s.\n", user.ID, user.Email, role)
		return nil
	},
}

// userInputFromFlags builds the user payload from flags
func userInputFromFlags(cmd *cobra.Command) api.UserInput {
	get := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return strings.TrimSpace(v)
	}
	isAdmin, _ := cmd.Flags().GetBool("admin")

	return api.UserInput{
		Name:       get("name"),
		Email:      get("email"),
		Password:   get("password"),
		Phone:      get("phone"),
		DocType:    get("doc-type"),
		DocNumber:  get("doc-number"),
		CEP:        get("cep"),
		State:      get("state"),
		City:       get("city"),
		District:   get("district"),
		Address:    get("address"),
		Number:     get("number"),
		Complement: get("complement"),
		IsAdmin:    isAdmin,
	}
}

// validateUserInput enforces the client-side user rules
func validateUserInput(input api.UserInput) error {
	if input.Name == "" {
		return errors.NewAdminValidationError("user name is required")
	}
	if input.Email == "" {
		return errors.NewAdminValidationError("user email is required")
	}
	if len(input.Password) < minPasswordLength {
		return errors.NewAdminValidationError(
			fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	return nil
}

func init() {
	adminUsersCreateCmd.Flags().String("name", "", "full name (required)")
	adminUsersCreateCmd.Flags().String("email", "", "email (required)")
	adminUsersCreateCmd.Flags().String("password", "", "password (required, min 6 characters)")
	adminUsersCreateCmd.Flags().String("phone", "", "phone number")
	adminUsersCreateCmd.Flags().String("doc-type", "", "document type (cpf, cnpj)")
	adminUsersCreateCmd.Flags().String("doc-number", "", "document number")
	adminUsersCreateCmd.Flags().String("cep", "", "postal code (CEP)")
	adminUsersCreateCmd.Flags().String("state", "", "address state")
	adminUsersCreateCmd.Flags().String("city", "", "address city")
	adminUsersCreateCmd.Flags().String("district", "", "address district")
	adminUsersCreateCmd.Flags().String("address", "", "street address")
	adminUsersCreateCmd.Flags().String("number", "", "address number")
	adminUsersCreateCmd.Flags().String("complement", "", "address complement")
	adminUsersCreateCmd.Flags().Bool("admin", false, "grant the admin role")

	adminUsersToggleAdminCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")

	adminUsersCmd.AddCommand(adminUsersListCmd, adminUsersCreateCmd, adminUsersToggleAdminCmd)
	adminCmd.AddCommand(adminUsersCmd)
}
