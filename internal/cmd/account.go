package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soutech/shopctl/internal/render"
	"github.com/soutech/shopctl/internal/session"
)

// accountCmd shows the customer profile and order history
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show your profile and orders",
	Long: `Show the logged-in customer's profile and order history.

The profile is verified against the backend; a rejected session is
cleared and reported. Order history is best-effort: if it cannot be
loaded the profile still renders.

Examples:
  shopctl account
  shopctl account --orders
  shopctl account --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ordersOnly, _ := cmd.Flags().GetBool("orders")

		a, err := newApp()
		if err != nil {
			return err
		}

		profile, err := a.guard.Require(cmd.Context(), session.Customer)
		if err != nil {
			return err
		}

		f, err := formatter()
		if err != nil {
			return err
		}

		orders, ordersErr := a.client.MyOrders(cmd.Context())
		if ordersErr != nil {
			// Soft failure: the account page is still useful without
			// the order list.
			a.logger.WithError(ordersErr).Warn("failed to load order history")
		}

		if flagOutput != "text" && flagOutput != "" {
			if ordersOnly {
				return f.Format(orders)
			}
			return f.Format(map[string]interface{}{
				"profile": profile,
				"orders":  orders,
			})
		}

		if !ordersOnly {
			if err := f.Format(render.ProfileView{Profile: profile}); err != nil {
				return err
			}
			fmt.Println()
		}
		if ordersErr != nil {
			fmt.Println("Order history is unavailable right now.")
			return nil
		}
		return f.Format(render.OrderList{Orders: orders, Money: a.money})
	},
}

func init() {
	accountCmd.Flags().Bool("orders", false, "show only the order history")
	rootCmd.AddCommand(accountCmd)
}
