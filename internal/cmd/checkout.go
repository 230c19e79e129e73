package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soutech/shopctl/internal/checkout"
)

// checkoutCmd converts the cart into an order and hands off to payment
var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Check out the cart",
	Long: `Convert the cart into an order and open the payment page.

Requires a logged-in session and a non-empty cart. The payment URL is
always printed; opening the browser is best-effort. The cart is kept
until the backend confirms payment.

Examples:
  shopctl checkout
  shopctl checkout --no-browser`,
	RunE: func(cmd *cobra.Command, args []string) error {
		noBrowser, _ := cmd.Flags().GetBool("no-browser")

		a, err := newApp()
		if err != nil {
			return err
		}

		flow := checkout.New(a.cart, a.session, a.guard, a.client)
		outcome, err := flow.Run(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Order #%d created.\n", outcome.OrderID)
		fmt.Printf("Complete your payment at:\n  %s\n", outcome.CheckoutURL)

		if !noBrowser {
			if err := checkout.OpenBrowser(outcome.CheckoutURL); err != nil {
				a.logger.WithError(err).Debug("could not open browser")
			}
		}
		return nil
	},
}

func init() {
	checkoutCmd.Flags().Bool("no-browser", false, "print the payment URL without opening a browser")
	rootCmd.AddCommand(checkoutCmd)
}
