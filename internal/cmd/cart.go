package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/soutech/shopctl/internal/api"
	"github.com/soutech/shopctl/internal/cart"
	"github.com/soutech/shopctl/internal/errors"
	"github.com/soutech/shopctl/internal/render"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the local shopping cart",
	Long: `Manage the locally persisted shopping cart.

The cart lives on this machine and never requires a login. Prices are
captured when a product is added; the backend re-prices everything at
checkout.`,
}

// cartShowCmd prints the cart contents and totals
var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart",
	Long: `Show the cart contents, line totals and subtotal.

Examples:
  shopctl cart show
  shopctl cart show --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return printCart(a)
	},
}

// cartAddCmd adds a product to the cart by id
var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Long: `Add a product to the cart by its catalog id.

The product is looked up in the catalog so its current price and name
are captured into the cart line. Adding a product already in the cart
increments its quantity.

Examples:
  shopctl cart add 12
  shopctl cart add 12 --qty 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseProductID(args[0])
		if err != nil {
			return err
		}
		qtyFlag, _ := cmd.Flags().GetString("qty")
		qty := cart.ParseQuantity(qtyFlag)

		a, err := newApp()
		if err != nil {
			return err
		}

		product, err := findProduct(cmd, a, id)
		if err != nil {
			return err
		}

		if err := a.cart.Add(*product, qty); err != nil {
			return errors.NewStateWriteError("cart", err)
		}

		fmt.Printf("Added %d x %s.\n\n", qty, product.Name)
		return printCart(a)
	},
}

// cartRemoveCmd removes a line item
var cartRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product from the cart",
	Long: `Remove a product's line item from the cart.

Removing a product that is not in the cart is a no-op.

Examples:
  shopctl cart remove 12`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseProductID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.cart.Remove(id); err != nil {
			return errors.NewStateWriteError("cart", err)
		}
		return printCart(a)
	},
}

// cartSetQtyCmd sets the quantity of a line item
var cartSetQtyCmd = &cobra.Command{
	Use:   "set-qty <product-id> <quantity>",
	Short: "Set the quantity of a cart line",
	Long: `Set the quantity of a product already in the cart.

Quantities below 1 are clamped to 1. Setting the quantity of a product
that is not in the cart is a no-op.

Examples:
  shopctl cart set-qty 12 4`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseProductID(args[0])
		if err != nil {
			return err
		}
		qty := cart.ParseQuantity(args[1])

		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.cart.SetQuantity(id, qty); err != nil {
			return errors.NewStateWriteError("cart", err)
		}
		return printCart(a)
	},
}

// cartClearCmd empties the cart
var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.cart.Clear(); err != nil {
			return errors.NewStateWriteError("cart", err)
		}
		fmt.Println("Cart cleared.")
		return nil
	},
}

// parseProductID parses a positional product id argument
func parseProductID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid product id %q", s)
	}
	return id, nil
}

// findProduct locates id in the public catalog
func findProduct(cmd *cobra.Command, a *app, id int64) (*api.Product, error) {
	products, err := a.client.ListProducts(cmd.Context(), "", "")
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, errors.NewProductNotFoundError(id)
}

// printCart renders the cart in the selected output format
func printCart(a *app) error {
	f, err := formatter()
	if err != nil {
		return err
	}

	items := a.cart.Items()
	if flagOutput != "text" && flagOutput != "" {
		return f.Format(map[string]interface{}{
			"items":  items,
			"totals": a.cart.Totals(),
			"count":  a.cart.Count(),
		})
	}
	return f.Format(render.CartView{
		Items:  items,
		Totals: a.cart.Totals(),
		Money:  a.money,
	})
}

func init() {
	cartAddCmd.Flags().StringP("qty", "n", "1", "units to add")

	cartCmd.AddCommand(cartShowCmd, cartAddCmd, cartRemoveCmd, cartSetQtyCmd, cartClearCmd)
	rootCmd.AddCommand(cartCmd)
}
