package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soutech/shopctl/internal/api"
	"github.com/soutech/shopctl/internal/errors"
	"github.com/soutech/shopctl/internal/render"
	"github.com/soutech/shopctl/internal/tui"
)

var adminProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage products",
}

// adminProductsListCmd lists all products, inactive included
var adminProductsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products",
	Long: `List every product, including inactive ones hidden from the
public catalog.

Examples:
  shopctl admin products list
  shopctl admin products list --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireAdmin(cmd)
		if err != nil {
			return err
		}

		products, err := a.client.AdminListProducts(cmd.Context())
		if err != nil {
			return err
		}

		f, err := formatter()
		if err != nil {
			return err
		}
		if flagOutput != "text" && flagOutput != "" {
			return f.Format(products)
		}
		return f.Format(render.ProductTable{Items: products, Money: a.money})
	},
}

// adminProductsCreateCmd creates a product
var adminProductsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product",
	Long: `Create a new product. Name and SKU are required; everything else
is optional.

Examples:
  shopctl admin products create --name "Violão" --sku VL-01 --price 899.90
  shopctl admin products create --name "Pandeiro" --sku PD-02 --price 120 --category percussao --tags promo,novo`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := productInputFromFlags(cmd)
		if err != nil {
			return err
		}

		a, err := requireAdmin(cmd)
		if err != nil {
			return err
		}

		product, err := a.client.AdminCreateProduct(cmd.Context(), input)
		if err != nil {
			return err
		}

		fmt.Printf("Created product #%d (%s).\n", product.ID, product.Name)
		return nil
	},
}

// adminProductsUpdateCmd replaces a product
var adminProductsUpdateCmd = &cobra.Command{
	Use:   "update <product-id>",
	Short: "Update a product",
	Long: `Update a product. The full product is sent: give every field its
intended value, not just the changed ones.

Examples:
  shopctl admin products update 12 --name "Violão" --sku VL-01 --price 799.90 --active=false`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseProductID(args[0])
		if err != nil {
			return err
		}

		input, err := productInputFromFlags(cmd)
		if err != nil {
			return err
		}

		a, err := requireAdmin(cmd)
		if err != nil {
			return err
		}

		product, err := a.client.AdminUpdateProduct(cmd.Context(), id, input)
		if err != nil {
			return err
		}

		fmt.Printf("Updated product #%d (%s).\n", product.ID, product.Name)
		return nil
	},
}

// adminProductsDeleteCmd deletes a product after confirmation
var adminProductsDeleteCmd = &cobra.Command{
	Use:   "delete <product-id>",
	Short: "Delete a product",
	Long: `Delete a product. Asks for confirmation unless --yes is given.

Examples:
  shopctl admin products delete 12
  shopctl admin products delete 12 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseProductID(args[0])
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes {
			confirmed, err := tui.Confirm(fmt.Sprintf("Delete product #%d?", id))
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

		if err := a.client.AdminDeleteProduct(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Printf("Deleted product #%d.\n", id)
		return nil
	},
}

// productInputFromFlags builds and validates the product payload
func productInputFromFlags(cmd *cobra.Command) (api.ProductInput, error) {
	name, _ := cmd.Flags().GetString("name")
	sku, _ := cmd.Flags().GetString("sku")
	price, _ := cmd.Flags().GetFloat64("price")
	category, _ := cmd.Flags().GetString("category")
	tags, _ := cmd.Flags().GetString("tags")
	imageURL, _ := cmd.Flags().GetString("image-url")
	active, _ := cmd.Flags().GetBool("active")

	input := api.ProductInput{
		Name:     strings.TrimSpace(name),
		SKU:      strings.TrimSpace(sku),
		Price:    price,
		Category: category,
		ImageURL: imageURL,
		Active:   active,
	}
	if tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				input.Tags = append(input.Tags, tag)
			}
		}
	}

	return input, validateProductInput(input)
}

// validateProductInput enforces the client-side product rules
func validateProductInput(input api.ProductInput) error {
	if input.Name == "" {
		return errors.NewAdminValidationError("product name is required")
	}
	if input.SKU == "" {
		return errors.NewAdminValidationError("product SKU is required")
	}
	if input.Price < 0 {
		return errors.NewAdminValidationError("product price must not be negative")
	}
	return nil
}

// addProductFlags registers the shared product payload flags
func addProductFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "product name (required)")
	cmd.Flags().String("sku", "", "product SKU (required)")
	cmd.Flags().Float64("price", 0, "unit price")
	cmd.Flags().String("category", "", "category")
	cmd.Flags().String("tags", "", "comma-separated tags")
	cmd.Flags().String("image-url", "", "image URL")
	cmd.Flags().Bool("active", true, "visible in the public catalog")
}

func init() {
	addProductFlags(adminProductsCreateCmd)
	addProductFlags(adminProductsUpdateCmd)
	adminProductsDeleteCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")

	adminProductsCmd.AddCommand(
		adminProductsListCmd,
		adminProductsCreateCmd,
		adminProductsUpdateCmd,
		adminProductsDeleteCmd,
	)
	adminCmd.AddCommand(adminProductsCmd)
}
