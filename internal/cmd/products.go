package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/soutech/shopctl/internal/api"
	"github.com/soutech/shopctl/internal/catalog"
	"github.com/soutech/shopctl/internal/errors"
	"github.com/soutech/shopctl/internal/render"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse the product catalog",
}

// productsListCmd lists one page of the public catalog
var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	Long: `List the public catalog, one page at a time.

Text and category filters are applied by the backend; sorting and
pagination happen locally. A page number outside the valid range is
clamped, never an error.

Examples:
  shopctl products list
  shopctl products list --query guitar --sort price-asc
  shopctl products list --category instruments --page 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		query, _ := cmd.Flags().GetString("query")
		category, _ := cmd.Flags().GetString("category")
		sortFlag, _ := cmd.Flags().GetString("sort")
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		sortOrder, err := catalog.ParseSortOrder(sortFlag)
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		if pageSize < 1 {
			pageSize = a.cfg.PageSize
		}

		items, err := loadCatalog(cmd.Context(), a, catalog.Filter{
			Query:    query,
			Category: category,
			Sort:     sortOrder,
		})
		if err != nil {
			return err
		}

		pageCount := catalog.PageCount(len(items), pageSize)
		if page < 1 {
			page = 1
		}
		if page > pageCount {
			page = pageCount
		}

		f, err := formatter()
		if err != nil {
			return err
		}

		visible := catalog.Paginate(items, page, pageSize)
		if flagOutput != "text" && flagOutput != "" {
			return f.Format(visible)
		}
		return f.Format(render.ProductTable{
			Items:     visible,
			Money:     a.money,
			Page:      page,
			PageCount: pageCount,
		})
	},
}

// loadCatalog runs one catalog query, turning the view-level soft failure
// back into a command error.
func loadCatalog(ctx context.Context, a *app, filter catalog.Filter) ([]api.Product, error) {
	result := a.loader.Load(ctx, filter)
	if result.Failed {
		return nil, errors.New(errors.ErrCodeAPINetwork, "failed to load products").
			WithSuggestion("Check your network connection").
			WithSuggestion("Verify the api_url setting in ~/.shopctl/config.yaml")
	}
	return result.Items, nil
}

func init() {
	productsListCmd.Flags().StringP("query", "q", "", "text search")
	productsListCmd.Flags().StringP("category", "c", "", "category filter")
	productsListCmd.Flags().StringP("sort", "s", "name-asc", "sort order (name-asc, price-asc, price-desc, newest)")
	productsListCmd.Flags().IntP("page", "p", 1, "page number")
	productsListCmd.Flags().Int("page-size", 0, "items per page (default from config)")

	productsCmd.AddCommand(productsListCmd)
	rootCmd.AddCommand(productsCmd)
}
