package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/soutech/shopctl/internal/checkout"
	"github.com/soutech/shopctl/internal/tui"
)

// browseCmd starts the interactive storefront
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive storefront",
	Long: `Open the interactive storefront: browse and search the catalog,
manage the cart, and check out without leaving the terminal.

Examples:
  shopctl browse`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		model := tui.NewModel(tui.Options{
			Loader:   a.loader,
			Cart:     a.cart,
			Flow:     checkout.New(a.cart, a.session, a.guard, a.client),
			Money:    a.money,
			Locale:   a.cfg.LanguageTag(),
			PageSize: a.cfg.PageSize,
		})

		program := tea.NewProgram(model, tea.WithContext(cmd.Context()))
		final, err := program.Run()
		if err != nil {
			return fmt.Errorf("storefront failed: %w", err)
		}

		if m, ok := final.(tui.Model); ok && m.CheckoutURL() != "" {
			if err := checkout.OpenBrowser(m.CheckoutURL()); err != nil {
				a.logger.WithError(err).Debug("could not open browser")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
