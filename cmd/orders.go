package cmd

import (
	"github.com/spf13/cobra"

	"admindash/internal/output"
	"admindash/ui/console"
)

func newOrdersCmd() *cobra.Command {
	var (
		page int
		dark bool
	)

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Print one page of the order list",
		Long: `Print one page of the order list with status colours and a pager line.
Pages are numbered from 1; out-of-range pages are clamped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			view, err := a.ordersView(cmd.Context())
			if err != nil {
				return err
			}
			view.GoToPage(page - 1)

			if !cmd.Flags().Changed("dark") {
				dark = a.cfg.Flags.DarkMode
			}
			console.PrintOrders(cmd.OutOrStdout(), output.BuildOrdersPage(view), dark)
			return nil
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to print, starting at 1")
	cmd.Flags().BoolVar(&dark, "dark", false, "use dark-terminal colours")
	return cmd
}
