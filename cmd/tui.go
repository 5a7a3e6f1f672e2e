package cmd

import (
	"github.com/spf13/cobra"

	"admindash/internal/orders"
	"admindash/ui/tui"
)

func runTUI(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	view, err := a.ordersView(cmd.Context())
	if err != nil {
		return err
	}
	return tui.Start(a.newStore(), view, orders.SeedDashboard(), a.logger)
}
