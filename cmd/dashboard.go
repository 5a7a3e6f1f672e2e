package cmd

import (
	"github.com/spf13/cobra"

	"admindash/internal/orders"
	"admindash/internal/output"
	"admindash/ui/console"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Print the KPI summary and dashboard figures",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			console.PrintDashboard(cmd.OutOrStdout(), output.BuildDashboard(orders.SeedDashboard()))
		},
	}
}
