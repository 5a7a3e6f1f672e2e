package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logFile  string
	pageSize int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "admindash",
	Short: "Terminal admin dashboard for orders and KPIs",
	Long: `admindash renders an e-commerce admin dashboard in the terminal:
KPI cards, projection and revenue charts, and a paginated order list
with status colours. Side panels and dark mode are driven by a shared
flag store that the MCP server can also read and change.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. bad config, database failures)
	SilenceUsage: true,
	RunE:         runTUI,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "admindash version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./admindash.yaml or $HOME/.config/admindash/admindash.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().IntVar(&pageSize, "page-size", 5, "orders per page")

	rootCmd.AddCommand(newOrdersCmd())
	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newFlagsCmd())
	rootCmd.AddCommand(newVersionCmd())
}
