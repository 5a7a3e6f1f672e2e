package cmd

import (
	"github.com/spf13/cobra"

	"admindash/internal/mcpserver"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the UI flags and order list over MCP on stdio",
		Long: `Run an MCP server on stdin/stdout. Agents can read and change the UI
flags, page through orders and classify status strings. Logs never go to
stdout; set --log-file to see them.`,
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

			srv := mcpserver.NewServer(mcpserver.Config{
				ServerName:    a.cfg.MCP.Name,
				ServerVersion: a.cfg.MCP.Version,
			}, a.newStore(), view, a.repo, a.logger)
			defer srv.Close()

			return srv.Start(cmd.Context())
		},
	}
}
