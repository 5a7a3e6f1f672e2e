package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"admindash/internal/config"
	"admindash/internal/uistate"
)

func newFlagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flags",
		Short: "List the recognized UI flags and their start-up values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			store := uistate.New(uistate.WithFlags(cfg.UIFlags()))
			defaults := uistate.DefaultFlags()

			cell := lipgloss.NewStyle().PaddingRight(2)
			t := table.New().
				BorderTop(false).
				BorderBottom(false).
				BorderLeft(false).
				BorderRight(false).
				BorderColumn(false).
				BorderHeader(false).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return cell.Bold(true)
					}
					return cell
				}).
				Headers("FLAG", "VALUE", "DEFAULT")
			for _, f := range store.Flags() {
				t.Row(string(f), strconv.FormatBool(store.Get(f)), strconv.FormatBool(defaults[f]))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}
