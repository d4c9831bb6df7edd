package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cafepos/pkg/app"
)

func menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Print the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, db, err := app.OpenCatalog(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer db.Close()
			for _, l := range catalog.MenuLines(cfg.Currency) {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		},
	}
}
