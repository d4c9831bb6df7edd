package commands

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"cafepos/pkg/app"
	pg "cafepos/pkg/order/postgres"
)

// seed: replace the products table with the default menu.
func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the default menu into the products table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("--database-url or DATABASE_URL required")
			}
			ctx := cmd.Context()
			db, err := sql.Open("postgres", cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()
			src := pg.New(db)
			if err := src.EnsureSchema(ctx); err != nil {
				return err
			}
			if err := app.Seed(ctx, src); err != nil {
				return err
			}
			n, err := src.Count(ctx)
			if err != nil {
				return err
			}
			log.Info(ctx, "menu seeded", "products", n)
			return nil
		},
	}
}
