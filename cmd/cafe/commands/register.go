package commands

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"cafepos/pkg/app"
	"cafepos/pkg/cashier"
	"cafepos/pkg/console"
)

// register: interactive till on stdin/stdout.
func registerCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Run an interactive till",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			catalog, db, err := app.OpenCatalog(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer db.Close()
			c, err := cashier.New(catalog, cfg.CashierOptions())
			if err != nil {
				return err
			}
			r := &console.Register{
				Cashier: c,
				In:      cmd.InOrStdin(),
				Out:     cmd.OutOrStdout(),
				Name:    name,
				Log:     log,
			}
			// receipts already go to the screen; only a real printer needs a copy
			if cfg.NATSURL != "" {
				queue, qc, err := app.OpenPrinter(ctx, cfg, log)
				if err != nil {
					return err
				}
				defer qc.Close()
				r.Printer = queue
			}
			return r.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&name, "cashier", os.Getenv("USER"), "cashier name printed on queued receipts")
	return cmd
}
