package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cafepos/pkg/printer"
)

// printer: consume queued receipts and write them to stdout.
func printerCmd() *cobra.Command {
	var durable string
	cmd := &cobra.Command{
		Use:   "printer",
		Short: "Print receipts queued by the tills",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.NATSURL == "" {
				return fmt.Errorf("NATS_URL required")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			sub := &printer.Subscriber{
				ClusterID: cfg.STANClusterID,
				ClientID:  cfg.STANClientID,
				URL:       cfg.NATSURL,
				Subject:   cfg.STANSubject,
				Durable:   durable,
				Log:       log,
			}
			err := sub.Subscribe(ctx, func(ctx context.Context, j printer.Job) error {
				log.Info(ctx, "printing receipt", "job", j.ID, "terminal", j.Terminal, "cashier", j.Cashier)
				_, err := fmt.Fprintf(out, "%s\n\n", j.Text)
				return err
			})
			if err != nil {
				return err
			}
			log.Info(ctx, "printer ready", "subject", cfg.STANSubject)
			<-ctx.Done()
			return nil
		},
	}
	cmd.Flags().StringVar(&durable, "durable", "cafe-printer", "durable subscription name")
	return cmd
}
