package commands

import (
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"cafepos/pkg/config"
	"cafepos/pkg/logger"
	"cafepos/pkg/otel"
)

var (
	cfg config.Config
	log *logger.Logger

	databaseURL string
	taxRate     string
	currency    string
	logLevel    string
)

// Execute builds the command tree and runs the command named by os.Args.
func Execute() error {
	root := &cobra.Command{
		Use:           "cafe",
		Short:         "Café till and receipt printer",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(); err != nil {
				return err
			}
			if cmd.Flags().Changed("database-url") {
				cfg.DatabaseURL = databaseURL
			}
			if cmd.Flags().Changed("currency") {
				cfg.Currency = currency
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("tax-rate") {
				if cfg.TaxRate, err = decimal.NewFromString(taxRate); err != nil {
					return err
				}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			lvl, err := logger.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			log = logger.New(os.Stderr, lvl, "cafe", otel.GetTraceID)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&databaseURL, "database-url", "", "PostgreSQL DSN for the catalog (default $DATABASE_URL, empty for the built-in menu)")
	root.PersistentFlags().StringVar(&taxRate, "tax-rate", "", "tax rate as a fraction, e.g. 0.21 (default $CAFE_TAX_RATE)")
	root.PersistentFlags().StringVar(&currency, "currency", "", "currency symbol (default $CAFE_CURRENCY)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (default $LOG_LEVEL)")

	root.AddCommand(menuCmd(), registerCmd(), printerCmd(), seedCmd(), hashCmd())
	return root.Execute()
}
