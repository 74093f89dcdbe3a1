package commands

import (
	"context"
	"database/sql"
	"os/signal"
	"syscall"

	"process-mining-service/internal/config"
	"process-mining-service/internal/events/adapters/sqlstore"
	"process-mining-service/internal/logging"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load Salesforce and Amadeus activity exports into the event store",
	Long: `Reads CSV exports, normalizes them into event records and replaces the
dataset's table in a single transaction, using the same database settings as the API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.LoadUnvalidated()
		return logging.Init(verbose || cfg.Verbose, cfg.LogsFolder)
	},
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.AddCommand(newLoadCmd(), newSchemaCmd())
}

// openRepository validates the configuration and connects. The caller closes db.
func openRepository(ctx context.Context) (*sql.DB, *sqlstore.EventRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	db, err := sqlstore.Open(ctx, cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Str("driver", cfg.DB.Driver).Msg("connected to event store")
	return db, sqlstore.NewEventRepository(sqlstore.NewSQLDB(db), cfg.DB.Driver), nil
}
