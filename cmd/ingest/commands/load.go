package commands

import (
	"fmt"
	"os"

	"process-mining-service/internal/events/adapters/csvsource"
	"process-mining-service/internal/events/core/domain"
	"process-mining-service/internal/events/core/usecase"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newLoadCmd() *cobra.Command {
	var (
		batchSize    int
		ensureSchema bool
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "load <dataset> <file.csv>",
		Short: "Replace a dataset with the rows of a CSV export",
		Example: `  ingest load salesforce ./exports/salesforce.csv
  ingest load amadeus ./exports/amadeus.csv --batch-size 500 --ensure-schema`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := domain.ParseDataset(args[0])
			if err != nil {
				return err
			}

			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			events, err := csvsource.NewParser().Parse(ds, f)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[1], err)
			}
			log.Info().Str("dataset", string(ds)).Int("rows", len(events)).Msg("parsed export")

			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows parsed, nothing written\n", ds, len(events))
				return nil
			}

			size := batchSize
			if size <= 0 {
				size = cfg.IngestBatchSize
			}

			ctx := cmd.Context()
			db, repo, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if ensureSchema {
				if err := repo.EnsureSchema(ctx); err != nil {
					return err
				}
			}

			res, err := usecase.NewIngestEventsUseCase(repo).Replace(ctx, usecase.ReplaceInput{
				Dataset:   string(ds),
				Events:    events,
				BatchSize: size,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: inserted %d rows in %d batches (run %s)\n",
				res.Dataset, res.Inserted, res.Batches, res.RunID)
			return nil
		},
	}

	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "rows per insert batch (default INGEST_BATCH_SIZE)")
	cmd.Flags().BoolVar(&ensureSchema, "ensure-schema", false, "create tables before loading")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse only, do not write")
	return cmd
}
