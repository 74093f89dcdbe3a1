package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create the event tables and indexes if they are missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, repo, err := openRepository(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			if err := repo.EnsureSchema(cmd.Context()); err != nil {
				return err
			}
			log.Info().Msg("schema ready")
			return nil
		},
	}
}
