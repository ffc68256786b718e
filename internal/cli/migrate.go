package cli

import (
	"github.com/spf13/cobra"

	"github.com/quizhub/quizhub/internal/config"
	"github.com/quizhub/quizhub/internal/game"
	"github.com/quizhub/quizhub/internal/user"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Init()
			if err := config.Connect(cmd.Context(), config.DatabaseDSN()); err != nil {
				return err
			}

			if err := config.DB.AutoMigrate(
				&user.User{},
				&game.GameSession{},
			); err != nil {
				return err
			}

			config.Logger().Info("database migrated")
			return nil
		},
	}
}
