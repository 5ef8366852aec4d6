package main

import (
	infraLogger "github.com/NeuralTrust/TrustProctor/pkg/infra/logger"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLogger := infraLogger.NewLogger("migrate")
			defer closeLogger()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(logger, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			return db.Migrate(cmd.Context())
		},
	}
}
