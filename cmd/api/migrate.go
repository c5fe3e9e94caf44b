package main

import (
	"os"

	"github.com/spf13/cobra"

	"huntapi/internal/config"
	"huntapi/internal/database"
	"huntapi/internal/database/migration"
	"huntapi/internal/logger"
)

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the schema if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.Log, os.Stdout)

			db, dialect, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			return migration.EnsureMigrated(cmd.Context(), db, dialect, log)
		},
	}
}
