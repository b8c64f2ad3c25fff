package main

import (
	"rental-management-backend/internal/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase(true)
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			logrus.Info("Database schema is up to date")
			return nil
		},
	}
}
