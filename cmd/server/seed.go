package main

import (
	"context"
	"fmt"

	"rental-management-backend/internal/seed"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo users, properties, rooms and prices from YAML files",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			db, err := openDatabase(false)
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			result, err := seed.NewLoader(db, 0).LoadDir(ctx, dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %d users, %d properties, %d rooms, %d prices\n",
				result.Users, result.Properties, result.Rooms, result.Prices)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "scripts/data", "Directory holding users*.yaml and properties*.yaml")
	return cmd
}
