package main

import (
	"fmt"
	"os"

	"rental-management-backend/internal/config"
	"rental-management-backend/internal/database"
	"rental-management-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	_ "rental-management-backend/docs" // This is needed for swag
)

//	@title			Rental Management Backend API
//	@version		1.0
//	@description	Backend API for landlords and tenants: properties, rooms, tenancies, invoices, payments, maintenance requests, meter readings, invites and notifications.

//	@host		localhost:8000
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

// cfg is loaded once by the root command before any subcommand runs
var cfg *config.Config

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rental-server",
		Short:         "Rental management backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load environment variables from .env file in development
			if err := godotenv.Load(); err != nil {
				logrus.Debug("No .env file found, using system environment variables")
			}

			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfg = loaded
			logger.Setup(cfg.LogLevel, cfg.IsProduction())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newCheckOverdueCmd(),
		newSeedCmd(),
	)
	return root
}

// openDatabase connects with the configured driver; migrations run unless skipMigrate is set
func openDatabase(skipMigrate bool) (*gorm.DB, error) {
	dsn := cfg.DatabaseURL
	if cfg.DatabaseDriver == "sqlite" {
		dsn = cfg.SQLitePath
	}
	opts := &database.Options{SkipMigrate: skipMigrate}
	if cfg.IsDevelopment() && cfg.LogLevel == "debug" {
		opts.LogLevel = gormlogger.Info
	}
	db, err := database.Open(cfg.DatabaseDriver, dsn, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func closeDatabase(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
