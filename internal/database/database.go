package database

import (
	"fmt"
	"strings"
	"time"

	"rental-management-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

func (o *Options) withDefaults() *Options {
	if o == nil {
		o = &Options{}
	}
	out := *o
	if out.LogLevel == 0 {
		out.LogLevel = logger.Error
	}
	if out.MaxOpenConns == 0 {
		out.MaxOpenConns = 20
	}
	if out.MaxIdleConns == 0 {
		out.MaxIdleConns = 10
	}
	if out.ConnMaxLifetime == 0 {
		out.ConnMaxLifetime = 30 * time.Minute
	}
	if out.ConnMaxIdleTime == 0 {
		out.ConnMaxIdleTime = 10 * time.Minute
	}
	return &out
}

// Open connects using the named driver ("postgres" or "sqlite").
func Open(driver, dsn string, opts *Options) (*gorm.DB, error) {
	switch driver {
	case "postgres":
		return Initialize(dsn, opts)
	case "sqlite":
		return InitializeSQLite(dsn, opts)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	opts = opts.withDefaults()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// InitializeSQLite opens a SQLite database (file path or ":memory:") for local development and tests.
func InitializeSQLite(path string, opts *Options) (*gorm.DB, error) {
	opts = opts.withDefaults()

	// foreign keys are off by default in SQLite
	dsn := path
	switch {
	case path == ":memory:":
		dsn = "file::memory:?cache=shared&_foreign_keys=on"
	case strings.Contains(path, "?"):
		dsn += "&_foreign_keys=on"
	default:
		dsn += "?_foreign_keys=on"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		// a single connection keeps one shared in-memory database and serialises writers
		sqlDB.SetMaxOpenConns(1)
	}

	if !opts.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates or updates the schema for all models, parents first.
func Migrate(db *gorm.DB) error {
	all := []interface{}{
		&models.User{},
		&models.RefreshToken{},
		&models.Property{},
		&models.Room{},
		&models.ServicePrice{},
		&models.Tenancy{},
		&models.Invoice{},
		&models.InvoiceLine{},
		&models.Payment{},
		&models.MaintenanceRequest{},
		&models.MaintenanceAttachment{},
		&models.MeterReading{},
		&models.Invite{},
		&models.Notification{},
		&models.AuditLog{},
		&models.FileAsset{},
	}
	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
