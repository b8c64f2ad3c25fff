package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseDriver   string `mapstructure:"DB_DRIVER"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	SQLitePath       string `mapstructure:"SQLITE_PATH"`

	// JWT configuration
	JWTSecret       string        `mapstructure:"JWT_SECRET"`
	AccessTokenTTL  time.Duration `mapstructure:"ACCESS_TOKEN_TTL"`
	RefreshTokenTTL time.Duration `mapstructure:"REFRESH_TOKEN_TTL"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Slow request logging
	SlowRequestThreshold time.Duration `mapstructure:"SLOW_REQUEST_THRESHOLD"`

	// File storage
	StorageBackend  string `mapstructure:"STORAGE_BACKEND"`
	MediaRoot       string `mapstructure:"MEDIA_ROOT"`
	MediaURL        string `mapstructure:"MEDIA_URL"`
	S3Bucket        string `mapstructure:"S3_BUCKET"`
	S3Region        string `mapstructure:"S3_REGION"`
	S3Prefix        string `mapstructure:"S3_PREFIX"`
	S3Endpoint      string `mapstructure:"S3_ENDPOINT"`
	S3PublicBaseURL string `mapstructure:"S3_PUBLIC_BASE_URL"`

	// VietQR configuration
	VietQRBanksURL     string        `mapstructure:"VIETQR_BANKS_URL"`
	VietQRImageBaseURL string        `mapstructure:"VIETQR_IMAGE_BASE_URL"`
	VietQRCacheTTL     time.Duration `mapstructure:"VIETQR_CACHE_TTL"`
	VietQRTimeout      time.Duration `mapstructure:"VIETQR_TIMEOUT"`

	// Invoice PDF fonts; empty uses the built-in Helvetica
	PDFFontPath     string `mapstructure:"PDF_FONT_PATH"`
	PDFBoldFontPath string `mapstructure:"PDF_FONT_BOLD_PATH"`

	// SendGrid configuration
	SendGridAPIKey    string `mapstructure:"SENDGRID_API_KEY"`
	SendGridFromName  string `mapstructure:"SENDGRID_FROM_NAME"`
	SendGridFromEmail string `mapstructure:"SENDGRID_FROM_EMAIL"`
	SendGridSandbox   bool   `mapstructure:"SENDGRID_SANDBOX"`

	// Scheduler configuration
	SchedulerEnabled bool   `mapstructure:"SCHEDULER_ENABLED"`
	OverdueCronSpec  string `mapstructure:"OVERDUE_CRON_SPEC"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/rental-backend")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// ALLOWED_ORIGINS arrives as one comma separated string when set through the environment
	config.AllowedOrigins = splitAndTrim(strings.Join(config.AllowedOrigins, ","))

	// Build database URL if not provided
	if config.DatabaseURL == "" && config.DatabaseDriver == "postgres" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_DRIVER", "postgres")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "rental_management")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("SQLITE_PATH", "rental.db")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("ACCESS_TOKEN_TTL", time.Hour)
	viper.SetDefault("REFRESH_TOKEN_TTL", 30*24*time.Hour)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	viper.SetDefault("SLOW_REQUEST_THRESHOLD", time.Second)

	// Storage defaults
	viper.SetDefault("STORAGE_BACKEND", "local")
	viper.SetDefault("MEDIA_ROOT", "media")
	viper.SetDefault("MEDIA_URL", "/media/")
	viper.SetDefault("S3_BUCKET", "")
	viper.SetDefault("S3_REGION", "ap-southeast-1")
	viper.SetDefault("S3_PREFIX", "")
	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("S3_PUBLIC_BASE_URL", "")

	// VietQR defaults
	viper.SetDefault("VIETQR_BANKS_URL", "https://api.vietqr.io/v2/banks")
	viper.SetDefault("VIETQR_IMAGE_BASE_URL", "https://img.vietqr.io/image")
	viper.SetDefault("VIETQR_CACHE_TTL", time.Hour)
	viper.SetDefault("VIETQR_TIMEOUT", 10*time.Second)

	// SendGrid defaults
	viper.SetDefault("PDF_FONT_PATH", "")
	viper.SetDefault("PDF_FONT_BOLD_PATH", "")

	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("SENDGRID_FROM_NAME", "Rental Management")
	viper.SetDefault("SENDGRID_FROM_EMAIL", "no-reply@example.com")
	viper.SetDefault("SENDGRID_SANDBOX", false)

	// Scheduler defaults
	viper.SetDefault("SCHEDULER_ENABLED", false)
	viper.SetDefault("OVERDUE_CRON_SPEC", "0 1 * * *")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	switch config.DatabaseDriver {
	case "postgres":
		if config.DatabaseName == "" && config.DatabaseURL == "" {
			return fmt.Errorf("database name is required")
		}
	case "sqlite":
		if config.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", config.DatabaseDriver)
	}

	switch config.StorageBackend {
	case "local":
	case "s3":
		if config.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required for the s3 storage backend")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_BACKEND %q", config.StorageBackend)
	}

	if config.AccessTokenTTL <= 0 || config.RefreshTokenTTL <= 0 {
		return fmt.Errorf("token lifetimes must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// EmailEnabled reports whether outbound email notifications are configured
func (c *Config) EmailEnabled() bool {
	return c.SendGridAPIKey != ""
}
