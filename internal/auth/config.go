package auth

import (
	"fmt"
	"time"

	"rental-management-backend/internal/config"
)

const defaultIssuer = "rental-management-backend"

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret" json:"jwt_secret"`
	Issuer          string        `yaml:"issuer" json:"issuer"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" json:"access_token_ttl"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" json:"refresh_token_ttl"`
	BcryptCost      int           `yaml:"bcrypt_cost" json:"bcrypt_cost"`
}

// NewAuthConfig derives the auth settings from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:       cfg.JWTSecret,
		Issuer:          defaultIssuer,
		AccessTokenTTL:  cfg.AccessTokenTTL,
		RefreshTokenTTL: cfg.RefreshTokenTTL,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("access token TTL must be positive")
	}
	if c.RefreshTokenTTL <= 0 {
		return fmt.Errorf("refresh token TTL must be positive")
	}
	return nil
}
