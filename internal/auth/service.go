package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/logger"
	"rental-management-backend/internal/repository"
	"rental-management-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService provides authentication functionality
type AuthService struct {
	config        *AuthConfig
	users         repository.UserRepositoryInterface
	refreshTokens repository.RefreshTokenRepositoryInterface
	audit         service.AuditorInterface
	validator     *validator.Validate
	now           func() time.Time
}

// AuthClaims represents JWT access token claims
type AuthClaims struct {
	UserID               string          `json:"user_id" example:"0b7c9a1e-1f7a-4f55-8f3e-3a3c1b2d4e5f"`
	Email                string          `json:"email" example:"landlord@example.com"`
	Role                 models.UserRole `json:"role" example:"landlord"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email,max=254"`
	Password string          `json:"password" validate:"required,min=8,max=128"`
	FullName string          `json:"full_name" validate:"max=255"`
	Phone    *string         `json:"phone" validate:"omitempty,max=20"`
	Role     models.UserRole `json:"role" validate:"omitempty,oneof=landlord tenant"`
}

// LoginRequest represents email and password credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest represents the request for token refresh or logout
type RefreshTokenRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// TokenResponse is returned by login, register and refresh
type TokenResponse struct {
	Access    string                `json:"access"`
	Refresh   string                `json:"refresh"`
	TokenType string                `json:"token_type" example:"Bearer"`
	ExpiresIn int64                 `json:"expires_in" example:"3600"`
	User      *service.UserResponse `json:"user"`
}

// LogoutResponse represents the response from the logout endpoint
type LogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, users repository.UserRepositoryInterface, refreshTokens repository.RefreshTokenRepositoryInterface,
	audit service.AuditorInterface, validator *validator.Validate) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{
		config:        config,
		users:         users,
		refreshTokens: refreshTokens,
		audit:         audit,
		validator:     validator,
		now:           time.Now,
	}, nil
}

// SetClock overrides the time source
func (s *AuthService) SetClock(now func() time.Time) { s.now = now }

// HashPassword hashes a plaintext password with bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	cost := s.config.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Register creates an account; role defaults to tenant
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, service.ValidationErrors(err)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	taken, err := s.users.EmailTaken(ctx, email, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrUserExists
	}

	var phone *string
	if req.Phone != nil && strings.TrimSpace(*req.Phone) != "" {
		p := strings.TrimSpace(*req.Phone)
		taken, err := s.users.PhoneTaken(ctx, p, uuid.Nil)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrPhoneExists
		}
		phone = &p
	}

	hash, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:        email,
		Phone:        phone,
		FullName:     strings.TrimSpace(req.FullName),
		Role:         models.UserRoleTenant,
		PasswordHash: hash,
		IsActive:     true,
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{"user_id": user.ID, "role": user.Role}).Info("User registered")

	return s.issueTokens(ctx, user)
}

// RegisterLandlord creates an account with the landlord role
func (s *AuthService) RegisterLandlord(ctx context.Context, req *RegisterRequest) (*TokenResponse, error) {
	req.Role = models.UserRoleLandlord
	return s.Register(ctx, req)
}

// Login verifies credentials, stamps last_login and issues a token pair
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, service.ValidationErrors(err)
	}
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrInactiveUser
	}

	now := s.now()
	user.LastLogin = &now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}
	s.audit.LogAction(ctx, user, models.AuditActionLogin, nil, nil)

	return s.issueTokens(ctx, user)
}

// Refresh exchanges a refresh token for a new pair; the presented token is revoked
func (s *AuthService) Refresh(ctx context.Context, req *RefreshTokenRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, service.ValidationErrors(err)
	}
	token, err := s.lookupRefreshToken(ctx, req.Refresh)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrInactiveUser
	}
	if err := s.refreshTokens.Revoke(ctx, token.ID, s.now()); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return s.issueTokens(ctx, user)
}

// Logout revokes the given refresh token of the actor
func (s *AuthService) Logout(ctx context.Context, actor *models.User, req *RefreshTokenRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return service.ValidationErrors(err)
	}
	token, err := s.refreshTokens.GetByHash(ctx, hashToken(req.Refresh))
	if err != nil {
		return err
	}
	if token.UserID != actor.ID {
		return apperrors.ErrInvalidRefreshToken
	}
	if err := s.refreshTokens.Revoke(ctx, token.ID, s.now()); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	s.audit.LogAction(ctx, actor, models.AuditActionLogout, nil, nil)
	return nil
}

func (s *AuthService) lookupRefreshToken(ctx context.Context, raw string) (*models.RefreshToken, error) {
	token, err := s.refreshTokens.GetByHash(ctx, hashToken(raw))
	if err != nil {
		return nil, err
	}
	if token.RevokedAt != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if s.now().After(token.ExpiresAt) {
		return nil, apperrors.ErrRefreshTokenExpired
	}
	return token, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*TokenResponse, error) {
	access, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}
	refresh, err := generateRandomString(48)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	if err := s.refreshTokens.Create(ctx, &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refresh),
		ExpiresAt: s.now().Add(s.config.RefreshTokenTTL),
	}); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &TokenResponse{
		Access:    access,
		Refresh:   refresh,
		TokenType: "Bearer",
		ExpiresIn: int64(s.config.AccessTokenTTL.Seconds()),
		User:      service.ToUserResponse(user),
	}, nil
}

// GenerateJWT creates a signed access token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses an access token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// Authenticate resolves an access token to an active user
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.ValidateJWT(tokenString)
	if err != nil {
		return nil, apperrors.NewAuthenticationError("invalid token")
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.NewAuthenticationError("invalid token")
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewAuthenticationError("user not found")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrInactiveUser
	}
	return user, nil
}

// PurgeExpiredTokens deletes refresh tokens past their expiry
func (s *AuthService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	return s.refreshTokens.DeleteExpired(ctx, s.now())
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// generateRandomString generates a random URL-safe base64 string
func generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
