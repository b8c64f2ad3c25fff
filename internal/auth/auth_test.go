package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/repository"
	"rental-management-backend/internal/service"
	"rental-management-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthConfig(t *testing.T) {
	t.Run("derived from application config", func(t *testing.T) {
		cfg := NewAuthConfig(testutils.TestConfig())
		assert.NoError(t, cfg.ValidateConfig())
		assert.Equal(t, "test-secret", cfg.JWTSecret)
		assert.Equal(t, time.Hour, cfg.AccessTokenTTL)
		assert.Equal(t, defaultIssuer, cfg.Issuer)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := &AuthConfig{AccessTokenTTL: time.Hour, RefreshTokenTTL: time.Hour}
		err := cfg.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		cfg := &AuthConfig{JWTSecret: "s", RefreshTokenTTL: time.Hour}
		assert.Error(t, cfg.ValidateConfig())
	})
}

// AuthServiceTestSuite exercises the auth flows against an in-memory database
type AuthServiceTestSuite struct {
	suite.Suite
	base    *testutils.BaseTestSuite
	repos   *repository.Repositories
	service *AuthService
	ctx     context.Context
	now     time.Time
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.base = testutils.SetupSQLiteSuite(suite.T())
	suite.repos = repository.NewRepositories(suite.base.DB)
	suite.ctx = context.Background()
	suite.now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	cfg := NewAuthConfig(suite.base.Config)
	cfg.BcryptCost = bcrypt.MinCost
	svc, err := NewAuthService(cfg, suite.repos.Users, suite.repos.RefreshTokens,
		service.NewAuditService(suite.repos.AuditLogs), validator.New())
	suite.Require().NoError(err)
	svc.SetClock(func() time.Time { return suite.now })
	suite.service = svc
}

func (suite *AuthServiceTestSuite) register(email string) *TokenResponse {
	resp, err := suite.service.Register(suite.ctx, &RegisterRequest{
		Email:    email,
		Password: "s3cret-pass",
		FullName: "Nguyen Van A",
	})
	suite.Require().NoError(err)
	return resp
}

func (suite *AuthServiceTestSuite) TestRegisterDefaultsToTenant() {
	resp := suite.register("Tenant@Example.com")

	suite.Equal("tenant@example.com", resp.User.Email)
	suite.Equal(models.UserRoleTenant, resp.User.Role)
	suite.True(resp.User.CanAccessWeb)
	suite.NotEmpty(resp.Access)
	suite.NotEmpty(resp.Refresh)
	suite.Equal(int64(3600), resp.ExpiresIn)
}

func (suite *AuthServiceTestSuite) TestRegisterLandlordForcesRole() {
	resp, err := suite.service.RegisterLandlord(suite.ctx, &RegisterRequest{
		Email:    "owner@example.com",
		Password: "s3cret-pass",
		Role:     models.UserRoleTenant,
	})
	suite.Require().NoError(err)
	suite.Equal(models.UserRoleLandlord, resp.User.Role)
}

func (suite *AuthServiceTestSuite) TestRegisterDuplicates() {
	suite.register("dup@example.com")

	_, err := suite.service.Register(suite.ctx, &RegisterRequest{Email: "DUP@example.com", Password: "s3cret-pass"})
	suite.ErrorIs(err, apperrors.ErrUserExists)

	phone := "0901234567"
	_, err = suite.service.Register(suite.ctx, &RegisterRequest{Email: "a@example.com", Password: "s3cret-pass", Phone: &phone})
	suite.Require().NoError(err)
	_, err = suite.service.Register(suite.ctx, &RegisterRequest{Email: "b@example.com", Password: "s3cret-pass", Phone: &phone})
	suite.ErrorIs(err, apperrors.ErrPhoneExists)
}

func (suite *AuthServiceTestSuite) TestRegisterValidation() {
	_, err := suite.service.Register(suite.ctx, &RegisterRequest{Email: "not-an-email", Password: "short"})
	suite.True(apperrors.IsValidation(err))
	fields, ok := apperrors.AsFieldErrors(err)
	suite.Require().True(ok)
	suite.Contains(fields, "email")
	suite.Contains(fields, "password")
}

func (suite *AuthServiceTestSuite) TestLogin() {
	suite.register("login@example.com")

	resp, err := suite.service.Login(suite.ctx, &LoginRequest{Email: "login@example.com", Password: "s3cret-pass"})
	suite.Require().NoError(err)
	suite.Require().NotNil(resp.User.LastLogin)
	suite.True(resp.User.LastLogin.Equal(suite.now))

	var entries []models.AuditLog
	suite.Require().NoError(suite.base.DB.Where("action_type = ?", models.AuditActionLogin).Find(&entries).Error)
	suite.Len(entries, 1)
	suite.Equal("User", entries[0].ModelName)
}

func (suite *AuthServiceTestSuite) TestLoginFailures() {
	suite.register("fail@example.com")

	_, err := suite.service.Login(suite.ctx, &LoginRequest{Email: "fail@example.com", Password: "wrong-pass"})
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)

	_, err = suite.service.Login(suite.ctx, &LoginRequest{Email: "nobody@example.com", Password: "s3cret-pass"})
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)

	suite.Require().NoError(suite.base.DB.Model(&models.User{}).Where("email = ?", "fail@example.com").
		Update("is_active", false).Error)
	_, err = suite.service.Login(suite.ctx, &LoginRequest{Email: "fail@example.com", Password: "s3cret-pass"})
	suite.ErrorIs(err, apperrors.ErrInactiveUser)
}

func (suite *AuthServiceTestSuite) TestRefreshRotatesToken() {
	first := suite.register("rotate@example.com")

	second, err := suite.service.Refresh(suite.ctx, &RefreshTokenRequest{Refresh: first.Refresh})
	suite.Require().NoError(err)
	suite.NotEqual(first.Refresh, second.Refresh)

	_, err = suite.service.Refresh(suite.ctx, &RefreshTokenRequest{Refresh: first.Refresh})
	suite.ErrorIs(err, apperrors.ErrInvalidRefreshToken)

	_, err = suite.service.Refresh(suite.ctx, &RefreshTokenRequest{Refresh: "garbage"})
	suite.ErrorIs(err, apperrors.ErrInvalidRefreshToken)
}

func (suite *AuthServiceTestSuite) TestRefreshExpired() {
	resp := suite.register("expired@example.com")
	suite.now = suite.now.Add(25 * time.Hour)

	_, err := suite.service.Refresh(suite.ctx, &RefreshTokenRequest{Refresh: resp.Refresh})
	suite.ErrorIs(err, apperrors.ErrRefreshTokenExpired)

	purged, err := suite.service.PurgeExpiredTokens(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), purged)
}

func (suite *AuthServiceTestSuite) TestLogoutRevokes() {
	resp := suite.register("logout@example.com")
	user, err := suite.repos.Users.GetByEmail(suite.ctx, "logout@example.com")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.Logout(suite.ctx, user, &RefreshTokenRequest{Refresh: resp.Refresh}))
	_, err = suite.service.Refresh(suite.ctx, &RefreshTokenRequest{Refresh: resp.Refresh})
	suite.ErrorIs(err, apperrors.ErrInvalidRefreshToken)

	other := suite.base.Factory.Tenant()
	second, err := suite.service.Login(suite.ctx, &LoginRequest{Email: "logout@example.com", Password: "s3cret-pass"})
	suite.Require().NoError(err)
	suite.ErrorIs(suite.service.Logout(suite.ctx, other, &RefreshTokenRequest{Refresh: second.Refresh}), apperrors.ErrInvalidRefreshToken)
}

func (suite *AuthServiceTestSuite) TestJWTRoundTrip() {
	resp := suite.register("jwt@example.com")

	claims, err := suite.service.ValidateJWT(resp.Access)
	suite.Require().NoError(err)
	suite.Equal(resp.User.ID.String(), claims.UserID)
	suite.Equal(models.UserRoleTenant, claims.Role)
	suite.Equal(defaultIssuer, claims.Issuer)

	user, err := suite.service.Authenticate(suite.ctx, resp.Access)
	suite.Require().NoError(err)
	suite.Equal(resp.User.ID, user.ID)

	suite.now = suite.now.Add(2 * time.Hour)
	_, err = suite.service.Authenticate(suite.ctx, resp.Access)
	suite.True(apperrors.IsAuthentication(err))
}

func (suite *AuthServiceTestSuite) TestValidateJWTRejectsForeignSignature() {
	claims := &AuthClaims{UserID: "x", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(suite.now.Add(time.Hour))}}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	suite.Require().NoError(err)

	_, err = suite.service.ValidateJWT(forged)
	suite.Error(err)
}

func (suite *AuthServiceTestSuite) TestMiddleware() {
	h := testutils.SetupHTTPTest()
	mw := NewAuthMiddleware(suite.service)
	h.Router.GET("/me", mw.RequireAuth(), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(200, gin.H{"email": user.Email})
	})
	h.Router.GET("/admin", mw.RequireAuth(), mw.RequireSuperuser(), func(c *gin.Context) {
		c.Status(204)
	})

	resp := suite.register("mw@example.com")

	suite.Equal(401, h.MakeRequest("GET", "/me", nil).Code)
	suite.Equal(401, h.MakeRequestWithHeaders("GET", "/me", nil, map[string]string{"Authorization": "Token abc"}).Code)
	suite.Equal(401, h.MakeAuthRequest("GET", "/me", "not-a-jwt", nil).Code)

	var body map[string]string
	rec := h.MakeAuthRequest("GET", "/me", resp.Access, nil)
	testutils.AssertJSONResponse(suite.T(), rec, 200, &body)
	suite.Equal("mw@example.com", body["email"])

	suite.Equal(403, h.MakeAuthRequest("GET", "/admin", resp.Access, nil).Code)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func TestAuthHandlerBadBodies(t *testing.T) {
	h := testutils.SetupHTTPTest()
	handler := NewAuthHandler(&AuthService{})
	h.Router.POST("/auth/token", handler.Login)
	h.Router.POST("/auth/token/refresh", handler.Refresh)
	h.Router.POST("/auth/logout", handler.Logout)

	rec := h.MakeRequestWithHeaders(http.MethodPost, "/auth/token", nil, map[string]string{"Content-Type": "application/json"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.MakeRequest(http.MethodPost, "/auth/logout", map[string]string{"refresh": "x"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
