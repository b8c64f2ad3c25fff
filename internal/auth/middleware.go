package auth

import (
	"context"
	"net/http"
	"strings"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}
	return tokenString, true
}

// SetCurrentUser stores the authenticated user on the request
func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(currentUserKey, user)
	ctx := context.WithValue(c.Request.Context(), logger.UserIDKey, user.ID.String())
	ctx = context.WithValue(ctx, logger.EmailKey, user.Email)
	c.Request = c.Request.WithContext(ctx)
}

// RequireAuth validates the bearer token and loads the current user
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		user, err := m.service.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(apperrors.HTTPStatus(err), apperrors.Body(err))
			return
		}

		SetCurrentUser(c, user)
		c.Next()
	}
}

// OptionalAuth loads the current user when a valid token is present but doesn't require one
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if user, err := m.service.Authenticate(c.Request.Context(), tokenString); err == nil {
				SetCurrentUser(c, user)
			}
		}
		c.Next()
	}
}

// RequireSuperuser rejects authenticated users without the superuser flag
func (m *AuthMiddleware) RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !user.IsSuperuser {
			c.AbortWithStatusJSON(http.StatusForbidden, apperrors.Body(apperrors.ErrSuperuserRequired))
			return
		}
		c.Next()
	}
}

// CurrentUser is a helper function to extract the authenticated user from context
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}
