package auth

import (
	"net/http"

	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error("Authentication request failed")
	}
	c.JSON(status, apperrors.Body(err))
}

// Register handles POST /auth/register
// @Summary Register an account
// @Description Create a tenant or landlord account and return a token pair
// @Tags authentication
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Account data"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Email or phone already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RegisterLandlord handles POST /auth/register/landlord
// @Summary Register a landlord account
// @Tags authentication
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Account data; role is ignored"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Email or phone already registered"
// @Router /auth/register/landlord [post]
func (h *AuthHandler) RegisterLandlord(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	resp, err := h.service.RegisterLandlord(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /auth/token and POST /auth/web/token
// @Summary Obtain a token pair
// @Description Exchange email and password for access and refresh tokens
// @Tags authentication
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials or inactive account"
// @Router /auth/token [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh handles POST /auth/token/refresh
// @Summary Refresh the token pair
// @Description Rotate a refresh token; the presented token can not be used again
// @Tags authentication
// @Accept json
// @Produce json
// @Param body body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid or expired refresh token"
// @Router /auth/token/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	resp, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /auth/logout
// @Summary Log out
// @Description Revoke the given refresh token of the current user
// @Tags authentication
// @Accept json
// @Produce json
// @Param body body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} LogoutResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := h.service.Logout(c.Request.Context(), user, &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, LogoutResponse{Message: "Logged out successfully"})
}
