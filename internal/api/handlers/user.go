package handlers

import (
	"net/http"

	"rental-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for the profile and user directory
type UserHandler struct {
	service service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(s service.UserServiceInterface) *UserHandler {
	return &UserHandler{service: s}
}

// GetMe handles GET /auth/me
// @Summary Get the current user's profile
// @Tags users
// @Produce json
// @Success 200 {object} service.UserResponse
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	resp, err := h.service.Me(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateMe handles PATCH /auth/me
// @Summary Update the current user's profile
// @Description Only landlords may set bank_account_number (6-19 digits) and bank_code
// @Tags users
// @Accept json
// @Produce json
// @Param body body service.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} service.UserResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /auth/me [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.service.UpdateMe(c.Request.Context(), user, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListUsers handles GET /users
// @Summary List users
// @Description Tenants only see themselves
// @Tags users
// @Produce json
// @Param role query string false "Filter by role"
// @Param is_active query bool false "Filter by active flag"
// @Param search query string false "Search email, name or phone"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	resp, err := h.service.List(c.Request.Context(), user, service.UserQuery{
		ListParams: listParams(c),
		Role:       c.Query("role"),
		IsActive:   c.Query("is_active"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetUser handles GET /users/:id
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} service.UserResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.service.Get(c.Request.Context(), user, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
