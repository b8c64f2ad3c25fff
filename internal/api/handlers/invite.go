package handlers

import (
	"net/http"

	"rental-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InviteHandler handles HTTP requests for invites
type InviteHandler struct {
	service service.InviteServiceInterface
}

// NewInviteHandler creates a new invite handler
func NewInviteHandler(s service.InviteServiceInterface) *InviteHandler {
	return &InviteHandler{service: s}
}

// CreateInvite handles POST /invites
// @Summary Create an invite
// @Tags invites
// @Accept json
// @Produce json
// @Param body body service.CreateInviteRequest true "Invite data"
// @Success 201 {object} service.InviteResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Security BearerAuth
// @Router /invites [post]
func (h *InviteHandler) CreateInvite(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.CreateInviteRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.service.Create(c.Request.Context(), user, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetInvite handles GET /invites/:id
// @Summary Get an invite by ID
// @Tags invites
// @Produce json
// @Param id path string true "Invite ID"
// @Success 200 {object} service.InviteResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /invites/{id} [get]
func (h *InviteHandler) GetInvite(c *gin.Context) {
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

// ListInvites handles GET /invites
// @Summary List invites
// @Tags invites
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param search query string false "Search term"
// @Param ordering query string false "Order by field, prefix with - for descending"
// @Param property query string false "Filter by property"
// @Param status query string false "Filter by status"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /invites [get]
func (h *InviteHandler) ListInvites(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	q := service.InviteQuery{
		ListParams: listParams(c),
		Property:   c.Query("property"),
		Status:     c.Query("status"),
	}
	resp, err := h.service.List(c.Request.Context(), user, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateInvite handles PATCH /invites/:id
// @Summary Update an invite
// @Tags invites
// @Accept json
// @Produce json
// @Param id path string true "Invite ID"
// @Param body body service.UpdateInviteRequest true "Fields to change"
// @Success 200 {object} service.InviteResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /invites/{id} [patch]
func (h *InviteHandler) UpdateInvite(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.UpdateInviteRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.service.Update(c.Request.Context(), user, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteInvite handles DELETE /invites/:id
// @Summary Delete an invite
// @Tags invites
// @Param id path string true "Invite ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /invites/{id} [delete]
func (h *InviteHandler) DeleteInvite(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), user, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AcceptInvite handles POST /invites/accept
// @Summary Accept an invite by token
// @Description Creates the tenancy for the invited tenant and marks the room occupied
// @Tags invites
// @Accept json
// @Produce json
// @Param body body service.AcceptInviteRequest true "Invite token"
// @Success 200 {object} service.InviteResponse
// @Failure 400 {object} ErrorResponse "Invite already answered or expired"
// @Failure 404 {object} ErrorResponse "Unknown token"
// @Security BearerAuth
// @Router /invites/accept [post]
func (h *InviteHandler) AcceptInvite(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.AcceptInviteRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.service.Accept(c.Request.Context(), user, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
