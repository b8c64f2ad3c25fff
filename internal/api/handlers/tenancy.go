package handlers

import (
	"net/http"

	"rental-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TenancyHandler handles HTTP requests for tenancies
type TenancyHandler struct {
	service service.TenancyServiceInterface
}

// NewTenancyHandler creates a new tenancy handler
func NewTenancyHandler(s service.TenancyServiceInterface) *TenancyHandler {
	return &TenancyHandler{service: s}
}

// CreateTenancy handles POST /tenancies
// @Summary Create a tenancy
// @Tags tenancies
// @Accept json
// @Produce json
// @Param body body service.CreateTenancyRequest true "Tenancy data"
// @Success 201 {object} service.TenancyResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Security BearerAuth
// @Router /tenancies [post]
func (h *TenancyHandler) CreateTenancy(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.CreateTenancyRequest
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

// GetTenancy handles GET /tenancies/:id
// @Summary Get a tenancy by ID
// @Tags tenancies
// @Produce json
// @Param id path string true "Tenancy ID"
// @Success 200 {object} service.TenancyResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /tenancies/{id} [get]
func (h *TenancyHandler) GetTenancy(c *gin.Context) {
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

// ListTenancies handles GET /tenancies
// @Summary List tenancies
// @Tags tenancies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param search query string false "Search term"
// @Param ordering query string false "Order by field, prefix with - for descending"
// @Param room query string false "Filter by room"
// @Param tenant query string false "Filter by tenant"
// @Param property query string false "Filter by property"
// @Param status query string false "Filter by status"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /tenancies [get]
func (h *TenancyHandler) ListTenancies(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	q := service.TenancyQuery{
		ListParams: listParams(c),
		Room:       c.Query("room"),
		Tenant:     c.Query("tenant"),
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

// UpdateTenancy handles PATCH /tenancies/:id
// @Summary Update a tenancy
// @Tags tenancies
// @Accept json
// @Produce json
// @Param id path string true "Tenancy ID"
// @Param body body service.UpdateTenancyRequest true "Fields to change"
// @Success 200 {object} service.TenancyResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /tenancies/{id} [patch]
func (h *TenancyHandler) UpdateTenancy(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.UpdateTenancyRequest
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

// DeleteTenancy handles DELETE /tenancies/:id
// @Summary Delete a tenancy
// @Tags tenancies
// @Param id path string true "Tenancy ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /tenancies/{id} [delete]
func (h *TenancyHandler) DeleteTenancy(c *gin.Context) {
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
