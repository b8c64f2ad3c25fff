package handlers

import (
	"net/http"

	"rental-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PropertyHandler handles HTTP requests for properties
type PropertyHandler struct {
	service service.PropertyServiceInterface
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(s service.PropertyServiceInterface) *PropertyHandler {
	return &PropertyHandler{service: s}
}

// CreateProperty handles POST /properties
// @Summary Create a property
// @Tags properties
// @Accept json
// @Produce json
// @Param body body service.CreatePropertyRequest true "Property data"
// @Success 201 {object} service.PropertyResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Security BearerAuth
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.CreatePropertyRequest
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

// GetProperty handles GET /properties/:id
// @Summary Get a property by ID
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} service.PropertyResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
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

// ListProperties handles GET /properties
// @Summary List properties
// @Tags properties
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param search query string false "Search term"
// @Param ordering query string false "Order by field, prefix with - for descending"
// @Param owner query string false "Filter by owner"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	q := service.PropertyQuery{
		ListParams: listParams(c),
		Owner:      c.Query("owner"),
	}
	resp, err := h.service.List(c.Request.Context(), user, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateProperty handles PATCH /properties/:id
// @Summary Update a property
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param body body service.UpdatePropertyRequest true "Fields to change"
// @Success 200 {object} service.PropertyResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /properties/{id} [patch]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.UpdatePropertyRequest
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

// DeleteProperty handles DELETE /properties/:id
// @Summary Delete a property
// @Tags properties
// @Param id path string true "Property ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
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
