package handlers

import (
	"net/http"

	"rental-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ServicePriceHandler handles HTTP requests for service prices
type ServicePriceHandler struct {
	service service.ServicePriceServiceInterface
}

// NewServicePriceHandler creates a new service price handler
func NewServicePriceHandler(s service.ServicePriceServiceInterface) *ServicePriceHandler {
	return &ServicePriceHandler{service: s}
}

// CreateServicePrice handles POST /prices
// @Summary Create a service price
// @Tags prices
// @Accept json
// @Produce json
// @Param body body service.CreateServicePriceRequest true "Service price data"
// @Success 201 {object} service.ServicePriceResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Security BearerAuth
// @Router /prices [post]
func (h *ServicePriceHandler) CreateServicePrice(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.CreateServicePriceRequest
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

// GetServicePrice handles GET /prices/:id
// @Summary Get a service price by ID
// @Tags prices
// @Produce json
// @Param id path string true "Service price ID"
// @Success 200 {object} service.ServicePriceResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /prices/{id} [get]
func (h *ServicePriceHandler) GetServicePrice(c *gin.Context) {
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

// ListServicePrices handles GET /prices
// @Summary List service prices
// @Tags prices
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param search query string false "Search term"
// @Param ordering query string false "Order by field, prefix with - for descending"
// @Param property query string false "Filter by property"
// @Param service_type query string false "Filter by service type"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /prices [get]
func (h *ServicePriceHandler) ListServicePrices(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	q := service.ServicePriceQuery{
		ListParams:  listParams(c),
		Property:    c.Query("property"),
		ServiceType: c.Query("service_type"),
	}
	resp, err := h.service.List(c.Request.Context(), user, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateServicePrice handles PATCH /prices/:id
// @Summary Update a service price
// @Tags prices
// @Accept json
// @Produce json
// @Param id path string true "Service price ID"
// @Param body body service.UpdateServicePriceRequest true "Fields to change"
// @Success 200 {object} service.ServicePriceResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /prices/{id} [patch]
func (h *ServicePriceHandler) UpdateServicePrice(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.UpdateServicePriceRequest
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

// DeleteServicePrice handles DELETE /prices/:id
// @Summary Delete a service price
// @Tags prices
// @Param id path string true "Service price ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /prices/{id} [delete]
func (h *ServicePriceHandler) DeleteServicePrice(c *gin.Context) {
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
