package handlers

import (
	"net/http"

	"rental-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MeterReadingHandler handles HTTP requests for meter readings
type MeterReadingHandler struct {
	service service.MeterReadingServiceInterface
}

// NewMeterReadingHandler creates a new meter reading handler
func NewMeterReadingHandler(s service.MeterReadingServiceInterface) *MeterReadingHandler {
	return &MeterReadingHandler{service: s}
}

// CreateMeterReading handles POST /meter-readings
// @Summary Create a meter reading
// @Tags meter-readings
// @Accept json
// @Produce json
// @Param body body service.CreateMeterReadingRequest true "Meter reading data"
// @Success 201 {object} service.MeterReadingResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Security BearerAuth
// @Router /meter-readings [post]
func (h *MeterReadingHandler) CreateMeterReading(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.CreateMeterReadingRequest
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

// GetMeterReading handles GET /meter-readings/:id
// @Summary Get a meter reading by ID
// @Tags meter-readings
// @Produce json
// @Param id path string true "Meter reading ID"
// @Success 200 {object} service.MeterReadingResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /meter-readings/{id} [get]
func (h *MeterReadingHandler) GetMeterReading(c *gin.Context) {
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

// ListMeterReadings handles GET /meter-readings
// @Summary List meter readings
// @Tags meter-readings
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param search query string false "Search term"
// @Param ordering query string false "Order by field, prefix with - for descending"
// @Param room query string false "Filter by room"
// @Param property query string false "Filter by property"
// @Param period query string false "Filter by period"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /meter-readings [get]
func (h *MeterReadingHandler) ListMeterReadings(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	q := service.MeterReadingQuery{
		ListParams: listParams(c),
		Room:       c.Query("room"),
		Property:   c.Query("property"),
		Period:     c.Query("period"),
	}
	resp, err := h.service.List(c.Request.Context(), user, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateMeterReading handles PATCH /meter-readings/:id
// @Summary Update a meter reading
// @Tags meter-readings
// @Accept json
// @Produce json
// @Param id path string true "Meter reading ID"
// @Param body body service.UpdateMeterReadingRequest true "Fields to change"
// @Success 200 {object} service.MeterReadingResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /meter-readings/{id} [patch]
func (h *MeterReadingHandler) UpdateMeterReading(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.UpdateMeterReadingRequest
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

// DeleteMeterReading handles DELETE /meter-readings/:id
// @Summary Delete a meter reading
// @Tags meter-readings
// @Param id path string true "Meter reading ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /meter-readings/{id} [delete]
func (h *MeterReadingHandler) DeleteMeterReading(c *gin.Context) {
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
