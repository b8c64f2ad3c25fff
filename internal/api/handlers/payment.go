package handlers

import (
	"net/http"

	"rental-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for payments
type PaymentHandler struct {
	service service.PaymentServiceInterface
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(s service.PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{service: s}
}

// CreatePayment handles POST /payments
// @Summary Create a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param body body service.CreatePaymentRequest true "Payment data"
// @Success 201 {object} service.PaymentResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Security BearerAuth
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.CreatePaymentRequest
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

// GetPayment handles GET /payments/:id
// @Summary Get a payment by ID
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} service.PaymentResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
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

// ListPayments handles GET /payments
// @Summary List payments
// @Tags payments
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param search query string false "Search term"
// @Param ordering query string false "Order by field, prefix with - for descending"
// @Param invoice query string false "Filter by invoice"
// @Param status query string false "Filter by status"
// @Param method query string false "Filter by method"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	q := service.PaymentQuery{
		ListParams: listParams(c),
		Invoice:    c.Query("invoice"),
		Status:     c.Query("status"),
		Method:     c.Query("method"),
	}
	resp, err := h.service.List(c.Request.Context(), user, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdatePayment handles PATCH /payments/:id
// @Summary Update a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param body body service.UpdatePaymentRequest true "Fields to change"
// @Success 200 {object} service.PaymentResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /payments/{id} [patch]
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.UpdatePaymentRequest
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

// DeletePayment handles DELETE /payments/:id
// @Summary Delete a payment
// @Tags payments
// @Param id path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
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
