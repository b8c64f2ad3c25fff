package handlers

import (
	"net/http"

	"rental-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InvoiceLineHandler handles HTTP requests for invoice lines
type InvoiceLineHandler struct {
	service service.InvoiceLineServiceInterface
}

// NewInvoiceLineHandler creates a new invoice line handler
func NewInvoiceLineHandler(s service.InvoiceLineServiceInterface) *InvoiceLineHandler {
	return &InvoiceLineHandler{service: s}
}

// CreateInvoiceLine handles POST /invoice-lines
// @Summary Create an invoice line
// @Tags invoice-lines
// @Accept json
// @Produce json
// @Param body body service.CreateInvoiceLineRequest true "Invoice line data"
// @Success 201 {object} service.InvoiceLineResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Security BearerAuth
// @Router /invoice-lines [post]
func (h *InvoiceLineHandler) CreateInvoiceLine(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.CreateInvoiceLineRequest
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

// GetInvoiceLine handles GET /invoice-lines/:id
// @Summary Get an invoice line by ID
// @Tags invoice-lines
// @Produce json
// @Param id path string true "Invoice line ID"
// @Success 200 {object} service.InvoiceLineResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /invoice-lines/{id} [get]
func (h *InvoiceLineHandler) GetInvoiceLine(c *gin.Context) {
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

// ListInvoiceLines handles GET /invoice-lines
// @Summary List invoice lines
// @Tags invoice-lines
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param search query string false "Search term"
// @Param ordering query string false "Order by field, prefix with - for descending"
// @Param invoice query string false "Filter by invoice"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /invoice-lines [get]
func (h *InvoiceLineHandler) ListInvoiceLines(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	q := service.InvoiceLineQuery{
		ListParams: listParams(c),
		Invoice:    c.Query("invoice"),
	}
	resp, err := h.service.List(c.Request.Context(), user, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateInvoiceLine handles PATCH /invoice-lines/:id
// @Summary Update an invoice line
// @Tags invoice-lines
// @Accept json
// @Produce json
// @Param id path string true "Invoice line ID"
// @Param body body service.UpdateInvoiceLineRequest true "Fields to change"
// @Success 200 {object} service.InvoiceLineResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /invoice-lines/{id} [patch]
func (h *InvoiceLineHandler) UpdateInvoiceLine(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.UpdateInvoiceLineRequest
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

// DeleteInvoiceLine handles DELETE /invoice-lines/:id
// @Summary Delete an invoice line
// @Tags invoice-lines
// @Param id path string true "Invoice line ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /invoice-lines/{id} [delete]
func (h *InvoiceLineHandler) DeleteInvoiceLine(c *gin.Context) {
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
