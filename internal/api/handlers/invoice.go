package handlers

import (
	"fmt"
	"net/http"

	"rental-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles HTTP requests for invoices
type InvoiceHandler struct {
	service service.InvoiceServiceInterface
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(s service.InvoiceServiceInterface) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

// CreateInvoice handles POST /invoices
// @Summary Create an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param body body service.CreateInvoiceRequest true "Invoice data"
// @Success 201 {object} service.InvoiceResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Security BearerAuth
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.CreateInvoiceRequest
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

// GetInvoice handles GET /invoices/:id
// @Summary Get an invoice by ID
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Param fields query string false "Comma separated response keys"
// @Success 200 {object} service.InvoiceResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
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
	respondFields(c, http.StatusOK, resp)
}

// ListInvoices handles GET /invoices
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param search query string false "Search term"
// @Param ordering query string false "Order by field, prefix with - for descending"
// @Param status query string false "Filter by status"
// @Param period query string false "Filter by period"
// @Param period_gte query string false "Filter by period gte"
// @Param period_lte query string false "Filter by period lte"
// @Param property query string false "Filter by property"
// @Param tenancy query string false "Filter by tenancy"
// @Param fields query string false "Comma separated response keys"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	q := service.InvoiceQuery{
		ListParams: listParams(c),
		Status:     c.Query("status"),
		Period:     c.Query("period"),
		PeriodGTE:  c.Query("period_gte"),
		PeriodLTE:  c.Query("period_lte"),
		Property:   c.Query("property"),
		Tenancy:    c.Query("tenancy"),
	}
	resp, err := h.service.List(c.Request.Context(), user, q)
	if err != nil {
		respondError(c, err)
		return
	}
	respondFields(c, http.StatusOK, resp)
}

// UpdateInvoice handles PATCH /invoices/:id
// @Summary Update an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param body body service.UpdateInvoiceRequest true "Fields to change"
// @Success 200 {object} service.InvoiceResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /invoices/{id} [patch]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.UpdateInvoiceRequest
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

// DeleteInvoice handles DELETE /invoices/:id
// @Summary Delete an invoice
// @Tags invoices
// @Param id path string true "Invoice ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
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

// DownloadInvoicePDF handles GET /invoices/:id/pdf
// @Summary Download an invoice as PDF
// @Tags invoices
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200 {file} file "Invoice PDF"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadInvoicePDF(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	doc, err := h.service.PDF(c.Request.Context(), user, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.Content)
}
