package handlers

import (
	"net/http"

	"rental-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MaintenanceHandler handles HTTP requests for maintenance requests
type MaintenanceHandler struct {
	service service.MaintenanceServiceInterface
}

// NewMaintenanceHandler creates a new maintenance request handler
func NewMaintenanceHandler(s service.MaintenanceServiceInterface) *MaintenanceHandler {
	return &MaintenanceHandler{service: s}
}

// CreateMaintenance handles POST /maintenance
// @Summary Create a maintenance request
// @Tags maintenance
// @Accept json
// @Produce json
// @Param body body service.CreateMaintenanceRequest true "Maintenance request data"
// @Success 201 {object} service.MaintenanceResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Security BearerAuth
// @Router /maintenance [post]
func (h *MaintenanceHandler) CreateMaintenance(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.CreateMaintenanceRequest
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

// GetMaintenance handles GET /maintenance/:id
// @Summary Get a maintenance request by ID
// @Tags maintenance
// @Produce json
// @Param id path string true "Maintenance request ID"
// @Success 200 {object} service.MaintenanceResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /maintenance/{id} [get]
func (h *MaintenanceHandler) GetMaintenance(c *gin.Context) {
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

// ListMaintenance handles GET /maintenance
// @Summary List maintenance requests
// @Tags maintenance
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param search query string false "Search term"
// @Param ordering query string false "Order by field, prefix with - for descending"
// @Param room query string false "Filter by room"
// @Param status query string false "Filter by status"
// @Param category query string false "Filter by category"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /maintenance [get]
func (h *MaintenanceHandler) ListMaintenance(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	q := service.MaintenanceQuery{
		ListParams: listParams(c),
		Room:       c.Query("room"),
		Status:     c.Query("status"),
		Category:   c.Query("category"),
	}
	resp, err := h.service.List(c.Request.Context(), user, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateMaintenance handles PATCH /maintenance/:id
// @Summary Update a maintenance request
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance request ID"
// @Param body body service.UpdateMaintenanceRequest true "Fields to change"
// @Success 200 {object} service.MaintenanceResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /maintenance/{id} [patch]
func (h *MaintenanceHandler) UpdateMaintenance(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.UpdateMaintenanceRequest
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

// DeleteMaintenance handles DELETE /maintenance/:id
// @Summary Delete a maintenance request
// @Tags maintenance
// @Param id path string true "Maintenance request ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /maintenance/{id} [delete]
func (h *MaintenanceHandler) DeleteMaintenance(c *gin.Context) {
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

// CreateAttachment handles POST /maintenance/attachments
// @Summary Attach a file to a maintenance request
// @Tags maintenance
// @Accept json
// @Produce json
// @Param body body service.CreateAttachmentRequest true "Attachment data"
// @Success 201 {object} service.AttachmentResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /maintenance/attachments [post]
func (h *MaintenanceHandler) CreateAttachment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.CreateAttachmentRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.service.CreateAttachment(c.Request.Context(), user, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetAttachment handles GET /maintenance/attachments/:id
// @Summary Get a maintenance attachment
// @Tags maintenance
// @Produce json
// @Param id path string true "Attachment ID"
// @Success 200 {object} service.AttachmentResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /maintenance/attachments/{id} [get]
func (h *MaintenanceHandler) GetAttachment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.service.GetAttachment(c.Request.Context(), user, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListAttachments handles GET /maintenance/attachments
// @Summary List maintenance attachments
// @Tags maintenance
// @Produce json
// @Param request query string false "Filter by maintenance request"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /maintenance/attachments [get]
func (h *MaintenanceHandler) ListAttachments(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	resp, err := h.service.ListAttachments(c.Request.Context(), user, service.AttachmentQuery{
		ListParams: listParams(c),
		Request:    c.Query("request"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteAttachment handles DELETE /maintenance/attachments/:id
// @Summary Delete a maintenance attachment
// @Tags maintenance
// @Param id path string true "Attachment ID"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /maintenance/attachments/{id} [delete]
func (h *MaintenanceHandler) DeleteAttachment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAttachment(c.Request.Context(), user, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
