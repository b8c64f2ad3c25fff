package handlers

import (
	"net/http"

	"rental-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuditLogHandler serves the read-only audit trail
type AuditLogHandler struct {
	service service.AuditServiceInterface
}

// NewAuditLogHandler creates a new audit log handler
func NewAuditLogHandler(s service.AuditServiceInterface) *AuditLogHandler {
	return &AuditLogHandler{service: s}
}

// ListAuditLogs handles GET /audit-logs
// @Summary List audit log entries
// @Tags audit-logs
// @Produce json
// @Param action_type query string false "create, update, delete, login, ..."
// @Param model_name query string false "Model name, e.g. Invoice"
// @Param user query string false "Acting user ID"
// @Param created_after query string false "RFC3339 timestamp or date"
// @Param created_before query string false "RFC3339 timestamp or date"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} ErrorResponse "Superuser required"
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *AuditLogHandler) ListAuditLogs(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	resp, err := h.service.List(c.Request.Context(), user, service.AuditLogQuery{
		ListParams:    listParams(c),
		ActionType:    c.Query("action_type"),
		ModelName:     c.Query("model_name"),
		UserID:        c.Query("user"),
		ObjectID:      c.Query("object_id"),
		CreatedAfter:  c.Query("created_after"),
		CreatedBefore: c.Query("created_before"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAuditLog handles GET /audit-logs/:id
// @Summary Get an audit log entry
// @Tags audit-logs
// @Produce json
// @Param id path string true "Audit log ID"
// @Success 200 {object} service.AuditLogResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /audit-logs/{id} [get]
func (h *AuditLogHandler) GetAuditLog(c *gin.Context) {
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
