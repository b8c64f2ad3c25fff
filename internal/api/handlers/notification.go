package handlers

import (
	"net/http"

	"rental-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for the notification inbox
type NotificationHandler struct {
	service service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(s service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{service: s}
}

// ListNotifications handles GET /notifications
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param channel query string false "inapp, email or push"
// @Param template query string false "Template key, e.g. invoice.overdue"
// @Param is_read query bool false "Read flag"
// @Param priority query string false "low, normal, high or urgent"
// @Param related_object_type query string false "Related model name"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	resp, err := h.service.List(c.Request.Context(), user, service.NotificationQuery{
		ListParams:        listParams(c),
		User:              c.Query("user"),
		Channel:           c.Query("channel"),
		Template:          c.Query("template"),
		IsRead:            c.Query("is_read"),
		Priority:          c.Query("priority"),
		RelatedObjectType: c.Query("related_object_type"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MyNotifications handles GET /notifications/my
// @Summary List the current user's notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /notifications/my [get]
func (h *NotificationHandler) MyNotifications(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	resp, err := h.service.My(c.Request.Context(), user, listParams(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetNotification handles GET /notifications/:id
// @Summary Get a notification
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} service.NotificationResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /notifications/{id} [get]
func (h *NotificationHandler) GetNotification(c *gin.Context) {
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

// DeleteNotification handles DELETE /notifications/:id
// @Summary Delete a notification
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
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

// MarkRead handles POST /notifications/:id/mark_read
// @Summary Mark a notification read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} service.NotificationResponse
// @Security BearerAuth
// @Router /notifications/{id}/mark_read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.service.MarkRead(c.Request.Context(), user, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MarkUnread handles POST /notifications/:id/mark_unread
// @Summary Mark a notification unread
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} service.NotificationResponse
// @Security BearerAuth
// @Router /notifications/{id}/mark_unread [post]
func (h *NotificationHandler) MarkUnread(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.service.MarkUnread(c.Request.Context(), user, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MarkAllRead handles POST /notifications/mark_all_read
// @Summary Mark every notification of the current user read
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]int64
// @Security BearerAuth
// @Router /notifications/mark_all_read [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	n, err := h.service.MarkAllRead(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marked_read": n})
}

// UnreadCount handles GET /notifications/unread_count
// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]int64
// @Security BearerAuth
// @Router /notifications/unread_count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	n, err := h.service.UnreadCount(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread_count": n})
}
