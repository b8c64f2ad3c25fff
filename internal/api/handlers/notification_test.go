package handlers_test

import (
	"net/http"
	"testing"

	"rental-management-backend/internal/api/handlers"
	"rental-management-backend/internal/mocks"
	"rental-management-backend/internal/service"
	"rental-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupNotificationRoutes(t *testing.T) (*mocks.MockNotificationServiceInterface, *testutils.HTTPTestSuite) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockNotificationServiceInterface(ctrl)
	handler := handlers.NewNotificationHandler(mockService)

	h := authenticatedRouter(tenant())
	n := h.Router.Group("/notifications")
	n.GET("", handler.ListNotifications)
	n.GET("/my", handler.MyNotifications)
	n.GET("/unread_count", handler.UnreadCount)
	n.POST("/mark_all_read", handler.MarkAllRead)
	n.GET("/:id", handler.GetNotification)
	n.DELETE("/:id", handler.DeleteNotification)
	n.POST("/:id/mark_read", handler.MarkRead)
	n.POST("/:id/mark_unread", handler.MarkUnread)
	return mockService, h
}

func TestNotificationCounters(t *testing.T) {
	mockService, h := setupNotificationRoutes(t)

	mockService.EXPECT().UnreadCount(gomock.Any(), gomock.Any()).Return(int64(4), nil)
	var count map[string]int64
	testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodGet, "/notifications/unread_count", nil), http.StatusOK, &count)
	assert.Equal(t, int64(4), count["unread_count"])

	mockService.EXPECT().MarkAllRead(gomock.Any(), gomock.Any()).Return(int64(4), nil)
	var marked map[string]int64
	testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodPost, "/notifications/mark_all_read", nil), http.StatusOK, &marked)
	assert.Equal(t, int64(4), marked["marked_read"])
}

func TestNotificationMarkReadAndUnread(t *testing.T) {
	mockService, h := setupNotificationRoutes(t)
	id := uuid.New()

	mockService.EXPECT().MarkRead(gomock.Any(), gomock.Any(), id).Return(&service.NotificationResponse{ID: id, IsRead: true}, nil)
	var read service.NotificationResponse
	testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodPost, "/notifications/"+id.String()+"/mark_read", nil), http.StatusOK, &read)
	assert.True(t, read.IsRead)

	mockService.EXPECT().MarkUnread(gomock.Any(), gomock.Any(), id).Return(&service.NotificationResponse{ID: id}, nil)
	var unread service.NotificationResponse
	testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodPost, "/notifications/"+id.String()+"/mark_unread", nil), http.StatusOK, &unread)
	assert.False(t, unread.IsRead)
}

func TestNotificationListFilters(t *testing.T) {
	mockService, h := setupNotificationRoutes(t)

	mockService.EXPECT().List(gomock.Any(), gomock.Any(), service.NotificationQuery{
		ListParams: service.ListParams{Page: 1, PageSize: service.DefaultPageSize},
		Template:   "invoice.overdue",
		IsRead:     "false",
		Priority:   "urgent",
	}).Return(&service.ListResponse[service.NotificationResponse]{}, nil)
	assert.Equal(t, http.StatusOK,
		h.MakeRequest(http.MethodGet, "/notifications?template=invoice.overdue&is_read=false&priority=urgent", nil).Code)

	mockService.EXPECT().My(gomock.Any(), gomock.Any(), service.ListParams{Page: 3, PageSize: 5}).
		Return(&service.ListResponse[service.NotificationResponse]{}, nil)
	assert.Equal(t, http.StatusOK, h.MakeRequest(http.MethodGet, "/notifications/my?page=3&page_size=5", nil).Code)
}
