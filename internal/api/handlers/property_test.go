package handlers_test

import (
	"net/http"
	"testing"

	"rental-management-backend/internal/api/handlers"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/mocks"
	"rental-management-backend/internal/service"
	"rental-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPropertyHandlerCRUD(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockPropertyServiceInterface(ctrl)
	handler := handlers.NewPropertyHandler(mockService)
	user := landlord()

	h := authenticatedRouter(user)
	h.Router.POST("/properties", handler.CreateProperty)
	h.Router.GET("/properties", handler.ListProperties)
	h.Router.GET("/properties/:id", handler.GetProperty)
	h.Router.PATCH("/properties/:id", handler.UpdateProperty)
	h.Router.DELETE("/properties/:id", handler.DeleteProperty)

	id := uuid.New()

	t.Run("create", func(t *testing.T) {
		mockService.EXPECT().Create(gomock.Any(), user, gomock.Any()).
			Return(&service.PropertyResponse{ID: id, Owner: user.ID, Name: "Block A"}, nil)

		var body service.PropertyResponse
		rec := h.MakeRequest(http.MethodPost, "/properties", map[string]string{"name": "Block A", "address": "1 Le Loi"})
		testutils.AssertJSONResponse(t, rec, http.StatusCreated, &body)
		assert.Equal(t, user.ID, body.Owner)
	})

	t.Run("create for another owner", func(t *testing.T) {
		mockService.EXPECT().Create(gomock.Any(), user, gomock.Any()).Return(nil, apperrors.ErrNotPropertyOwner)

		rec := h.MakeRequest(http.MethodPost, "/properties", map[string]string{"name": "X", "owner": uuid.NewString()})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("list by owner", func(t *testing.T) {
		mockService.EXPECT().List(gomock.Any(), user, service.PropertyQuery{
			ListParams: service.ListParams{Page: 1, PageSize: service.DefaultPageSize, Ordering: "name"},
			Owner:      user.ID.String(),
		}).Return(&service.ListResponse[service.PropertyResponse]{Items: []service.PropertyResponse{{ID: id, OccupancyRate: 50}}, Total: 1}, nil)

		var body service.ListResponse[service.PropertyResponse]
		testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodGet, "/properties?ordering=name&owner="+user.ID.String(), nil), http.StatusOK, &body)
		assert.Equal(t, int64(1), body.Total)
		assert.Equal(t, 50.0, body.Items[0].OccupancyRate)
	})

	t.Run("update and delete", func(t *testing.T) {
		mockService.EXPECT().Update(gomock.Any(), user, id, gomock.Any()).Return(&service.PropertyResponse{ID: id, Name: "Renamed"}, nil)
		assert.Equal(t, http.StatusOK, h.MakeRequest(http.MethodPatch, "/properties/"+id.String(), map[string]string{"name": "Renamed"}).Code)

		mockService.EXPECT().Delete(gomock.Any(), user, id).Return(nil)
		assert.Equal(t, http.StatusNoContent, h.MakeRequest(http.MethodDelete, "/properties/"+id.String(), nil).Code)
	})
}

func TestRoomHandlerListFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockRoomServiceInterface(ctrl)
	handler := handlers.NewRoomHandler(mockService)

	h := authenticatedRouter(landlord())
	h.Router.GET("/rooms", handler.ListRooms)

	building := uuid.NewString()
	mockService.EXPECT().List(gomock.Any(), gomock.Any(), service.RoomQuery{
		ListParams: service.ListParams{Page: 1, PageSize: service.DefaultPageSize},
		Building:   building,
		Status:     "vacant,maintenance",
		FloorGTE:   "2",
		FloorLTE:   "5",
	}).Return(&service.ListResponse[service.RoomResponse]{}, nil)

	rec := h.MakeRequest(http.MethodGet, "/rooms?building="+building+"&status=vacant,maintenance&floor_gte=2&floor_lte=5", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMaintenanceAttachments(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockMaintenanceServiceInterface(ctrl)
	handler := handlers.NewMaintenanceHandler(mockService)
	user := tenant()

	h := authenticatedRouter(user)
	h.Router.GET("/maintenance/attachments", handler.ListAttachments)
	h.Router.POST("/maintenance/attachments", handler.CreateAttachment)
	h.Router.DELETE("/maintenance/attachments/:id", handler.DeleteAttachment)
	h.Router.GET("/maintenance/:id", handler.GetMaintenance)

	requestID := uuid.New()
	mockService.EXPECT().CreateAttachment(gomock.Any(), user, &service.CreateAttachmentRequest{Request: requestID, File: "maintenance/a/leak.jpg"}).
		Return(&service.AttachmentResponse{ID: uuid.New()}, nil)
	rec := h.MakeRequest(http.MethodPost, "/maintenance/attachments", map[string]string{"request": requestID.String(), "file": "maintenance/a/leak.jpg"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	mockService.EXPECT().ListAttachments(gomock.Any(), user, service.AttachmentQuery{
		ListParams: service.ListParams{Page: 1, PageSize: service.DefaultPageSize},
		Request:    requestID.String(),
	}).Return(&service.ListResponse[service.AttachmentResponse]{}, nil)
	assert.Equal(t, http.StatusOK, h.MakeRequest(http.MethodGet, "/maintenance/attachments?request="+requestID.String(), nil).Code)

	mockService.EXPECT().Get(gomock.Any(), user, requestID).Return(nil, apperrors.ErrMaintenanceRequestNotFound)
	assert.Equal(t, http.StatusNotFound, h.MakeRequest(http.MethodGet, "/maintenance/"+requestID.String(), nil).Code)
}
