package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"rental-management-backend/internal/api/handlers"
	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/mocks"
	"rental-management-backend/internal/service"
	"rental-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAcceptInvite(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockInviteServiceInterface(ctrl)
	handler := handlers.NewInviteHandler(mockService)
	user := tenant()

	h := authenticatedRouter(user)
	h.Router.POST("/invites/accept", handler.AcceptInvite)
	h.Router.PATCH("/invites/:id", handler.UpdateInvite)

	t.Run("accepted", func(t *testing.T) {
		id := uuid.New()
		mockService.EXPECT().Accept(gomock.Any(), user, &service.AcceptInviteRequest{Token: "abc123"}).
			Return(&service.InviteResponse{ID: id, Status: models.InviteStatusAccepted}, nil)

		var body service.InviteResponse
		testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodPost, "/invites/accept", map[string]string{"token": "abc123"}), http.StatusOK, &body)
		assert.Equal(t, models.InviteStatusAccepted, body.Status)
	})

	t.Run("already accepted", func(t *testing.T) {
		mockService.EXPECT().Accept(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInviteAlreadyAccepted)

		rec := h.MakeRequest(http.MethodPost, "/invites/accept", map[string]string{"token": "abc123"})
		testutils.AssertErrorResponse(t, rec, http.StatusBadRequest, "already been accepted")
	})

	t.Run("status update", func(t *testing.T) {
		id := uuid.New()
		mockService.EXPECT().Update(gomock.Any(), user, id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *models.User, _ uuid.UUID, req *service.UpdateInviteRequest) (*service.InviteResponse, error) {
				assert.Equal(t, models.InviteStatusRejected, *req.Status)
				return &service.InviteResponse{ID: id, Status: models.InviteStatusRejected}, nil
			})

		rec := h.MakeRequest(http.MethodPatch, "/invites/"+id.String(), map[string]string{"status": "rejected"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
