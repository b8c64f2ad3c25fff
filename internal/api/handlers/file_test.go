package handlers_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"rental-management-backend/internal/api/handlers"
	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/mocks"
	"rental-management-backend/internal/service"
	"rental-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func multipartRequest(t *testing.T, url, filename, purpose string, content []byte) *http.Request {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	if purpose != "" {
		require.NoError(t, w.WriteField("purpose", purpose))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, url, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockFileServiceInterface(ctrl)
	handler := handlers.NewFileHandler(mockService)
	user := landlord()

	h := authenticatedRouter(user)
	h.Router.POST("/files", handler.UploadFile)

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().Upload(gomock.Any(), user, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *models.User, req *service.UploadFileRequest) (*service.FileResponse, error) {
				assert.Equal(t, "meter", req.Purpose)
				assert.Equal(t, "reading.jpg", req.Filename)
				assert.Equal(t, int64(5), req.Size)
				data, err := io.ReadAll(req.Content)
				require.NoError(t, err)
				assert.Equal(t, "12345", string(data))
				return &service.FileResponse{ID: uuid.New(), Path: "meter/x/reading.jpg", Purpose: models.FilePurposeMeter}, nil
			})

		rec := httptest.NewRecorder()
		h.Router.ServeHTTP(rec, multipartRequest(t, "/files", "reading.jpg", "meter", []byte("12345")))

		var body service.FileResponse
		testutils.AssertJSONResponse(t, rec, http.StatusCreated, &body)
		assert.Equal(t, "meter/x/reading.jpg", body.Path)
	})

	t.Run("missing file", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Router.ServeHTTP(rec, multipartRequest(t, "/files", "", "contract", nil))
		testutils.AssertErrorResponse(t, rec, http.StatusBadRequest, "file is required")
	})

	t.Run("contract must be pdf", func(t *testing.T) {
		mockService.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrContractMustBePDF)

		rec := httptest.NewRecorder()
		h.Router.ServeHTTP(rec, multipartRequest(t, "/files", "contract.docx", "contract", []byte("x")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
