package handlers_test

import (
	"net/http"
	"testing"

	"rental-management-backend/internal/api/handlers"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/mocks"
	"rental-management-backend/internal/service"
	"rental-management-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBankHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockBankServiceInterface(ctrl)
	handler := handlers.NewBankHandler(mockService)
	user := landlord()

	h := authenticatedRouter(user)
	h.Router.GET("/banks", handler.ListBanks)
	h.Router.GET("/qr-code", handler.QRCode)

	t.Run("banks unavailable", func(t *testing.T) {
		mockService.EXPECT().Banks(gomock.Any()).Return(nil, apperrors.ErrBanksUnavailable)
		assert.Equal(t, http.StatusServiceUnavailable, h.MakeRequest(http.MethodGet, "/banks", nil).Code)
	})

	t.Run("banks", func(t *testing.T) {
		mockService.EXPECT().Banks(gomock.Any()).
			Return(&service.BanksResponse{Code: "00", Data: []service.Bank{{Code: "VCB", Bin: "970436", ShortName: "Vietcombank"}}}, nil)

		var body service.BanksResponse
		testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodGet, "/banks", nil), http.StatusOK, &body)
		assert.Equal(t, "Vietcombank", body.Data[0].ShortName)
	})

	t.Run("qr code query mapping", func(t *testing.T) {
		mockService.EXPECT().QRCode(gomock.Any(), user, service.QRCodeRequest{
			InvoiceID: "inv-1",
			Amount:    "150000.9",
			AddInfo:   "Phong 101",
		}).Return(&service.QRCodeResponse{QRURL: "https://img.vietqr.io/image/VCB-0123456789-compact.jpg?amount=150000", BankCode: "VCB"}, nil)

		var body map[string]string
		rec := h.MakeRequest(http.MethodGet, "/qr-code?invoice_id=inv-1&amount=150000.9&addInfo=Phong+101", nil)
		testutils.AssertJSONResponse(t, rec, http.StatusOK, &body)
		assert.Contains(t, body["qrUrl"], "VCB-0123456789-compact.jpg")
		assert.Equal(t, "VCB", body["bankCode"])
	})

	t.Run("qr code bank info missing", func(t *testing.T) {
		mockService.EXPECT().QRCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrBankInfoMissing)
		assert.Equal(t, http.StatusBadRequest, h.MakeRequest(http.MethodGet, "/qr-code", nil).Code)
	})

	t.Run("qr code access denied", func(t *testing.T) {
		mockService.EXPECT().QRCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvoiceAccessDenied)
		assert.Equal(t, http.StatusForbidden, h.MakeRequest(http.MethodGet, "/qr-code?invoice_id=x", nil).Code)
	})
}
