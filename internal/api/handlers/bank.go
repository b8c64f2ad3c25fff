package handlers

import (
	"net/http"

	"rental-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BankHandler serves the bank directory and payment QR links
type BankHandler struct {
	service service.BankServiceInterface
}

// NewBankHandler creates a new bank handler
func NewBankHandler(s service.BankServiceInterface) *BankHandler {
	return &BankHandler{service: s}
}

// ListBanks handles GET /banks
// @Summary List Vietnamese banks
// @Description Proxied from VietQR and cached in memory
// @Tags banks
// @Produce json
// @Success 200 {object} service.BanksResponse
// @Failure 503 {object} ErrorResponse "Bank directory unavailable"
// @Router /banks [get]
func (h *BankHandler) ListBanks(c *gin.Context) {
	resp, err := h.service.Banks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// QRCode handles GET /qr-code
// @Summary Build a VietQR payment link
// @Tags banks
// @Produce json
// @Param invoice_id query string false "Invoice whose landlord receives the transfer"
// @Param amount query number false "Amount, truncated to an integer"
// @Param addInfo query string false "Transfer note"
// @Success 200 {object} service.QRCodeResponse
// @Failure 400 {object} ErrorResponse "Missing bank info or invalid amount"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Security BearerAuth
// @Router /qr-code [get]
func (h *BankHandler) QRCode(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	resp, err := h.service.QRCode(c.Request.Context(), user, service.QRCodeRequest{
		InvoiceID: c.Query("invoice_id"),
		Amount:    c.Query("amount"),
		AddInfo:   c.Query("addInfo"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
