package service

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"rental-management-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice() *InvoiceResponse {
	due := "2025-03-10"
	phone := "0901234567"
	return &InvoiceResponse{
		ID:            uuid.New(),
		Period:        "2025-03",
		TotalAmount:   3850000,
		TotalPaid:     1000000,
		AmountDue:     2850000,
		StatusDisplay: "Thanh toán một phần",
		DueDate:       &due,
		Notes:         "Thanh toán trước ngày 10.\nCảm ơn!",
		CreatedAt:     time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
		TenancyDetail: &InvoiceTenancyDetail{
			Tenant:   &TenantSummary{FullName: "Nguyễn Văn A", Email: "a@example.com", Phone: &phone},
			Property: &PropertySummary{Name: "Nhà trọ Bình Thạnh", Address: "12 Nguyễn Huệ"},
			Room:     &RoomBrief{RoomNumber: "101"},
		},
		Lines: []InvoiceLineResponse{
			{ItemType: models.LineItemRent, Quantity: 1, UnitPrice: 3500000, Amount: 3500000},
			{ItemType: models.LineItemElectricity, Quantity: 100, UnitPrice: 3500, Amount: 350000},
		},
	}
}

func TestRenderInvoice(t *testing.T) {
	out, err := renderInvoice(sampleInvoice(), PDFFonts{})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out[len(out)-16:]), "%%EOF")
}

func TestRenderInvoiceMissingFont(t *testing.T) {
	_, err := renderInvoice(sampleInvoice(), PDFFonts{Regular: filepath.Join(t.TempDir(), "missing.ttf")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read PDF font")
}

func TestFoldASCII(t *testing.T) {
	assert.Equal(t, "HOA DON THANH TOAN", foldASCII("HÓA ĐƠN THANH TOÁN"))
	assert.Equal(t, "Tien dien", foldASCII("Tiền điện"))
	assert.Equal(t, "a b", foldASCII("a\tb"))
	assert.Equal(t, "100 ?", foldASCII("100 €"))
}

func TestInvoicePDFFormatting(t *testing.T) {
	assert.Equal(t, "3,500,000", thousands(3500000))
	assert.Equal(t, "-1,000", thousands(-999.6))
	assert.Equal(t, "0", thousands(0))
	assert.Equal(t, "10/03/2025", displayDate("2025-03-10"))
	assert.Equal(t, "2025-03", displayDate("2025-03"))
}
