package service_test

import (
	"context"
	"testing"
	"time"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/service"
	"rental-management-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

func floatPtr(v float64) *float64 { return &v }

// BillingTestSuite exercises invoices and payments against an in-memory database
type BillingTestSuite struct {
	suite.Suite
	base     *testutils.BaseTestSuite
	services *service.Services
	ctx      context.Context

	landlord *models.User
	tenant   *models.User
	room     *models.Room
	tenancy  *models.Tenancy
}

func (suite *BillingTestSuite) SetupTest() {
	suite.base = testutils.SetupSQLiteSuite(suite.T())
	suite.ctx = context.Background()

	suite.services = newTestServices(suite.T(), suite.base)

	f := suite.base.Factory
	suite.landlord = f.Landlord()
	suite.tenant = f.Tenant()
	suite.room = f.Room(f.Property(suite.landlord))
	suite.tenancy = f.Tenancy(suite.room, suite.tenant)
}

func (suite *BillingTestSuite) notifications(user *models.User, template string) []models.Notification {
	var out []models.Notification
	suite.Require().NoError(suite.base.DB.Where("user_id = ? AND template = ?", user.ID, template).Find(&out).Error)
	return out
}

func (suite *BillingTestSuite) createInvoice(period string) *service.InvoiceResponse {
	resp, err := suite.services.Invoices.Create(suite.ctx, suite.landlord, &service.CreateInvoiceRequest{
		Tenancy: suite.tenancy.ID,
		Period:  period,
		Status:  models.InvoiceStatusPending,
		DueDate: strPtr("2025-04-05"),
		Lines: []service.InvoiceLineInput{
			{ItemType: models.LineItemRent, Quantity: floatPtr(1), UnitPrice: floatPtr(3000000), Amount: floatPtr(3000000)},
			{ItemType: models.LineItemElectricity, Quantity: floatPtr(50), UnitPrice: floatPtr(3500), Amount: floatPtr(175000)},
		},
	})
	suite.Require().NoError(err)
	return resp
}

func (suite *BillingTestSuite) TestCreateInvoiceSumsLines() {
	resp := suite.createInvoice("2025-03")

	suite.Equal(3175000.0, resp.TotalAmount)
	suite.Equal(3175000.0, resp.AmountDue)
	suite.Equal(models.InvoiceStatusPending, resp.Status)
	suite.Equal("Pending", resp.StatusDisplay)
	suite.NotNil(resp.IssuedAt)
	suite.Len(resp.Lines, 2)
	suite.Equal(suite.room.RoomNumber, resp.RoomNumber)
	suite.Len(suite.notifications(suite.tenant, models.TemplateInvoiceCreated), 1)
}

func (suite *BillingTestSuite) TestCreateInvoiceRules() {
	suite.createInvoice("2025-03")

	_, err := suite.services.Invoices.Create(suite.ctx, suite.landlord, &service.CreateInvoiceRequest{Tenancy: suite.tenancy.ID, Period: "2025-03"})
	suite.ErrorIs(err, apperrors.ErrInvoiceExists)

	_, err = suite.services.Invoices.Create(suite.ctx, suite.landlord, &service.CreateInvoiceRequest{Tenancy: suite.tenancy.ID, Period: "2025-13"})
	suite.ErrorIs(err, apperrors.ErrInvalidPeriodFormat)

	_, err = suite.services.Invoices.Create(suite.ctx, suite.tenant, &service.CreateInvoiceRequest{Tenancy: suite.tenancy.ID, Period: "2025-04"})
	suite.ErrorIs(err, apperrors.ErrOnlyLandlords)

	_, err = suite.services.Invoices.Create(suite.ctx, suite.landlord, &service.CreateInvoiceRequest{
		Tenancy: suite.tenancy.ID,
		Period:  "2025-04",
		Lines:   []service.InvoiceLineInput{{ItemType: "gas", Quantity: floatPtr(1), UnitPrice: floatPtr(1), Amount: floatPtr(1)}},
	})
	fields, ok := apperrors.AsFieldErrors(err)
	suite.Require().True(ok)
	suite.Contains(fields, "lines[0].item_type")

	other := suite.base.Factory.Landlord()
	_, err = suite.services.Invoices.Create(suite.ctx, other, &service.CreateInvoiceRequest{Tenancy: suite.tenancy.ID, Period: "2025-05"})
	suite.True(apperrors.IsNotFound(err))
}

func (suite *BillingTestSuite) TestDraftIssuedNotifiesTenant() {
	draft, err := suite.services.Invoices.Create(suite.ctx, suite.landlord, &service.CreateInvoiceRequest{
		Tenancy:     suite.tenancy.ID,
		Period:      "2025-06",
		TotalAmount: floatPtr(1000),
	})
	suite.Require().NoError(err)
	suite.Equal(models.InvoiceStatusDraft, draft.Status)
	suite.Nil(draft.IssuedAt)

	pending := models.InvoiceStatusPending
	issued, err := suite.services.Invoices.Update(suite.ctx, suite.landlord, draft.ID, &service.UpdateInvoiceRequest{Status: &pending})
	suite.Require().NoError(err)
	suite.NotNil(issued.IssuedAt)
	suite.Len(suite.notifications(suite.tenant, models.TemplateInvoiceIssued), 1)
}

func (suite *BillingTestSuite) TestPaymentsDriveInvoiceStatus() {
	inv := suite.base.Factory.Invoice(suite.tenancy, "2025-03", 1000)

	first, err := suite.services.Payments.Create(suite.ctx, suite.tenant, &service.CreatePaymentRequest{Invoice: inv.ID, Amount: 400})
	suite.Require().NoError(err)
	suite.Equal(models.PaymentStatusPending, first.Status)
	suite.Equal(models.PaymentMethodCash, first.Method)

	completed := models.PaymentStatusCompleted
	_, err = suite.services.Payments.Update(suite.ctx, suite.landlord, first.ID, &service.UpdatePaymentRequest{Status: &completed})
	suite.Require().NoError(err)

	got, err := suite.services.Invoices.Get(suite.ctx, suite.tenant, inv.ID)
	suite.Require().NoError(err)
	suite.Equal(models.InvoiceStatusPartial, got.Status)
	suite.Equal(600.0, got.AmountDue)
	suite.Equal(400.0, got.TotalPaid)
	suite.Len(suite.notifications(suite.tenant, models.TemplatePaymentReceived), 1)

	second, err := suite.services.Payments.Create(suite.ctx, suite.landlord, &service.CreatePaymentRequest{
		Invoice: inv.ID, Amount: 600, Status: models.PaymentStatusCompleted, Method: models.PaymentMethodBankTransfer,
	})
	suite.Require().NoError(err)

	got, err = suite.services.Invoices.Get(suite.ctx, suite.landlord, inv.ID)
	suite.Require().NoError(err)
	suite.Equal(models.InvoiceStatusPaid, got.Status)
	suite.Equal(0.0, got.AmountDue)
	suite.NotNil(got.PaidAt)
	suite.Equal(int64(2), got.PaymentCount)

	suite.Require().NoError(suite.services.Payments.Delete(suite.ctx, suite.landlord, second.ID))
	got, err = suite.services.Invoices.Get(suite.ctx, suite.landlord, inv.ID)
	suite.Require().NoError(err)
	suite.Equal(models.InvoiceStatusPartial, got.Status)
	suite.Nil(got.PaidAt)
}

func (suite *BillingTestSuite) TestPaymentValidation() {
	inv := suite.base.Factory.Invoice(suite.tenancy, "2025-03", 1000)

	_, err := suite.services.Payments.Create(suite.ctx, suite.tenant, &service.CreatePaymentRequest{Invoice: inv.ID, Amount: 0})
	suite.True(apperrors.IsValidation(err))

	stranger := suite.base.Factory.Tenant()
	_, err = suite.services.Payments.Create(suite.ctx, stranger, &service.CreatePaymentRequest{Invoice: inv.ID, Amount: 10})
	suite.True(apperrors.IsNotFound(err))
}

func (suite *BillingTestSuite) TestInvoiceVisibility() {
	inv := suite.base.Factory.Invoice(suite.tenancy, "2025-03", 1000)

	_, err := suite.services.Invoices.Get(suite.ctx, suite.base.Factory.Tenant(), inv.ID)
	suite.ErrorIs(err, apperrors.ErrInvoiceNotFound)

	list, err := suite.services.Invoices.List(suite.ctx, suite.tenant, service.InvoiceQuery{Status: "pending,partial"})
	suite.Require().NoError(err)
	suite.Equal(int64(1), list.Total)

	_, err = suite.services.Invoices.List(suite.ctx, suite.tenant, service.InvoiceQuery{Status: "unknown"})
	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
}

func (suite *BillingTestSuite) TestCheckOverdue() {
	inv := suite.base.Factory.Invoice(suite.tenancy, "2025-02", 1000)
	suite.base.Factory.Invoice(suite.tenancy, "2025-03", 1000)

	past := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.Require().NoError(suite.base.DB.Model(&models.Invoice{}).Where("id = ?", inv.ID).Update("due_date", past).Error)
	suite.services.Invoices.SetClock(func() time.Time { return time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC) })

	dry, err := suite.services.Invoices.CheckOverdue(suite.ctx, true)
	suite.Require().NoError(err)
	suite.Equal(1, dry.Checked)
	suite.Equal(0, dry.Notified)
	suite.Require().Len(dry.Candidates, 1)
	suite.Equal(suite.tenant.Email, dry.Candidates[0].TenantEmail)

	result, err := suite.services.Invoices.CheckOverdue(suite.ctx, false)
	suite.Require().NoError(err)
	suite.Equal(1, result.Notified)
	suite.Zero(result.Errors)

	var stored models.Invoice
	suite.Require().NoError(suite.base.DB.First(&stored, "id = ?", inv.ID).Error)
	suite.Equal(models.InvoiceStatusOverdue, stored.Status)
	suite.Len(suite.notifications(suite.tenant, models.TemplateInvoiceOverdue), 1)
	suite.Len(suite.notifications(suite.landlord, models.TemplateInvoiceOverdue), 1)
}

func (suite *BillingTestSuite) TestInvoicePDF() {
	inv := suite.base.Factory.Invoice(suite.tenancy, "2025-03", 1000)

	doc, err := suite.services.Invoices.PDF(suite.ctx, suite.tenant, inv.ID)
	suite.Require().NoError(err)
	suite.Contains(doc.Filename, "2025-03")
	suite.Equal("%PDF", string(doc.Content[:4]))
}

func TestBillingTestSuite(t *testing.T) {
	suite.Run(t, new(BillingTestSuite))
}
