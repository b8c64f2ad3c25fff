package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/repository"
	"rental-management-backend/internal/service"
	"rental-management-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// InviteServiceTestSuite exercises the invite workflow against an in-memory database
type InviteServiceTestSuite struct {
	suite.Suite
	base     *testutils.BaseTestSuite
	services *service.Services
	ctx      context.Context

	landlord *models.User
	tenant   *models.User
	property *models.Property
	room     *models.Room
}

func (suite *InviteServiceTestSuite) SetupTest() {
	suite.base = testutils.SetupSQLiteSuite(suite.T())
	suite.services = newTestServices(suite.T(), suite.base)
	suite.ctx = context.Background()

	suite.landlord = suite.base.Factory.Landlord()
	suite.tenant = suite.base.Factory.Tenant()
	suite.property = suite.base.Factory.Property(suite.landlord)
	suite.room = suite.base.Factory.Room(suite.property)
}

func (suite *InviteServiceTestSuite) invite() *service.InviteResponse {
	roomID := suite.room.ID
	resp, err := suite.services.Invites.Create(suite.ctx, suite.landlord, &service.CreateInviteRequest{
		Property:     suite.property.ID,
		Room:         &roomID,
		Email:        strings.ToUpper(suite.tenant.Email),
		ContractFile: "contract/abc/contract.pdf",
	})
	suite.Require().NoError(err)
	return resp
}

func (suite *InviteServiceTestSuite) TestCreateNotifiesBothSides() {
	resp := suite.invite()

	suite.Equal(strings.ToLower(suite.tenant.Email), resp.Email)
	suite.Len(resp.Token, 64)
	suite.Equal(models.InviteStatusPending, resp.Status)
	suite.False(resp.IsExpired)

	unread, err := suite.services.Notifications.UnreadCount(suite.ctx, suite.tenant)
	suite.Require().NoError(err)
	suite.Equal(int64(1), unread)
	unread, err = suite.services.Notifications.UnreadCount(suite.ctx, suite.landlord)
	suite.Require().NoError(err)
	suite.Equal(int64(1), unread)
}

func (suite *InviteServiceTestSuite) TestCreateRules() {
	_, err := suite.services.Invites.Create(suite.ctx, suite.landlord, &service.CreateInviteRequest{Property: suite.property.ID, ContractFile: "c.pdf"})
	suite.ErrorIs(err, apperrors.ErrInviteContactRequired)

	_, err = suite.services.Invites.Create(suite.ctx, suite.landlord, &service.CreateInviteRequest{Property: suite.property.ID, Email: suite.tenant.Email})
	suite.ErrorIs(err, apperrors.ErrContractRequired)

	_, err = suite.services.Invites.Create(suite.ctx, suite.landlord, &service.CreateInviteRequest{
		Property: suite.property.ID, Email: "nobody@example.com", ContractFile: "c.pdf",
	})
	suite.ErrorIs(err, apperrors.ErrTenantNotFound)

	other := suite.base.Factory.Room(suite.base.Factory.Property(suite.base.Factory.Landlord()))
	_, err = suite.services.Invites.Create(suite.ctx, suite.landlord, &service.CreateInviteRequest{
		Property: suite.property.ID, Room: &other.ID, Email: suite.tenant.Email, ContractFile: "c.pdf",
	})
	suite.True(apperrors.IsValidation(err))
}

func (suite *InviteServiceTestSuite) TestAcceptCreatesTenancy() {
	invite := suite.invite()

	resp, err := suite.services.Invites.Accept(suite.ctx, suite.tenant, &service.AcceptInviteRequest{Token: invite.Token})
	suite.Require().NoError(err)
	suite.Equal(models.InviteStatusAccepted, resp.Status)

	var tenancies []models.Tenancy
	suite.Require().NoError(suite.base.DB.Where("room_id = ? AND tenant_id = ?", suite.room.ID, suite.tenant.ID).Find(&tenancies).Error)
	suite.Require().Len(tenancies, 1)
	suite.Equal("contract/abc/contract.pdf", tenancies[0].ContractFile)
	suite.Equal(suite.room.BaseRent, tenancies[0].BaseRent)

	var room models.Room
	suite.Require().NoError(suite.base.DB.First(&room, "id = ?", suite.room.ID).Error)
	suite.Equal(models.RoomStatusOccupied, room.Status)

	unread, err := suite.services.Notifications.UnreadCount(suite.ctx, suite.tenant)
	suite.Require().NoError(err)
	suite.Zero(unread)

	_, err = suite.services.Invites.Accept(suite.ctx, suite.tenant, &service.AcceptInviteRequest{Token: invite.Token})
	suite.ErrorIs(err, apperrors.ErrInviteAlreadyAccepted)
}

func (suite *InviteServiceTestSuite) TestAnswerMarksOnlyThatInviteRead() {
	first := suite.invite()
	otherRoom := suite.base.Factory.Room(suite.property)
	second, err := suite.services.Invites.Create(suite.ctx, suite.landlord, &service.CreateInviteRequest{
		Property:     suite.property.ID,
		Room:         &otherRoom.ID,
		Email:        suite.tenant.Email,
		ContractFile: "contract/def/contract.pdf",
	})
	suite.Require().NoError(err)

	unread, err := suite.services.Notifications.UnreadCount(suite.ctx, suite.tenant)
	suite.Require().NoError(err)
	suite.Equal(int64(2), unread)

	_, err = suite.services.Invites.Accept(suite.ctx, suite.tenant, &service.AcceptInviteRequest{Token: first.Token})
	suite.Require().NoError(err)

	unread, err = suite.services.Notifications.UnreadCount(suite.ctx, suite.tenant)
	suite.Require().NoError(err)
	suite.Equal(int64(1), unread)

	var pending models.Notification
	suite.Require().NoError(suite.base.DB.
		Where("user_id = ? AND is_read = ?", suite.tenant.ID, false).First(&pending).Error)
	suite.Equal("invite", pending.RelatedObjectType)
	suite.Equal(second.ID.String(), pending.RelatedObjectID)

	rejected := models.InviteStatusRejected
	_, err = suite.services.Invites.Update(suite.ctx, suite.tenant, second.ID, &service.UpdateInviteRequest{Status: &rejected})
	suite.Require().NoError(err)

	unread, err = suite.services.Notifications.UnreadCount(suite.ctx, suite.tenant)
	suite.Require().NoError(err)
	suite.Zero(unread)
}

func (suite *InviteServiceTestSuite) TestAcceptRules() {
	invite := suite.invite()

	_, err := suite.services.Invites.Accept(suite.ctx, suite.base.Factory.Tenant(), &service.AcceptInviteRequest{Token: invite.Token})
	suite.ErrorIs(err, apperrors.ErrInviteNotFound)

	suite.services.Invites.SetClock(func() time.Time { return time.Now().Add(8 * 24 * time.Hour) })
	_, err = suite.services.Invites.Accept(suite.ctx, suite.tenant, &service.AcceptInviteRequest{Token: invite.Token})
	suite.ErrorIs(err, apperrors.ErrInviteExpired)
}

func (suite *InviteServiceTestSuite) TestRejectViaUpdate() {
	invite := suite.invite()

	rejected := models.InviteStatusRejected
	resp, err := suite.services.Invites.Update(suite.ctx, suite.tenant, invite.ID, &service.UpdateInviteRequest{Status: &rejected})
	suite.Require().NoError(err)
	suite.Equal(models.InviteStatusRejected, resp.Status)

	var count int64
	suite.Require().NoError(suite.base.DB.Model(&models.Tenancy{}).Count(&count).Error)
	suite.Zero(count)

	unread, err := suite.services.Notifications.UnreadCount(suite.ctx, suite.tenant)
	suite.Require().NoError(err)
	suite.Zero(unread)
	suite.Require().NoError(suite.base.DB.Model(&models.Notification{}).
		Where("user_id = ? AND template = ?", suite.landlord.ID, models.TemplateInviteRejected).Count(&count).Error)
	suite.Equal(int64(1), count)

	contract := "other.pdf"
	_, err = suite.services.Invites.Update(suite.ctx, suite.tenant, invite.ID, &service.UpdateInviteRequest{ContractFile: &contract})
	suite.ErrorIs(err, apperrors.ErrOnlyLandlords)
}

func TestInviteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InviteServiceTestSuite))
}

func TestNotificationInbox(t *testing.T) {
	base := testutils.SetupSQLiteSuite(t)
	svc := newTestServices(t, base).Notifications
	ctx := context.Background()

	owner := base.Factory.Tenant()
	other := base.Factory.Tenant()
	first := base.Factory.Notification(owner, models.TemplateInvoiceCreated)
	base.Factory.Notification(owner, models.TemplatePaymentReceived)
	foreign := base.Factory.Notification(other, models.TemplateInvoiceCreated)

	_, err := svc.Get(ctx, owner, foreign.ID)
	assert.True(t, apperrors.IsNotFound(err))

	read, err := svc.MarkRead(ctx, owner, first.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)
	assert.NotNil(t, read.ReadAt)

	count, err := svc.UnreadCount(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	unread, err := svc.MarkUnread(ctx, owner, first.ID)
	require.NoError(t, err)
	assert.False(t, unread.IsRead)
	assert.Nil(t, unread.ReadAt)

	marked, err := svc.MarkAllRead(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(2), marked)

	mine, err := svc.My(ctx, owner, service.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), mine.Total)

	filtered, err := svc.List(ctx, owner, service.NotificationQuery{Template: models.TemplateInvoiceCreated})
	require.NoError(t, err)
	assert.Equal(t, int64(1), filtered.Total)

	require.NoError(t, svc.Delete(ctx, owner, first.ID))
	assert.Error(t, svc.Delete(ctx, owner, foreign.ID))
}

func TestFileService(t *testing.T) {
	base := testutils.SetupSQLiteSuite(t)
	svc := newTestServices(t, base).Files
	ctx := context.Background()
	owner := base.Factory.Landlord()

	_, err := svc.Upload(ctx, owner, &service.UploadFileRequest{Purpose: "contract", Filename: "scan.jpg", Size: 3, Content: strings.NewReader("abc")})
	assert.ErrorIs(t, err, apperrors.ErrContractMustBePDF)

	_, err = svc.Upload(ctx, owner, &service.UploadFileRequest{Purpose: "avatar", Filename: "a.png", Size: 3, Content: strings.NewReader("abc")})
	assert.ErrorIs(t, err, apperrors.ErrInvalidFilePurpose)

	resp, err := svc.Upload(ctx, owner, &service.UploadFileRequest{
		Purpose:  "meter",
		Filename: `C:\photos\meter.JPG`,
		Size:     5,
		Content:  strings.NewReader("image"),
	})
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", resp.MimeType)
	assert.True(t, strings.HasPrefix(resp.Path, "meter/"))
	assert.True(t, strings.HasSuffix(resp.Path, "/meter.JPG"))
	assert.Equal(t, "/media/"+resp.Path, resp.URL)

	list, err := svc.List(ctx, owner, service.FileQuery{Purpose: "meter"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)

	_, err = svc.Get(ctx, base.Factory.Tenant(), resp.ID)
	assert.True(t, apperrors.IsNotFound(err))

	require.NoError(t, svc.Delete(ctx, owner, resp.ID))
	_, err = svc.Get(ctx, owner, resp.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestBankService(t *testing.T) {
	var hits atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"00","desc":"ok","data":[{"id":17,"name":"Ngan hang Ngoai thuong","code":"VCB","bin":"970436","shortName":"Vietcombank"}]}`))
	}))
	defer upstream.Close()

	base := testutils.SetupSQLiteSuite(t)
	base.Config.VietQRBanksURL = upstream.URL
	repos := repository.NewRepositories(base.DB)
	svc := service.NewBankService(base.Config, repos.Invoices, repos.Users)
	ctx := context.Background()

	banks, err := svc.Banks(ctx)
	require.NoError(t, err)
	require.Len(t, banks.Data, 1)
	_, err = svc.Banks(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	landlord := base.Factory.Landlord()
	tenant := base.Factory.Tenant()
	tenancy := base.Factory.Tenancy(base.Factory.Room(base.Factory.Property(landlord)), tenant)
	invoice := base.Factory.Invoice(tenancy, "2025-03", 3500000)

	qr, err := svc.QRCode(ctx, tenant, service.QRCodeRequest{InvoiceID: invoice.ID.String(), Amount: "3500000.7", AddInfo: "Tiền phòng T3 #42"})
	require.NoError(t, err)
	assert.Equal(t, "Vietcombank", qr.BankName)
	assert.Equal(t, "VCB", qr.BankCode)
	assert.Equal(t, "0123456789", qr.AccountNumber)
	assert.Equal(t, "https://img.vietqr.io/image/VCB-0123456789-compact.jpg?addInfo=Tin+phng+T3+42&amount=3500000", qr.QRURL)

	_, err = svc.QRCode(ctx, base.Factory.Tenant(), service.QRCodeRequest{InvoiceID: invoice.ID.String()})
	assert.ErrorIs(t, err, apperrors.ErrInvoiceAccessDenied)

	_, err = svc.QRCode(ctx, tenant, service.QRCodeRequest{})
	assert.ErrorIs(t, err, apperrors.ErrOnlyLandlords)

	for _, amount := range []string{"-5", "abc", "NaN", "Inf", "-Inf", "1e30"} {
		_, err = svc.QRCode(ctx, landlord, service.QRCodeRequest{Amount: amount})
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount, amount)
	}

	qr, err = svc.QRCode(ctx, landlord, service.QRCodeRequest{Amount: "0"})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(qr.QRURL, "?amount=0"), qr.QRURL)

	bare := base.Factory.Superuser()
	_, err = svc.QRCode(ctx, bare, service.QRCodeRequest{})
	assert.ErrorIs(t, err, apperrors.ErrBankInfoMissing)
}

func TestBankServiceUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer upstream.Close()

	cfg := testutils.TestConfig()
	cfg.VietQRBanksURL = upstream.URL
	svc := service.NewBankService(cfg, nil, nil)

	_, err := svc.Banks(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrBanksUnavailable)
}

func TestSanitizeAddInfo(t *testing.T) {
	assert.Equal(t, "Thanh ton T3", service.SanitizeAddInfo("Thanh toán T3!"))
	assert.Len(t, service.SanitizeAddInfo(strings.Repeat("a", 40)), 25)
}
