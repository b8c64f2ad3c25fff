package repository

import (
	"context"
	"testing"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// VisibilityTestSuite checks the role-based scopes shared by all repositories
type VisibilityTestSuite struct {
	suite.Suite
	base  *testutils.BaseTestSuite
	repos *Repositories
	ctx   context.Context

	landlord   *models.User
	otherOwner *models.User
	tenant     *models.User
	stranger   *models.User
	superuser  *models.User
	property   *models.Property
	room       *models.Room
	otherRoom  *models.Room
	tenancy    *models.Tenancy
	invoice    *models.Invoice
}

func (suite *VisibilityTestSuite) SetupTest() {
	suite.base = testutils.SetupSQLiteSuite(suite.T())
	suite.repos = NewRepositories(suite.base.DB)
	suite.ctx = context.Background()

	f := suite.base.Factory
	suite.landlord = f.Landlord()
	suite.otherOwner = f.Landlord()
	suite.tenant = f.Tenant()
	suite.stranger = f.Tenant()
	suite.superuser = f.Superuser()

	suite.property = f.Property(suite.landlord)
	suite.room = f.Room(suite.property)
	suite.otherRoom = f.Room(f.Property(suite.otherOwner))
	suite.tenancy = f.Tenancy(suite.room, suite.tenant)
	suite.invoice = f.Invoice(suite.tenancy, "2024-05", 3000000)
}

func (suite *VisibilityTestSuite) viewer(u *models.User) Viewer { return ViewerFromUser(u) }

func (suite *VisibilityTestSuite) TestProperties() {
	_, total, err := suite.repos.Properties.List(suite.ctx, suite.viewer(suite.landlord), PropertyFilter{}, ListOptions{})
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)

	_, total, err = suite.repos.Properties.List(suite.ctx, suite.viewer(suite.tenant), PropertyFilter{}, ListOptions{})
	suite.Require().NoError(err)
	suite.Zero(total)

	_, total, err = suite.repos.Properties.List(suite.ctx, suite.viewer(suite.superuser), PropertyFilter{}, ListOptions{})
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)

	_, err = suite.repos.Properties.GetVisible(suite.ctx, suite.viewer(suite.otherOwner), suite.property.ID)
	suite.ErrorIs(err, apperrors.ErrPropertyNotFound)
}

func (suite *VisibilityTestSuite) TestRooms() {
	rooms, total, err := suite.repos.Rooms.List(suite.ctx, suite.viewer(suite.tenant), RoomFilter{}, ListOptions{})
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(suite.room.ID, rooms[0].ID)

	_, total, err = suite.repos.Rooms.List(suite.ctx, suite.viewer(suite.stranger), RoomFilter{}, ListOptions{})
	suite.Require().NoError(err)
	suite.Zero(total)

	_, err = suite.repos.Rooms.GetVisible(suite.ctx, suite.viewer(suite.landlord), suite.otherRoom.ID)
	suite.ErrorIs(err, apperrors.ErrRoomNotFound)

	room, err := suite.repos.Rooms.GetVisible(suite.ctx, suite.viewer(suite.landlord), suite.room.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(room.Building)
	suite.Equal(suite.property.Name, room.Building.Name)
}

func (suite *VisibilityTestSuite) TestRoomFilters() {
	v := suite.viewer(suite.superuser)
	floor := 2
	rooms, _, err := suite.repos.Rooms.List(suite.ctx, v, RoomFilter{
		Statuses: []models.RoomStatus{models.RoomStatusOccupied},
	}, ListOptions{})
	suite.Require().NoError(err)
	suite.Len(rooms, 1)
	suite.Equal(suite.room.ID, rooms[0].ID)

	_, total, err := suite.repos.Rooms.List(suite.ctx, v, RoomFilter{FloorGTE: &floor}, ListOptions{})
	suite.Require().NoError(err)
	suite.Zero(total)

	_, total, err = suite.repos.Rooms.List(suite.ctx, v, RoomFilter{}, ListOptions{Search: suite.property.Name})
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
}

func (suite *VisibilityTestSuite) TestTenanciesAndInvoices() {
	for _, u := range []*models.User{suite.tenant, suite.landlord, suite.superuser} {
		_, total, err := suite.repos.Tenancies.List(suite.ctx, suite.viewer(u), TenancyFilter{}, ListOptions{})
		suite.Require().NoError(err)
		suite.Equal(int64(1), total, u.Email)

		_, err = suite.repos.Invoices.GetVisible(suite.ctx, suite.viewer(u), suite.invoice.ID)
		suite.NoError(err, u.Email)
	}

	for _, u := range []*models.User{suite.stranger, suite.otherOwner} {
		_, total, err := suite.repos.Tenancies.List(suite.ctx, suite.viewer(u), TenancyFilter{}, ListOptions{})
		suite.Require().NoError(err)
		suite.Zero(total, u.Email)

		_, err = suite.repos.Invoices.GetVisible(suite.ctx, suite.viewer(u), suite.invoice.ID)
		suite.ErrorIs(err, apperrors.ErrInvoiceNotFound, u.Email)
	}
}

func (suite *VisibilityTestSuite) TestInvoiceLinesAndPayments() {
	payment := suite.base.Factory.Payment(suite.invoice, 1000, models.PaymentStatusCompleted)

	lines, _, err := suite.repos.InvoiceLines.List(suite.ctx, suite.viewer(suite.tenant), &suite.invoice.ID, ListOptions{})
	suite.Require().NoError(err)
	suite.Len(lines, 1)

	_, total, err := suite.repos.InvoiceLines.List(suite.ctx, suite.viewer(suite.stranger), nil, ListOptions{})
	suite.Require().NoError(err)
	suite.Zero(total)

	_, err = suite.repos.Payments.GetVisible(suite.ctx, suite.viewer(suite.landlord), payment.ID)
	suite.NoError(err)
	_, err = suite.repos.Payments.GetVisible(suite.ctx, suite.viewer(suite.otherOwner), payment.ID)
	suite.ErrorIs(err, apperrors.ErrPaymentNotFound)
}

func (suite *VisibilityTestSuite) TestMaintenance() {
	req := suite.base.Factory.Maintenance(suite.room, suite.tenant)

	_, err := suite.repos.Maintenance.GetVisible(suite.ctx, suite.viewer(suite.tenant), req.ID)
	suite.NoError(err)
	_, err = suite.repos.Maintenance.GetVisible(suite.ctx, suite.viewer(suite.landlord), req.ID)
	suite.NoError(err)
	_, err = suite.repos.Maintenance.GetVisible(suite.ctx, suite.viewer(suite.stranger), req.ID)
	suite.ErrorIs(err, apperrors.ErrMaintenanceRequestNotFound)

	att := &models.MaintenanceAttachment{RequestID: req.ID, File: "maintenance/x/photo.jpg"}
	suite.Require().NoError(suite.repos.Maintenance.CreateAttachment(suite.ctx, att))

	_, total, err := suite.repos.Maintenance.ListAttachments(suite.ctx, suite.viewer(suite.landlord), &req.ID, ListOptions{})
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)

	_, err = suite.repos.Maintenance.GetVisibleAttachment(suite.ctx, suite.viewer(suite.otherOwner), att.ID)
	suite.ErrorIs(err, apperrors.ErrMaintenanceAttachmentNotFound)
}

func (suite *VisibilityTestSuite) TestMeterReadings() {
	reading := suite.base.Factory.MeterReading(suite.room, "2024-05")

	_, err := suite.repos.MeterReadings.GetVisible(suite.ctx, suite.viewer(suite.tenant), reading.ID)
	suite.NoError(err)
	_, err = suite.repos.MeterReadings.GetVisible(suite.ctx, suite.viewer(suite.stranger), reading.ID)
	suite.ErrorIs(err, apperrors.ErrMeterReadingNotFound)

	taken, err := suite.repos.MeterReadings.PeriodTaken(suite.ctx, suite.room.ID, "2024-05", reading.ID)
	suite.Require().NoError(err)
	suite.False(taken)

	dup := &models.MeterReading{RoomID: suite.room.ID, Period: "2024-05", Source: models.MeterSourceManual}
	suite.ErrorIs(suite.repos.MeterReadings.Create(suite.ctx, dup), apperrors.ErrMeterReadingExists)
}

func (suite *VisibilityTestSuite) TestInvitesMatchEmailOrPhone() {
	byEmail := suite.base.Factory.Invite(suite.room, suite.stranger.Email)
	byPhone := suite.base.Factory.Invite(suite.room, "")
	byPhone.Phone = *suite.stranger.Phone
	suite.Require().NoError(suite.repos.Invites.Update(suite.ctx, byPhone))
	suite.base.Factory.Invite(suite.room, "nobody@example.com")

	invites, total, err := suite.repos.Invites.List(suite.ctx, suite.viewer(suite.stranger), InviteFilter{}, ListOptions{})
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	ids := []interface{}{invites[0].ID, invites[1].ID}
	suite.Contains(ids, byEmail.ID)
	suite.Contains(ids, byPhone.ID)

	_, total, err = suite.repos.Invites.List(suite.ctx, suite.viewer(suite.landlord), InviteFilter{}, ListOptions{})
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)

	found, err := suite.repos.Invites.GetByToken(suite.ctx, byEmail.Token)
	suite.Require().NoError(err)
	suite.Equal(byEmail.ID, found.ID)
}

func (suite *VisibilityTestSuite) TestNotifications() {
	n := suite.base.Factory.Notification(suite.tenant, models.TemplateInvoiceCreated)
	suite.base.Factory.Notification(suite.tenant, models.TemplateInviteReceived)

	_, err := suite.repos.Notifications.GetVisible(suite.ctx, suite.viewer(suite.landlord), n.ID)
	suite.ErrorIs(err, apperrors.ErrNotificationNotFound)
	_, err = suite.repos.Notifications.GetVisible(suite.ctx, suite.viewer(suite.superuser), n.ID)
	suite.NoError(err)

	count, err := suite.repos.Notifications.UnreadCount(suite.ctx, suite.tenant.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	first := suite.base.Factory.Notification(suite.tenant, models.TemplateInviteReceived)
	first.RelatedObjectType, first.RelatedObjectID = "invite", uuid.NewString()
	suite.Require().NoError(suite.base.DB.Save(first).Error)
	second := suite.base.Factory.Notification(suite.tenant, models.TemplateInviteReceived)
	second.RelatedObjectType, second.RelatedObjectID = "invite", uuid.NewString()
	suite.Require().NoError(suite.base.DB.Save(second).Error)

	marked, err := suite.repos.Notifications.MarkRelatedRead(suite.ctx, suite.tenant.ID, "invite", first.RelatedObjectID, models.Today())
	suite.Require().NoError(err)
	suite.Equal(int64(1), marked)

	marked, err = suite.repos.Notifications.MarkRelatedRead(suite.ctx, suite.landlord.ID, "invite", second.RelatedObjectID, models.Today())
	suite.Require().NoError(err)
	suite.Zero(marked)

	marked, err = suite.repos.Notifications.MarkAllRead(suite.ctx, suite.tenant.ID, models.Today())
	suite.Require().NoError(err)
	suite.Equal(int64(3), marked)

	count, err = suite.repos.Notifications.UnreadCount(suite.ctx, suite.tenant.ID)
	suite.Require().NoError(err)
	suite.Zero(count)
}

func TestVisibilityTestSuite(t *testing.T) {
	suite.Run(t, new(VisibilityTestSuite))
}
