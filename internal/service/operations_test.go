package service_test

import (
	"context"
	"testing"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/service"
	"rental-management-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// OperationsTestSuite exercises tenancies, maintenance and meter readings
type OperationsTestSuite struct {
	suite.Suite
	base     *testutils.BaseTestSuite
	services *service.Services
	ctx      context.Context

	landlord *models.User
	tenant   *models.User
	property *models.Property
	room     *models.Room
}

func (suite *OperationsTestSuite) SetupTest() {
	suite.base = testutils.SetupSQLiteSuite(suite.T())
	suite.services = newTestServices(suite.T(), suite.base)
	suite.ctx = context.Background()

	suite.landlord = suite.base.Factory.Landlord()
	suite.tenant = suite.base.Factory.Tenant()
	suite.property = suite.base.Factory.Property(suite.landlord)
	suite.room = suite.base.Factory.Room(suite.property)
}

func (suite *OperationsTestSuite) roomStatus() models.RoomStatus {
	var room models.Room
	suite.Require().NoError(suite.base.DB.First(&room, "id = ?", suite.room.ID).Error)
	return room.Status
}

func (suite *OperationsTestSuite) countNotifications(user *models.User, template string) int64 {
	var n int64
	suite.Require().NoError(suite.base.DB.Model(&models.Notification{}).
		Where("user_id = ? AND template = ?", user.ID, template).Count(&n).Error)
	return n
}

func (suite *OperationsTestSuite) TestTenancyLifecycleTracksRoomStatus() {
	resp, err := suite.services.Tenancies.Create(suite.ctx, suite.landlord, &service.CreateTenancyRequest{
		Room:      suite.room.ID,
		Tenant:    suite.tenant.ID,
		StartDate: "2025-01-01",
		Deposit:   3000000,
	})
	suite.Require().NoError(err)
	suite.Equal(suite.room.BaseRent, resp.BaseRent)
	suite.Equal(models.TenancyStatusActive, resp.Status)
	suite.Equal(models.RoomStatusOccupied, suite.roomStatus())
	suite.Equal(int64(1), suite.countNotifications(suite.tenant, models.TemplateTenancyCreated))
	suite.Equal(int64(1), suite.countNotifications(suite.landlord, models.TemplateTenancyCreated))

	terminated := models.TenancyStatusTerminated
	_, err = suite.services.Tenancies.Update(suite.ctx, suite.landlord, resp.ID, &service.UpdateTenancyRequest{Status: &terminated})
	suite.Require().NoError(err)
	suite.Equal(models.RoomStatusVacant, suite.roomStatus())
}

func (suite *OperationsTestSuite) TestTenancyCreateRules() {
	_, err := suite.services.Tenancies.Create(suite.ctx, suite.landlord, &service.CreateTenancyRequest{
		Room: suite.room.ID, Tenant: suite.base.Factory.Landlord().ID, StartDate: "2025-01-01",
	})
	suite.ErrorIs(err, apperrors.ErrTenantRoleRequired)

	_, err = suite.services.Tenancies.Create(suite.ctx, suite.base.Factory.Landlord(), &service.CreateTenancyRequest{
		Room: suite.room.ID, Tenant: suite.tenant.ID, StartDate: "2025-01-01",
	})
	suite.ErrorIs(err, apperrors.ErrNotPropertyOwner)

	end := "2024-12-31"
	_, err = suite.services.Tenancies.Create(suite.ctx, suite.landlord, &service.CreateTenancyRequest{
		Room: suite.room.ID, Tenant: suite.tenant.ID, StartDate: "2025-01-01", EndDate: &end,
	})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.services.Tenancies.Create(suite.ctx, suite.landlord, &service.CreateTenancyRequest{
		Room: suite.room.ID, Tenant: suite.tenant.ID, StartDate: "01/01/2025",
	})
	suite.True(apperrors.IsValidation(err))
}

func (suite *OperationsTestSuite) TestMaintenanceFlow() {
	_, err := suite.services.Maintenance.Create(suite.ctx, suite.tenant, &service.CreateMaintenanceRequest{Room: suite.room.ID, Title: "Broken fan"})
	suite.ErrorIs(err, apperrors.ErrNoActiveTenancy)

	suite.base.Factory.Tenancy(suite.room, suite.tenant)
	created, err := suite.services.Maintenance.Create(suite.ctx, suite.tenant, &service.CreateMaintenanceRequest{
		Room:  suite.room.ID,
		Title: "  Broken fan ",
	})
	suite.Require().NoError(err)
	suite.Equal("Broken fan", created.Title)
	suite.Equal(models.MaintenanceCategoryOther, created.Category)
	suite.Equal(models.MaintenanceStatusPending, created.Status)
	suite.Equal(int64(1), suite.countNotifications(suite.landlord, models.TemplateMaintenanceCreated))

	done := models.MaintenanceStatusDone
	_, err = suite.services.Maintenance.Update(suite.ctx, suite.tenant, created.ID, &service.UpdateMaintenanceRequest{Status: &done})
	suite.ErrorIs(err, apperrors.ErrOnlyLandlords)

	title := "Ceiling fan broken"
	updated, err := suite.services.Maintenance.Update(suite.ctx, suite.tenant, created.ID, &service.UpdateMaintenanceRequest{Title: &title})
	suite.Require().NoError(err)
	suite.Equal(title, updated.Title)

	assignee := suite.landlord.ID.String()
	resolved, err := suite.services.Maintenance.Update(suite.ctx, suite.landlord, created.ID, &service.UpdateMaintenanceRequest{
		Status:   &done,
		Assignee: &assignee,
	})
	suite.Require().NoError(err)
	suite.NotNil(resolved.ResolvedAt)
	suite.Require().NotNil(resolved.Assignee)
	suite.Equal(suite.landlord.ID, *resolved.Assignee)
	suite.Equal(int64(1), suite.countNotifications(suite.tenant, models.TemplateMaintenanceAssigned))
	suite.Equal(int64(1), suite.countNotifications(suite.tenant, models.TemplateMaintenanceStatusChanged))

	attachment, err := suite.services.Maintenance.CreateAttachment(suite.ctx, suite.tenant, &service.CreateAttachmentRequest{
		Request: created.ID,
		File:    "maintenance/x/fan.jpg",
	})
	suite.Require().NoError(err)
	list, err := suite.services.Maintenance.ListAttachments(suite.ctx, suite.landlord, service.AttachmentQuery{Request: created.ID.String()})
	suite.Require().NoError(err)
	suite.Require().Len(list.Items, 1)
	suite.Equal(attachment.ID, list.Items[0].ID)

	_, err = suite.services.Maintenance.Get(suite.ctx, suite.base.Factory.Tenant(), created.ID)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *OperationsTestSuite) TestMeterReadings() {
	suite.base.Factory.Tenancy(suite.room, suite.tenant)

	reading, err := suite.services.MeterReadings.Create(suite.ctx, suite.landlord, &service.CreateMeterReadingRequest{
		Room:           suite.room.ID,
		Period:         "2025-03",
		ElectricityOld: floatPtr(100),
		ElectricityNew: floatPtr(152.5),
	})
	suite.Require().NoError(err)
	suite.Require().NotNil(reading.ElectricityUsage)
	suite.Equal(52.5, *reading.ElectricityUsage)
	suite.Nil(reading.WaterUsage)
	suite.Equal(models.MeterSourceManual, reading.Source)
	suite.Equal(int64(1), suite.countNotifications(suite.tenant, models.TemplateMeterReadingSubmitted))

	_, err = suite.services.MeterReadings.Create(suite.ctx, suite.landlord, &service.CreateMeterReadingRequest{Room: suite.room.ID, Period: "2025-03"})
	suite.ErrorIs(err, apperrors.ErrMeterReadingExists)

	_, err = suite.services.MeterReadings.Create(suite.ctx, suite.landlord, &service.CreateMeterReadingRequest{
		Room: suite.room.ID, Period: "2025-04", WaterOld: floatPtr(20), WaterNew: floatPtr(10),
	})
	fields, ok := apperrors.AsFieldErrors(err)
	suite.Require().True(ok)
	suite.Contains(fields, "water_new")

	tenantReading, err := suite.services.MeterReadings.Create(suite.ctx, suite.tenant, &service.CreateMeterReadingRequest{
		Room: suite.room.ID, Period: "2025-05", Source: models.MeterSourceOCR,
	})
	suite.Require().NoError(err)
	suite.Equal(models.MeterSourceOCR, tenantReading.Source)

	list, err := suite.services.MeterReadings.List(suite.ctx, suite.tenant, service.MeterReadingQuery{Room: suite.room.ID.String()})
	suite.Require().NoError(err)
	suite.Equal(int64(2), list.Total)

	_, err = suite.services.MeterReadings.List(suite.ctx, suite.tenant, service.MeterReadingQuery{Room: "nope"})
	suite.True(apperrors.IsValidation(err))
}

func TestOperationsTestSuite(t *testing.T) {
	suite.Run(t, new(OperationsTestSuite))
}
