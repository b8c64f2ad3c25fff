package repository

import (
	"context"
	"errors"
	"testing"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// InvoiceRepositoryTestSuite tests invoice aggregates and transactions
type InvoiceRepositoryTestSuite struct {
	suite.Suite
	base    *testutils.BaseTestSuite
	repos   *Repositories
	ctx     context.Context
	tenancy *models.Tenancy
}

func (suite *InvoiceRepositoryTestSuite) SetupTest() {
	suite.base = testutils.SetupSQLiteSuite(suite.T())
	suite.repos = NewRepositories(suite.base.DB)
	suite.ctx = context.Background()

	f := suite.base.Factory
	room := f.Room(f.Property(f.Landlord()))
	suite.tenancy = f.Tenancy(room, f.Tenant())
}

func (suite *InvoiceRepositoryTestSuite) TestCreateWithLines() {
	inv := suite.base.Factory.Invoice(suite.tenancy, "2024-06", 500000)

	loaded, err := suite.repos.Invoices.GetByID(suite.ctx, inv.ID)
	suite.Require().NoError(err)
	suite.Len(loaded.Lines, 1)
	suite.Require().NotNil(loaded.Tenancy)
	suite.Require().NotNil(loaded.Tenancy.Room)
	suite.NotNil(loaded.Tenancy.Room.Building)
	suite.NotNil(loaded.Tenancy.Tenant)
}

func (suite *InvoiceRepositoryTestSuite) TestDuplicatePeriod() {
	suite.base.Factory.Invoice(suite.tenancy, "2024-06", 500000)

	taken, err := suite.repos.Invoices.PeriodTaken(suite.ctx, suite.tenancy.ID, "2024-06", uuid.Nil)
	suite.Require().NoError(err)
	suite.True(taken)

	dup := &models.Invoice{TenancyID: suite.tenancy.ID, Period: "2024-06", Status: models.InvoiceStatusDraft}
	suite.ErrorIs(suite.repos.Invoices.Create(suite.ctx, dup), apperrors.ErrInvoiceExists)
}

func (suite *InvoiceRepositoryTestSuite) TestPaymentTotalsCountOnlyCompleted() {
	inv := suite.base.Factory.Invoice(suite.tenancy, "2024-06", 500000)
	suite.base.Factory.Payment(inv, 100000, models.PaymentStatusCompleted)
	suite.base.Factory.Payment(inv, 50000.5, models.PaymentStatusCompleted)
	suite.base.Factory.Payment(inv, 999999, models.PaymentStatusPending)

	totals, err := suite.repos.Invoices.PaymentTotals(suite.ctx, []uuid.UUID{inv.ID})
	suite.Require().NoError(err)
	suite.InDelta(150000.5, totals[inv.ID].Total, 0.001)
	suite.Equal(int64(2), totals[inv.ID].Count)

	sum, err := suite.repos.Payments.SumCompleted(suite.ctx, inv.ID)
	suite.Require().NoError(err)
	suite.InDelta(150000.5, sum, 0.001)
}

func (suite *InvoiceRepositoryTestSuite) TestListOverdueCandidates() {
	today := models.Today()
	past := today.AddDate(0, 0, -3)

	late := suite.base.Factory.Invoice(suite.tenancy, "2024-04", 100)
	late.DueDate = &past
	suite.Require().NoError(suite.repos.Invoices.Update(suite.ctx, late))

	paid := suite.base.Factory.Invoice(suite.tenancy, "2024-05", 100)
	paid.DueDate = &past
	paid.Status = models.InvoiceStatusPaid
	suite.Require().NoError(suite.repos.Invoices.Update(suite.ctx, paid))

	suite.base.Factory.Invoice(suite.tenancy, "2024-06", 100)

	candidates, err := suite.repos.Invoices.ListOverdueCandidates(suite.ctx, today)
	suite.Require().NoError(err)
	suite.Require().Len(candidates, 1)
	suite.Equal(late.ID, candidates[0].ID)
	suite.NotNil(candidates[0].Tenancy.Tenant)
}

func (suite *InvoiceRepositoryTestSuite) TestInvoiceFilters() {
	suite.base.Factory.Invoice(suite.tenancy, "2024-01", 100)
	suite.base.Factory.Invoice(suite.tenancy, "2024-03", 100)
	suite.base.Factory.Invoice(suite.tenancy, "2024-05", 100)
	v := Viewer{IsSuperuser: true}

	items, total, err := suite.repos.Invoices.List(suite.ctx, v, InvoiceFilter{PeriodGTE: "2024-02", PeriodLTE: "2024-05"},
		ListOptions{Ordering: "-period"})
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Equal("2024-05", items[0].Period)
	suite.Equal("2024-03", items[1].Period)

	_, total, err = suite.repos.Invoices.List(suite.ctx, v, InvoiceFilter{Statuses: []models.InvoiceStatus{models.InvoiceStatusPaid}}, ListOptions{})
	suite.Require().NoError(err)
	suite.Zero(total)

	items, total, err = suite.repos.Invoices.List(suite.ctx, v, InvoiceFilter{}, ListOptions{Limit: 1, Offset: 1, Ordering: "period"})
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(items, 1)
	suite.Equal("2024-03", items[0].Period)
}

func (suite *InvoiceRepositoryTestSuite) TestRoomStats() {
	f := suite.base.Factory
	owner := f.Landlord()
	property := f.Property(owner)
	f.Room(property)
	occupied := f.Room(property)
	f.Tenancy(occupied, f.Tenant())
	repair := f.Room(property)
	suite.Require().NoError(suite.repos.Rooms.UpdateStatus(suite.ctx, repair.ID, models.RoomStatusMaintenance))

	stats, err := suite.repos.Properties.RoomStats(suite.ctx, []uuid.UUID{property.ID})
	suite.Require().NoError(err)
	s := stats[property.ID]
	suite.Equal(int64(3), s.Total)
	suite.Equal(int64(1), s.Vacant)
	suite.Equal(int64(1), s.Occupied)
	suite.Equal(int64(1), s.Maintenance)
	suite.Equal(33.3, s.OccupancyRate())
	suite.Zero(RoomStats{}.OccupancyRate())
}

func (suite *InvoiceRepositoryTestSuite) TestTransactionRollsBack() {
	tx := NewTransactor(suite.base.DB)
	boom := errors.New("boom")

	err := tx.Transaction(suite.ctx, func(repos *Repositories) error {
		inv := &models.Invoice{TenancyID: suite.tenancy.ID, Period: "2024-09", Status: models.InvoiceStatusDraft}
		if err := repos.Invoices.Create(suite.ctx, inv); err != nil {
			return err
		}
		return boom
	})
	suite.ErrorIs(err, boom)

	taken, err := suite.repos.Invoices.PeriodTaken(suite.ctx, suite.tenancy.ID, "2024-09", uuid.Nil)
	suite.Require().NoError(err)
	suite.False(taken)
}

func TestInvoiceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceRepositoryTestSuite))
}
