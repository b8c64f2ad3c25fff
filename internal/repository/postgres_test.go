//go:build integration
// +build integration

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

// PostgresRepositoryTestSuite runs the driver-sensitive queries against a real Postgres container
type PostgresRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repos         *Repositories
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *PostgresRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repos = NewRepositories(suite.baseTestSuite.DB)
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *PostgresRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PostgresRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *PostgresRepositoryTestSuite) TestDuplicateKeysAreTranslated() {
	f := suite.baseTestSuite.Factory
	room := f.Room(f.Property(f.Landlord()))

	dup := &models.Room{BuildingID: room.BuildingID, RoomNumber: room.RoomNumber, BaseRent: 1}
	suite.ErrorIs(suite.repos.Rooms.Create(suite.ctx, dup), apperrors.ErrRoomExists)
}

func (suite *PostgresRepositoryTestSuite) TestAggregates() {
	f := suite.baseTestSuite.Factory
	tenancy := f.Tenancy(f.Room(f.Property(f.Landlord())), f.Tenant())
	inv := f.Invoice(tenancy, "2024-06", 200)
	f.Payment(inv, 120.25, models.PaymentStatusCompleted)

	totals, err := suite.repos.Invoices.PaymentTotals(suite.ctx, []uuid.UUID{inv.ID})
	suite.Require().NoError(err)
	suite.InDelta(120.25, totals[inv.ID].Total, 0.001)

	stats, err := suite.repos.Properties.RoomStats(suite.ctx, []uuid.UUID{tenancy.Room.BuildingID})
	suite.Require().NoError(err)
	suite.Equal(int64(1), stats[tenancy.Room.BuildingID].Occupied)
}

func (suite *PostgresRepositoryTestSuite) TestVisibilitySubqueries() {
	f := suite.baseTestSuite.Factory
	tenant := f.Tenant()
	tenancy := f.Tenancy(f.Room(f.Property(f.Landlord())), tenant)
	inv := f.Invoice(tenancy, "2024-07", 100)

	_, err := suite.repos.Invoices.GetVisible(suite.ctx, ViewerFromUser(tenant), inv.ID)
	suite.NoError(err)
	_, err = suite.repos.Invoices.GetVisible(suite.ctx, ViewerFromUser(f.Tenant()), inv.ID)
	suite.ErrorIs(err, apperrors.ErrInvoiceNotFound)
}

func TestPostgresRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresRepositoryTestSuite))
}
