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

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	base *testutils.BaseTestSuite
	repo *UserRepository
	ctx  context.Context
}

func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.base = testutils.SetupSQLiteSuite(suite.T())
	suite.repo = NewUserRepository(suite.base.DB)
	suite.ctx = context.Background()
}

func (suite *UserRepositoryTestSuite) TestCreateAndGet() {
	user := testutils.NewUser(models.UserRoleTenant)
	user.Email = "  Mixed.Case@Example.com "

	suite.Require().NoError(suite.repo.Create(suite.ctx, user))
	suite.NotEqual(uuid.Nil, user.ID)
	suite.Equal("mixed.case@example.com", user.Email)

	found, err := suite.repo.GetByEmail(suite.ctx, "MIXED.case@example.com")
	suite.Require().NoError(err)
	suite.Equal(user.ID, found.ID)

	byID, err := suite.repo.GetByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal(user.Email, byID.Email)
}

func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	first := testutils.NewUser(models.UserRoleTenant)
	suite.Require().NoError(suite.repo.Create(suite.ctx, first))

	second := testutils.NewUser(models.UserRoleTenant)
	second.Email = first.Email
	err := suite.repo.Create(suite.ctx, second)
	suite.ErrorIs(err, apperrors.ErrUserExists)
}

func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *UserRepositoryTestSuite) TestGetByPhone() {
	tenant := suite.base.Factory.Tenant()

	found, err := suite.repo.GetByPhone(suite.ctx, *tenant.Phone)
	suite.Require().NoError(err)
	suite.Equal(tenant.ID, found.ID)

	_, err = suite.repo.GetByPhone(suite.ctx, "0000000000")
	suite.True(apperrors.IsNotFound(err))
}

func (suite *UserRepositoryTestSuite) TestListVisibility() {
	landlord := suite.base.Factory.Landlord()
	tenant := suite.base.Factory.Tenant()
	suite.base.Factory.Tenant()

	all, total, err := suite.repo.List(suite.ctx, ViewerFromUser(landlord), UserFilter{}, ListOptions{})
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(all, 3)

	own, total, err := suite.repo.List(suite.ctx, ViewerFromUser(tenant), UserFilter{}, ListOptions{})
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(tenant.ID, own[0].ID)
}

func (suite *UserRepositoryTestSuite) TestListFilterAndSearch() {
	landlord := suite.base.Factory.Landlord()
	tenant := suite.base.Factory.Tenant()
	v := Viewer{UserID: landlord.ID, IsSuperuser: true}

	tenants, total, err := suite.repo.List(suite.ctx, v, UserFilter{Role: models.UserRoleTenant}, ListOptions{})
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(tenant.ID, tenants[0].ID)

	found, total, err := suite.repo.List(suite.ctx, v, UserFilter{}, ListOptions{Search: landlord.FullName})
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(landlord.ID, found[0].ID)
}

func (suite *UserRepositoryTestSuite) TestEmailAndPhoneTaken() {
	tenant := suite.base.Factory.Tenant()

	taken, err := suite.repo.EmailTaken(suite.ctx, tenant.Email, uuid.Nil)
	suite.Require().NoError(err)
	suite.True(taken)

	taken, err = suite.repo.EmailTaken(suite.ctx, tenant.Email, tenant.ID)
	suite.Require().NoError(err)
	suite.False(taken)

	taken, err = suite.repo.PhoneTaken(suite.ctx, *tenant.Phone, uuid.Nil)
	suite.Require().NoError(err)
	suite.True(taken)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
