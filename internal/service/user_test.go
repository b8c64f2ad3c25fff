package service_test

import (
	"context"
	"testing"

	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/mocks"
	"rental-management-backend/internal/repository"
	"rental-management-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	userService  *service.UserService
	ctx          context.Context
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.userService = service.NewUserService(suite.mockUserRepo, service.NewValidator())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func newUser(role models.UserRole) *models.User {
	return &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: string(role) + "@example.com", Role: role, IsActive: true}
}

func (suite *UserServiceTestSuite) TestMe() {
	user := newUser(models.UserRoleTenant)
	suite.mockUserRepo.EXPECT().GetByID(suite.ctx, user.ID).Return(user, nil)

	resp, err := suite.userService.Me(suite.ctx, user)

	suite.Require().NoError(err)
	suite.Equal(user.Email, resp.Email)
	suite.True(resp.CanAccessWeb)
}

func (suite *UserServiceTestSuite) TestUpdateMeProfile() {
	user := newUser(models.UserRoleLandlord)
	suite.mockUserRepo.EXPECT().GetByID(suite.ctx, user.ID).Return(user, nil)
	suite.mockUserRepo.EXPECT().PhoneTaken(suite.ctx, "0901234567", user.ID).Return(false, nil)
	suite.mockUserRepo.EXPECT().Update(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		suite.Equal("VCB", u.BankCode)
		return nil
	})

	resp, err := suite.userService.UpdateMe(suite.ctx, user, &service.UpdateProfileRequest{
		FullName:          strPtr("  Tran Thi B "),
		Phone:             strPtr("0901234567"),
		BankAccountNumber: strPtr("0123456789"),
		BankCode:          strPtr("vcb"),
	})

	suite.Require().NoError(err)
	suite.Equal("Tran Thi B", resp.FullName)
	suite.Equal("0123456789", resp.BankAccountNumber)
	suite.Require().NotNil(resp.Phone)
	suite.Equal("0901234567", *resp.Phone)
}

func (suite *UserServiceTestSuite) TestUpdateMeClearsPhone() {
	user := newUser(models.UserRoleTenant)
	user.Phone = strPtr("0900000000")
	suite.mockUserRepo.EXPECT().GetByID(suite.ctx, user.ID).Return(user, nil)
	suite.mockUserRepo.EXPECT().Update(suite.ctx, gomock.Any()).Return(nil)

	resp, err := suite.userService.UpdateMe(suite.ctx, user, &service.UpdateProfileRequest{Phone: strPtr(" ")})

	suite.Require().NoError(err)
	suite.Nil(resp.Phone)
}

func (suite *UserServiceTestSuite) TestUpdateMePhoneTaken() {
	user := newUser(models.UserRoleTenant)
	suite.mockUserRepo.EXPECT().GetByID(suite.ctx, user.ID).Return(user, nil)
	suite.mockUserRepo.EXPECT().PhoneTaken(suite.ctx, "0901234567", user.ID).Return(true, nil)

	_, err := suite.userService.UpdateMe(suite.ctx, user, &service.UpdateProfileRequest{Phone: strPtr("0901234567")})

	suite.ErrorIs(err, apperrors.ErrPhoneExists)
}

func (suite *UserServiceTestSuite) TestUpdateMeBankRules() {
	testCases := []struct {
		name    string
		role    models.UserRole
		account string
		want    error
	}{
		{name: "tenant cannot set bank info", role: models.UserRoleTenant, account: "0123456789", want: apperrors.ErrBankInfoLandlordOnly},
		{name: "too short", role: models.UserRoleLandlord, account: "12345", want: apperrors.ErrInvalidBankAccount},
		{name: "too long", role: models.UserRoleLandlord, account: "12345678901234567890", want: apperrors.ErrInvalidBankAccount},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			user := newUser(tc.role)
			suite.mockUserRepo.EXPECT().GetByID(suite.ctx, user.ID).Return(user, nil)

			_, err := suite.userService.UpdateMe(suite.ctx, user, &service.UpdateProfileRequest{BankAccountNumber: strPtr(tc.account)})
			suite.ErrorIs(err, tc.want)
		})
	}

	suite.Run("non digits", func() {
		user := newUser(models.UserRoleLandlord)
		suite.mockUserRepo.EXPECT().GetByID(suite.ctx, user.ID).Return(user, nil)

		_, err := suite.userService.UpdateMe(suite.ctx, user, &service.UpdateProfileRequest{BankAccountNumber: strPtr("12ab5678")})
		suite.True(apperrors.IsValidation(err))
	})
}

func (suite *UserServiceTestSuite) TestListFilters() {
	landlord := newUser(models.UserRoleLandlord)
	suite.mockUserRepo.EXPECT().
		List(suite.ctx, repository.ViewerFromUser(landlord), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ repository.Viewer, f repository.UserFilter, opts repository.ListOptions) ([]models.User, int64, error) {
			suite.Equal(models.UserRoleTenant, f.Role)
			suite.Require().NotNil(f.IsActive)
			suite.False(*f.IsActive)
			suite.Equal(10, opts.Offset)
			return []models.User{*newUser(models.UserRoleTenant)}, 11, nil
		})

	resp, err := suite.userService.List(suite.ctx, landlord, service.UserQuery{
		ListParams: service.ListParams{Page: 2, PageSize: 10},
		Role:       "tenant",
		IsActive:   "false",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(11), resp.Total)
	suite.Len(resp.Items, 1)
}

func (suite *UserServiceTestSuite) TestGetHidesOtherUsersFromTenants() {
	tenant := newUser(models.UserRoleTenant)

	_, err := suite.userService.Get(suite.ctx, tenant, uuid.New())
	suite.ErrorIs(err, apperrors.ErrUserNotFound)

	suite.mockUserRepo.EXPECT().GetByID(suite.ctx, tenant.ID).Return(tenant, nil)
	resp, err := suite.userService.Get(suite.ctx, tenant, tenant.ID)
	suite.Require().NoError(err)
	suite.Equal(tenant.ID, resp.ID)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func TestListParamsNormalize(t *testing.T) {
	assert.Equal(t, service.ListParams{Page: 1, PageSize: service.DefaultPageSize}, service.ListParams{}.Normalize())
	assert.Equal(t, service.ListParams{Page: 3, PageSize: service.MaxPageSize}, service.ListParams{Page: 3, PageSize: 1000}.Normalize())
}
