package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"rental-management-backend/internal/api/handlers"
	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/mocks"
	"rental-management-backend/internal/service"
	"rental-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockUserServiceInterface
	user        *models.User
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.user = landlord()

	handler := handlers.NewUserHandler(suite.mockService)
	suite.httpSuite = authenticatedRouter(suite.user)
	suite.httpSuite.Router.GET("/auth/me", handler.GetMe)
	suite.httpSuite.Router.PATCH("/auth/me", handler.UpdateMe)
	suite.httpSuite.Router.GET("/users", handler.ListUsers)
	suite.httpSuite.Router.GET("/users/:id", handler.GetUser)
}

func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) TestGetMe() {
	suite.mockService.EXPECT().Me(gomock.Any(), suite.user).Return(service.ToUserResponse(suite.user), nil)

	var body service.UserResponse
	testutils.AssertJSONResponse(suite.T(), suite.httpSuite.MakeRequest(http.MethodGet, "/auth/me", nil), http.StatusOK, &body)
	suite.Equal(suite.user.ID, body.ID)
	suite.True(body.CanAccessWeb)
}

func (suite *UserHandlerTestSuite) TestUpdateMeBankInfo() {
	suite.mockService.EXPECT().UpdateMe(gomock.Any(), suite.user, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.User, req *service.UpdateProfileRequest) (*service.UserResponse, error) {
			suite.Require().NotNil(req.BankAccountNumber)
			suite.Equal("12345", *req.BankAccountNumber)
			fe := apperrors.FieldErrors{}
			fe.Add("bank_account_number", "account number must be 6-19 digits")
			return nil, fe
		})

	rec := suite.httpSuite.MakeRequest(http.MethodPatch, "/auth/me", map[string]string{"bank_account_number": "12345"})

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusBadRequest, &body)
	suite.Contains(body["details"], "bank_account_number")
}

func (suite *UserHandlerTestSuite) TestListUsers() {
	suite.mockService.EXPECT().List(gomock.Any(), suite.user, service.UserQuery{
		ListParams: service.ListParams{Page: 1, PageSize: service.DefaultPageSize, Search: "nguyen"},
		Role:       "tenant",
	}).Return(&service.ListResponse[service.UserResponse]{Items: []service.UserResponse{}, Total: 0, Page: 1, PageSize: 20}, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/users?role=tenant&search=nguyen", nil)
	suite.Equal(http.StatusOK, rec.Code)
}

func (suite *UserHandlerTestSuite) TestGetUserNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Get(gomock.Any(), suite.user, id).Return(nil, apperrors.ErrUserNotFound)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/users/"+id.String(), nil)
	suite.Equal(http.StatusNotFound, rec.Code)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
