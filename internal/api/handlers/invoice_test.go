package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
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

// InvoiceHandlerTestSuite defines the test suite for InvoiceHandler
type InvoiceHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockInvoiceServiceInterface
	user        *models.User
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *InvoiceHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockInvoiceServiceInterface(suite.ctrl)
	suite.user = landlord()

	handler := handlers.NewInvoiceHandler(suite.mockService)
	suite.httpSuite = authenticatedRouter(suite.user)
	invoices := suite.httpSuite.Router.Group("/api/v1/invoices")
	{
		invoices.GET("", handler.ListInvoices)
		invoices.POST("", handler.CreateInvoice)
		invoices.GET("/:id", handler.GetInvoice)
		invoices.GET("/:id/pdf", handler.DownloadInvoicePDF)
		invoices.PATCH("/:id", handler.UpdateInvoice)
		invoices.DELETE("/:id", handler.DeleteInvoice)
	}
}

func (suite *InvoiceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice() {
	tenancyID := uuid.New()
	created := &service.InvoiceResponse{ID: uuid.New(), Tenancy: tenancyID, Period: "2025-03", TotalAmount: 3500000, Status: models.InvoiceStatusDraft}

	suite.mockService.EXPECT().
		Create(gomock.Any(), suite.user, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.User, req *service.CreateInvoiceRequest) (*service.InvoiceResponse, error) {
			suite.Equal(tenancyID, req.Tenancy)
			suite.Equal("2025-03", req.Period)
			suite.Require().Len(req.Lines, 1)
			suite.Equal(models.LineItemType("rent"), req.Lines[0].ItemType)
			return created, nil
		})

	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/invoices", map[string]interface{}{
		"tenancy": tenancyID.String(),
		"period":  "2025-03",
		"lines": []map[string]interface{}{
			{"item_type": "rent", "quantity": 1, "unit_price": 3500000, "amount": 3500000},
		},
	})

	var body service.InvoiceResponse
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusCreated, &body)
	suite.Equal(created.ID, body.ID)
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoiceValidationDetails() {
	fe := apperrors.FieldErrors{}
	fe.Add("lines[0].amount", "this field is required")
	suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fe)

	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/invoices", map[string]interface{}{"period": "2025-03"})

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusBadRequest, &body)
	details, ok := body["details"].(map[string]interface{})
	suite.Require().True(ok)
	suite.Contains(details, "lines[0].amount")
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoiceInvalidJSON() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(rec, req)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Invalid request body")
}

func (suite *InvoiceHandlerTestSuite) TestListInvoicesPassesFilters() {
	expected := service.InvoiceQuery{
		ListParams: service.ListParams{Page: 2, PageSize: 10, Search: "101", Ordering: "-due_date"},
		Status:     "pending,overdue",
		PeriodGTE:  "2025-01",
		Property:   "p-1",
	}
	suite.mockService.EXPECT().List(gomock.Any(), suite.user, expected).
		Return(&service.ListResponse[service.InvoiceResponse]{Items: []service.InvoiceResponse{}, Page: 2, PageSize: 10}, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodGet,
		"/api/v1/invoices?page=2&page_size=10&search=101&ordering=-due_date&status=pending,overdue&period_gte=2025-01&property=p-1", nil)
	suite.Equal(http.StatusOK, rec.Code)
}

func (suite *InvoiceHandlerTestSuite) TestListInvoicesClampsPageSize() {
	suite.mockService.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.User, q service.InvoiceQuery) (*service.ListResponse[service.InvoiceResponse], error) {
			suite.Equal(1, q.Page)
			suite.Equal(service.MaxPageSize, q.PageSize)
			return &service.ListResponse[service.InvoiceResponse]{}, nil
		})

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/invoices?page=-3&page_size=1000", nil)
	suite.Equal(http.StatusOK, rec.Code)
}

func (suite *InvoiceHandlerTestSuite) TestListInvoicesFieldSelection() {
	id := uuid.New()
	suite.mockService.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&service.ListResponse[service.InvoiceResponse]{
			Items: []service.InvoiceResponse{{ID: id, Period: "2025-03", Notes: "secret"}},
			Total: 1, Page: 1, PageSize: 20,
		}, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/invoices?fields=id,period", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &body)
	suite.Equal(float64(1), body["total"])
	items := body["items"].([]interface{})
	suite.Require().Len(items, 1)
	item := items[0].(map[string]interface{})
	suite.Len(item, 2)
	suite.Equal(id.String(), item["id"])
	suite.Equal("2025-03", item["period"])
}

func (suite *InvoiceHandlerTestSuite) TestGetInvoice() {
	id := uuid.New()
	suite.mockService.EXPECT().Get(gomock.Any(), suite.user, id).
		Return(&service.InvoiceResponse{ID: id, Period: "2025-03", Status: models.InvoiceStatusPending}, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/invoices/"+id.String()+"?fields=status", nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &body)
	suite.Equal(map[string]interface{}{"status": "pending"}, body)
}

func (suite *InvoiceHandlerTestSuite) TestGetInvoiceNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Get(gomock.Any(), gomock.Any(), id).Return(nil, apperrors.ErrInvoiceNotFound)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/invoices/"+id.String(), nil)
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "not found")
}

func (suite *InvoiceHandlerTestSuite) TestInvalidID() {
	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/invoices/not-a-uuid", nil)
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Invalid ID format")
}

func (suite *InvoiceHandlerTestSuite) TestUpdateInvoiceForbidden() {
	id := uuid.New()
	suite.mockService.EXPECT().Update(gomock.Any(), gomock.Any(), id, gomock.Any()).Return(nil, apperrors.ErrOnlyLandlords)

	rec := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/invoices/"+id.String(), map[string]string{"status": "pending"})
	suite.Equal(http.StatusForbidden, rec.Code)
}

func (suite *InvoiceHandlerTestSuite) TestDeleteInvoice() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), suite.user, id).Return(nil)

	rec := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/invoices/"+id.String(), nil)
	suite.Equal(http.StatusNoContent, rec.Code)
}

func (suite *InvoiceHandlerTestSuite) TestDownloadInvoicePDF() {
	id := uuid.New()
	suite.mockService.EXPECT().PDF(gomock.Any(), suite.user, id).
		Return(&service.InvoiceDocument{Filename: "Hoa-don-2025-03-abcdef12.pdf", Content: []byte("%PDF-1.4")}, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/invoices/"+id.String()+"/pdf", nil)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("application/pdf", rec.Header().Get("Content-Type"))
	suite.Contains(rec.Header().Get("Content-Disposition"), `filename="Hoa-don-2025-03-abcdef12.pdf"`)
	suite.Equal("%PDF-1.4", rec.Body.String())
}

func (suite *InvoiceHandlerTestSuite) TestInternalErrorsAreMasked() {
	suite.mockService.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/invoices", nil)
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusInternalServerError, "internal server error")
}

func TestInvoiceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}

func TestHandlersRequireAuthentication(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := handlers.NewInvoiceHandler(mocks.NewMockInvoiceServiceInterface(ctrl))
	h := authenticatedRouter(nil)
	h.Router.GET("/invoices", handler.ListInvoices)

	testutils.AssertErrorResponse(t, h.MakeRequest(http.MethodGet, "/invoices", nil), http.StatusUnauthorized, "Authentication required")
}
