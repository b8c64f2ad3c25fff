package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rental-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestedFields(t *testing.T) {
	assert.Empty(t, requestedFields(""))
	assert.Empty(t, requestedFields(" , ,"))
	assert.Equal(t, map[string]struct{}{"id": {}, "status": {}}, requestedFields("id, status,"))
}

func TestPickFields(t *testing.T) {
	obj := map[string]interface{}{"id": "1", "status": "paid", "total_amount": 10.0}
	assert.Equal(t, map[string]interface{}{"id": "1"}, pickFields(obj, requestedFields("id,unknown")))
}

func TestListParamsFromQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/x?page=0&page_size=500&search=+abc+&ordering=-created_at", nil)

	p := listParams(c)
	assert.Equal(t, service.ListParams{Page: 1, PageSize: service.MaxPageSize, Search: "abc", Ordering: "-created_at"}, p)
}
