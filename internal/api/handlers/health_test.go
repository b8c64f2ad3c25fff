package handlers_test

import (
	"net/http"
	"testing"

	"rental-management-backend/internal/api/handlers"
	"rental-management-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	handler := handlers.NewHealthHandler(db, "1.2.3")

	h := testutils.SetupHTTPTest()
	h.Router.GET("/health", handler.Health)
	h.Router.GET("/health/ready", handler.Ready)
	h.Router.GET("/health/live", handler.Live)

	t.Run("healthy", func(t *testing.T) {
		var body handlers.HealthResponse
		testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &body)
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "1.2.3", body.Version)
		assert.Equal(t, "healthy", body.Services["database"])
	})

	t.Run("live", func(t *testing.T) {
		var body map[string]interface{}
		testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodGet, "/health/live", nil), http.StatusOK, &body)
		assert.Equal(t, true, body["alive"])
	})

	t.Run("unhealthy after close", func(t *testing.T) {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		var body handlers.HealthResponse
		testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable, &body)
		assert.Equal(t, "unhealthy", body.Status)

		rec := h.MakeRequest(http.MethodGet, "/health/ready", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
