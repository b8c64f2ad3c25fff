package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rental-management-backend/internal/logger"
	"rental-management-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.Use(RequestID())
	h.Router.GET("/ping", func(c *gin.Context) {
		id, _ := c.Request.Context().Value(logger.RequestIDKey).(string)
		c.String(http.StatusOK, id)
	})

	rec := h.MakeRequest(http.MethodGet, "/ping", nil)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, rec.Header().Get(RequestIDHeader), rec.Body.String())

	rec = h.MakeRequestWithHeaders(http.MethodGet, "/ping", nil, map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.5:51234"
	assert.Equal(t, "10.0.0.5", ClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", ClientIP(req))
}

func TestRecovery(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.Use(Recovery())
	h.Router.GET("/boom", func(c *gin.Context) { panic("boom") })

	testutils.AssertErrorResponse(t, h.MakeRequest(http.MethodGet, "/boom", nil), http.StatusInternalServerError, "internal server error")
}

func TestLoggerPassesThrough(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.Use(RequestID(), Logger(time.Nanosecond))
	h.Router.GET("/slow", func(c *gin.Context) {
		time.Sleep(time.Millisecond)
		c.Status(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, h.MakeRequest(http.MethodGet, "/slow", nil).Code)
}

func TestCORS(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.Use(CORS([]string{"http://localhost:3000"}))
	h.Router.GET("/items", func(c *gin.Context) { c.Status(http.StatusOK) })
	h.Router.OPTIONS("/items", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	rec := h.MakeRequestWithHeaders(http.MethodOptions, "/items", nil, map[string]string{
		"Origin":                        "http://localhost:3000",
		"Access-Control-Request-Method": "GET",
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = h.MakeRequestWithHeaders(http.MethodGet, "/items", nil, map[string]string{"Origin": "http://evil.example"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
