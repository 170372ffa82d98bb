package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithRequestID(t *testing.T, header string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	var seen string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/x", func(c *gin.Context) {
		seen = RequestIDFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if header != "" {
		req.Header.Set("X-Request-Id", header)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp, seen
}

func TestRequestIDEchoesClientValue(t *testing.T) {
	resp, seen := serveWithRequestID(t, "abc-123")
	assert.Equal(t, "abc-123", resp.Header().Get("X-Request-Id"))
	assert.Equal(t, "abc-123", seen)
}

func TestRequestIDGeneratesUUID(t *testing.T) {
	for _, header := range []string{"", "has space", strings.Repeat("x", 200)} {
		resp, seen := serveWithRequestID(t, header)
		got := resp.Header().Get("X-Request-Id")
		_, err := uuid.Parse(got)
		require.NoError(t, err, "header %q", header)
		assert.Equal(t, got, seen)
	}
}

func TestRecoveryReturnsGenericError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET("/boom", func(c *gin.Context) { panic("secret detail") })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"An internal server error occurred while generating the file."}`, resp.Body.String())
	assert.NotContains(t, resp.Body.String(), "secret")
}
