package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/share-it-backend/internal/auth"
	"github.com/nekogravitycat/share-it-backend/internal/metrics"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zerolog.Nop()
	return NewRouter(Config{
		DefaultPageSize: 10,
		Logger:          &logger,
		JWTManager:      auth.NewJWTManager("test-secret", time.Minute),
	})
}

func TestRouterOperationalEndpoints(t *testing.T) {
	metrics.Register()
	r := newTestRouter()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `shareit_http_requests_total{method="GET",route="/healthz",status="200"}`)
}

func TestRouterRequiresToken(t *testing.T) {
	r := newTestRouter()

	for _, path := range []string{"/v1/bookings", "/v1/bookings/owner", "/v1/items", "/v1/me", "/v1/requests", "/v1/requests/all", "/v1/users"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"invalid or expired token"}`, rr.Body.String())
}
