package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/share-it-backend/internal/pkg/response"
)

func TestRequestLoggerAttachesLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r := gin.New()
	r.Use(RequestLogger(&logger), Metrics())
	r.GET("/boom/:id", func(c *gin.Context) {
		response.Error(c, errors.New("disk on fire"))
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom/1", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rr.Body.String())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var failure, access map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &failure))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &access))

	assert.Equal(t, "disk on fire", failure["error"])
	assert.Equal(t, "/boom/:id", access["route"])
	assert.Equal(t, float64(500), access["status"])
	assert.Equal(t, "error", access["level"])
}
