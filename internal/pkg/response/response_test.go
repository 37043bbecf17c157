package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/share-it-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/share-it-backend/internal/pkg/pagination"
)

func render(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Error(c, err)
	return w
}

func TestErrorUsesAppErrorCode(t *testing.T) {
	w := render(apperror.NotFound("booking not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "booking not found", body.Error)
}

func TestErrorHidesInternalFailures(t *testing.T) {
	w := render(errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestNewPageResponseNeverNull(t *testing.T) {
	resp := NewPageResponse[string](nil, pagination.Page{Number: 0, Size: 10}, 0)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"page":0,"page_size":10,"total":0}`, string(raw))

	page, err := pagination.FromOffset(7, 5)
	require.NoError(t, err)
	resp = NewPageResponse([]string{"a"}, page, 11)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 5, resp.PageSize)
}
