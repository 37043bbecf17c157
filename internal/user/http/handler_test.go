package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/share-it-backend/internal/auth"
	"github.com/nekogravitycat/share-it-backend/internal/pkg/pagination"
	"github.com/nekogravitycat/share-it-backend/internal/user"
)

type stubUsers struct {
	user.Service
	deleted []string
	inUse   map[string]bool
}

func (s *stubUsers) Delete(_ context.Context, id string) error {
	if s.inUse[id] {
		return user.ErrUserInUse
	}
	for _, d := range s.deleted {
		if d == id {
			return user.ErrNotFound
		}
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubUsers) List(_ context.Context, from, size int) ([]*user.User, pagination.Page, int, error) {
	page, err := pagination.FromOffset(from, size)
	if err != nil {
		return nil, pagination.Page{}, 0, err
	}
	return []*user.User{{ID: "u1", Email: "ann@example.com", Name: "Ann"}}, page, 1, nil
}

func newRouter(callerID string, svc *stubUsers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	asCaller := func(c *gin.Context) {
		auth.SetUserID(c, callerID)
		c.Next()
	}
	RegisterRoutes(r.Group("/v1"), NewHandler(svc, auth.NewJWTManager("secret", time.Minute), 10), asCaller)
	return r
}

func TestDeleteMe(t *testing.T) {
	svc := &stubUsers{inUse: map[string]bool{"owner": true}}

	rr := httptest.NewRecorder()
	newRouter("u1", svc).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/v1/me", nil))
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, []string{"u1"}, svc.deleted)

	rr = httptest.NewRecorder()
	newRouter("u1", svc).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/v1/me", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	newRouter("owner", svc).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/v1/me", nil))
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestListUsers(t *testing.T) {
	rr := httptest.NewRecorder()
	newRouter("u1", &stubUsers{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/users?from=0&size=5", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"email":"ann@example.com"`)
	assert.Contains(t, rr.Body.String(), `"page_size":5`)
	assert.Contains(t, rr.Body.String(), `"total":1`)
}
