package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/share-it-backend/internal/auth"
	"github.com/nekogravitycat/share-it-backend/internal/item"
	"github.com/nekogravitycat/share-it-backend/internal/pkg/pagination"
	"github.com/nekogravitycat/share-it-backend/internal/request"
)

const (
	callerID  = "5a0f3d1e-2b1c-4f47-9a53-0b6c3c3e9a01"
	requestID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
)

var created = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

type stubService struct {
	request.Service
	listFrom, listSize int
}

func (stubService) Create(_ context.Context, requesterID, description string) (*request.Request, error) {
	if strings.TrimSpace(description) == "" {
		return nil, request.ErrDescriptionRequired
	}
	return &request.Request{ID: requestID, RequesterID: requesterID, RequesterName: "Ann",
		Description: description, CreatedAt: created, Items: []*item.Item{}}, nil
}

func (stubService) GetByID(_ context.Context, _, id string) (*request.Request, error) {
	if id != requestID {
		return nil, request.ErrNotFound
	}
	reqID := requestID
	return &request.Request{ID: requestID, RequesterID: "other", RequesterName: "Bob", Description: "a ladder",
		CreatedAt: created, Items: []*item.Item{{ID: "ladder", Name: "Ladder", RequestID: &reqID}}}, nil
}

func (stubService) ListMine(context.Context, string) ([]*request.Request, error) {
	return []*request.Request{{ID: "r2", Items: []*item.Item{}}, {ID: "r1", Items: []*item.Item{}}}, nil
}

func (s *stubService) ListOthers(_ context.Context, _ string, from, size int) ([]*request.Request, pagination.Page, int, error) {
	s.listFrom, s.listSize = from, size
	page, err := pagination.FromOffset(from, size)
	if err != nil {
		return nil, pagination.Page{}, 0, err
	}
	return []*request.Request{{ID: "r9", Items: []*item.Item{}}}, page, 11, nil
}

func newRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	asCaller := func(c *gin.Context) {
		auth.SetUserID(c, callerID)
		c.Next()
	}
	RegisterRoutes(r.Group("/v1"), NewHandler(svc, 20), asCaller)
	return r
}

func TestCreateRequest(t *testing.T) {
	r := newRouter(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/requests", strings.NewReader(`{"description":"a ladder"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	var body RequestResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, requestID, body.ID)
	assert.Equal(t, callerID, body.Requester.ID)
	assert.NotNil(t, body.Items)

	req = httptest.NewRequest(http.MethodPost, "/v1/requests", strings.NewReader(`{"description":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetRequestWithItems(t *testing.T) {
	r := newRouter(&stubService{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/requests/"+requestID, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"items":[{"id":"ladder"`)
	assert.Contains(t, rr.Body.String(), `"request_id":"`+requestID+`"`)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/requests/3f2504e0-4f89-11d3-9a0c-0305e82c3301", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/requests/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListRequests(t *testing.T) {
	svc := &stubService{}
	r := newRouter(svc)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/requests", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var mine struct {
		Items []RequestResponse `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &mine))
	require.Len(t, mine.Items, 2)
	assert.Equal(t, "r2", mine.Items[0].ID)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/requests/all?from=7", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 7, svc.listFrom)
	assert.Equal(t, 20, svc.listSize)
	assert.Contains(t, rr.Body.String(), `"total":11`)
	assert.Contains(t, rr.Body.String(), `"page":0`)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/requests/all?size=0", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
