package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/share-it-backend/internal/auth"
	params "github.com/nekogravitycat/share-it-backend/internal/pkg/request"
	"github.com/nekogravitycat/share-it-backend/internal/pkg/response"
	"github.com/nekogravitycat/share-it-backend/internal/request"
)

type Handler struct {
	service         request.Service
	defaultPageSize int
}

func NewHandler(service request.Service, defaultPageSize int) *Handler {
	return &Handler{service: service, defaultPageSize: defaultPageSize}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), auth.GetUserID(c), req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewRequestResponse(created))
}

// ListMine returns all of the caller's requests, newest first.
func (h *Handler) ListMine(c *gin.Context) {
	requests, err := h.service.ListMine(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": NewRequestResponses(requests)})
}

// ListAll pages through other members' requests.
func (h *Handler) ListAll(c *gin.Context) {
	var req params.PageParams
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	requests, page, total, err := h.service.ListOthers(c.Request.Context(), auth.GetUserID(c), req.From, req.SizeOr(h.defaultPageSize))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewPageResponse(NewRequestResponses(requests), page, total))
}

func (h *Handler) Get(c *gin.Context) {
	var uri params.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), auth.GetUserID(c), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRequestResponse(r))
}
