package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/share-it-backend/internal/auth"
	"github.com/nekogravitycat/share-it-backend/internal/booking"
	"github.com/nekogravitycat/share-it-backend/internal/comment"
	commentHttp "github.com/nekogravitycat/share-it-backend/internal/comment/http"
	"github.com/nekogravitycat/share-it-backend/internal/item"
	"github.com/nekogravitycat/share-it-backend/internal/pkg/request"
	"github.com/nekogravitycat/share-it-backend/internal/pkg/response"
)

type Handler struct {
	service         item.Service
	bookingService  booking.Service
	commentService  comment.Service
	defaultPageSize int
}

func NewHandler(service item.Service, bookingService booking.Service, commentService comment.Service, defaultPageSize int) *Handler {
	return &Handler{
		service:         service,
		bookingService:  bookingService,
		commentService:  commentService,
		defaultPageSize: defaultPageSize,
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	it, err := h.service.Create(c.Request.Context(), auth.GetUserID(c), item.CreateRequest{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewItemResponse(it))
}

// Get returns the item with its comments. The owner also sees the last and next booking.
func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	ctx := c.Request.Context()

	it, err := h.service.GetByID(ctx, uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp, err := h.detail(ctx, it, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// detail builds the item view for viewerID. Bookings are only shown to the owner.
func (h *Handler) detail(ctx context.Context, it *item.Item, viewerID string) (ItemDetailResponse, error) {
	comments, err := h.commentService.ListByItem(ctx, it.ID)
	if err != nil {
		return ItemDetailResponse{}, err
	}

	resp := ItemDetailResponse{
		ItemResponse: NewItemResponse(it),
		Comments:     commentHttp.NewCommentResponses(comments),
	}

	if it.OwnerID == viewerID {
		last, next, err := h.bookingService.ItemTimeline(ctx, it.ID)
		if err != nil {
			return ItemDetailResponse{}, err
		}
		resp.LastBooking = newBookingShort(last)
		resp.NextBooking = newBookingShort(next)
	}

	return resp, nil
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	it, err := h.service.Update(c.Request.Context(), uri.ID, auth.GetUserID(c), item.UpdateRequest{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemResponse(it))
}

// ListMine lists the caller's own items, each with its comments and last and next booking.
func (h *Handler) ListMine(c *gin.Context) {
	var req request.PageParams
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	ctx := c.Request.Context()
	ownerID := auth.GetUserID(c)

	items, page, total, err := h.service.ListByOwner(ctx, ownerID, req.From, req.SizeOr(h.defaultPageSize))
	if err != nil {
		response.Error(c, err)
		return
	}

	details := make([]ItemDetailResponse, len(items))
	for i, it := range items {
		details[i], err = h.detail(ctx, it, ownerID)
		if err != nil {
			response.Error(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, response.NewPageResponse(details, page, total))
}

func (h *Handler) Search(c *gin.Context) {
	var req SearchItemsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	items, page, total, err := h.service.Search(c.Request.Context(), req.Text, req.From, req.SizeOr(h.defaultPageSize))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewPageResponse(NewItemResponses(items), page, total))
}
