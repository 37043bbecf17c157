package http

import (
	"time"

	"github.com/nekogravitycat/share-it-backend/internal/booking"
	commentHttp "github.com/nekogravitycat/share-it-backend/internal/comment/http"
	"github.com/nekogravitycat/share-it-backend/internal/item"
	"github.com/nekogravitycat/share-it-backend/internal/pkg/request"
)

type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Available   *bool   `json:"available" binding:"required"`
	RequestID   *string `json:"request_id" binding:"omitempty,uuid"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type SearchItemsRequest struct {
	request.PageParams
	Text string `form:"text"`
}

type ItemResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	RequestID   *string   `json:"request_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewItemResponse(it *item.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		OwnerID:     it.OwnerID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
		CreatedAt:   it.CreatedAt,
	}
}

func NewItemResponses(items []*item.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = NewItemResponse(it)
	}
	return out
}

// BookingShort is the booking summary shown on an item's detail page.
type BookingShort struct {
	ID       string    `json:"id"`
	BookerID string    `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

func newBookingShort(b *booking.Booking) *BookingShort {
	if b == nil {
		return nil
	}
	return &BookingShort{ID: b.ID, BookerID: b.BookerID, Start: b.Start, End: b.End}
}

type ItemDetailResponse struct {
	ItemResponse
	LastBooking *BookingShort                 `json:"last_booking"`
	NextBooking *BookingShort                 `json:"next_booking"`
	Comments    []commentHttp.CommentResponse `json:"comments"`
}
