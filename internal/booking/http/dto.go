package http

import (
	"time"

	"github.com/nekogravitycat/share-it-backend/internal/booking"
	"github.com/nekogravitycat/share-it-backend/internal/pkg/request"
)

type CreateBookingRequest struct {
	ItemID string    `json:"item_id" binding:"required,uuid"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

type DecideRequest struct {
	Approved *bool `form:"approved" binding:"required"`
}

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.PageParams
	State string `form:"state"`
}

type BookerTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ItemTag struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"owner_id"`
}

type BookingResponse struct {
	ID        string    `json:"id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
	Booker    BookerTag `json:"booker"`
	Item      ItemTag   `json:"item"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Start:     b.Start,
		End:       b.End,
		Status:    string(b.Status),
		Booker:    BookerTag{ID: b.BookerID, Name: b.BookerName},
		Item:      ItemTag{ID: b.ItemID, Name: b.ItemName, OwnerID: b.ItemOwnerID},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func NewBookingResponses(bookings []*booking.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = NewBookingResponse(b)
	}
	return out
}
