package booking

import (
	"time"

	"github.com/nekogravitycat/share-it-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.NotFound("booking not found")
	ErrUserNotFound     = apperror.NotFound("user not found")
	ErrOwnItem          = apperror.NotFound("owner cannot book their own item")
	ErrItemUnavailable  = apperror.Validation("item is not available for booking")
	ErrInvalidTimeRange = apperror.Validation("start must be before end")
	ErrAlreadyApproved  = apperror.Validation("booking is already approved")
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Booking is a request by a booker to use an item for [Start, End).
// Item and booker names are read through joins and never stored on the booking row.
type Booking struct {
	ID          string
	ItemID      string
	ItemName    string
	ItemOwnerID string
	BookerID    string
	BookerName  string
	Start       time.Time
	End         time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateRequest struct {
	ItemID string
	Start  time.Time
	End    time.Time
}
