package item

import (
	"time"

	"github.com/nekogravitycat/share-it-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.NotFound("item not found")
	ErrUserNotFound        = apperror.NotFound("user not found")
	ErrRequestNotFound     = apperror.NotFound("request not found")
	ErrNameRequired        = apperror.Validation("name cannot be empty")
	ErrDescriptionRequired = apperror.Validation("description cannot be empty")
)

// Item is something a member offers for others to book.
type Item struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Available   bool
	// RequestID is set when the item was listed in answer to a sharing request.
	RequestID *string
	CreatedAt time.Time
}

type CreateRequest struct {
	Name        string
	Description string
	Available   bool
	RequestID   *string
}

// UpdateRequest is a partial update; nil fields are left untouched.
type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}
