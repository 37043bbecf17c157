package comment

import (
	"time"

	"github.com/nekogravitycat/share-it-backend/internal/pkg/apperror"
)

var (
	ErrTextRequired       = apperror.Validation("text is required")
	ErrNoCompletedBooking = apperror.Validation("only members who finished an approved booking of this item can comment")
	ErrAuthorNotFound     = apperror.NotFound("user not found")
)

// Comment is feedback left on an item by someone who has used it.
type Comment struct {
	ID         string
	ItemID     string
	AuthorID   string
	AuthorName string
	Text       string
	CreatedAt  time.Time
}
