package request

import (
	"time"

	"github.com/nekogravitycat/share-it-backend/internal/item"
	"github.com/nekogravitycat/share-it-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.NotFound("request not found")
	ErrUserNotFound        = apperror.NotFound("user not found")
	ErrDescriptionRequired = apperror.Validation("description cannot be empty")
)

// Request is a member asking for an item nobody lists yet.
// Items listed in answer to it point back through item.Item.RequestID.
type Request struct {
	ID            string
	RequesterID   string
	RequesterName string
	Description   string
	CreatedAt     time.Time
	Items         []*item.Item
}
