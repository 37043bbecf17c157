package user

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/share-it-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.NotFound("user not found")
	ErrEmailAlreadyUsed   = apperror.Conflict("email already used")
	ErrUserInUse          = apperror.Conflict("user still has items, bookings, comments or requests")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrEmailRequired      = apperror.Validation("email is required")
	ErrInvalidEmail       = apperror.Validation("email is invalid")
	ErrNameRequired       = apperror.Validation("name is required")
	ErrPasswordTooShort   = apperror.Validation("password is too short")
)

// User represents a registered member who can list items and book other members' items.
type User struct {
	ID           string // UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
