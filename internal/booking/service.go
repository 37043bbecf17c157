package booking

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/nekogravitycat/share-it-backend/internal/item"
	"github.com/nekogravitycat/share-it-backend/internal/metrics"
	"github.com/nekogravitycat/share-it-backend/internal/pkg/pagination"
	"github.com/nekogravitycat/share-it-backend/internal/user"
)

// UserLookup resolves members.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// ItemLookup resolves items.
type ItemLookup interface {
	GetByID(ctx context.Context, id string) (*item.Item, error)
}

type Service interface {
	Create(ctx context.Context, bookerID string, req CreateRequest) (*Booking, error)
	Decide(ctx context.Context, deciderID, bookingID string, approve bool) (*Booking, error)
	GetByID(ctx context.Context, requesterID, bookingID string) (*Booking, error)
	ListForRequester(ctx context.Context, userID string, state State, from, size int) ([]*Booking, pagination.Page, int, error)
	ListForOwner(ctx context.Context, userID string, state State, from, size int) ([]*Booking, pagination.Page, int, error)

	// HasCompletedBooking reports whether the booker has an approved booking of the item that has ended.
	HasCompletedBooking(ctx context.Context, bookerID, itemID string) (bool, error)
	// ItemTimeline returns the item's most recently ended booking and its next upcoming one.
	ItemTimeline(ctx context.Context, itemID string) (last, next *Booking, err error)
}

type service struct {
	repo   Repository
	users  UserLookup
	items  ItemLookup
	clock  Clock
	logger *zerolog.Logger
}

func NewService(repo Repository, users UserLookup, items ItemLookup, clock Clock, logger *zerolog.Logger) Service {
	return &service{
		repo:   repo,
		users:  users,
		items:  items,
		clock:  clock,
		logger: logger,
	}
}

func (s *service) Create(ctx context.Context, bookerID string, req CreateRequest) (*Booking, error) {
	it, err := s.items.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	booker, err := s.users.GetByID(ctx, bookerID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if it.OwnerID == booker.ID {
		return nil, ErrOwnItem
	}
	if !it.Available {
		return nil, ErrItemUnavailable
	}
	if !req.Start.Before(req.End) {
		return nil, ErrInvalidTimeRange
	}

	b := &Booking{
		ItemID:      it.ID,
		ItemName:    it.Name,
		ItemOwnerID: it.OwnerID,
		BookerID:    booker.ID,
		BookerName:  booker.Name,
		Start:       req.Start,
		End:         req.End,
		Status:      StatusWaiting,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	metrics.IncBookingTransition(string(b.Status))
	s.logger.Info().
		Str("booking_id", b.ID).
		Str("item_id", b.ItemID).
		Str("actor_id", bookerID).
		Str("status", string(b.Status)).
		Msg("booking created")

	return b, nil
}

// Decide applies the owner's approval or rejection.
// Anyone but the item owner gets ErrNotFound, checked before the transition itself.
func (s *service) Decide(ctx context.Context, deciderID, bookingID string, approve bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUser(ctx, deciderID); err != nil {
		return nil, err
	}

	if b.ItemOwnerID != deciderID {
		return nil, ErrNotFound
	}

	to, err := nextStatus(b.Status, approve)
	if err != nil {
		return nil, err
	}

	updatedAt, err := s.repo.UpdateStatus(ctx, b.ID, to)
	if err != nil {
		return nil, err
	}

	from := b.Status
	b.Status = to
	b.UpdatedAt = updatedAt

	metrics.IncBookingTransition(string(to))
	s.logger.Info().
		Str("booking_id", b.ID).
		Str("actor_id", deciderID).
		Str("from", string(from)).
		Str("status", string(to)).
		Msg("booking decided")

	return b, nil
}

// GetByID returns the booking to its booker or the item owner; anyone else gets ErrNotFound.
func (s *service) GetByID(ctx context.Context, requesterID, bookingID string) (*Booking, error) {
	if err := s.ensureUser(ctx, requesterID); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.BookerID != requesterID && b.ItemOwnerID != requesterID {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *service) ListForRequester(ctx context.Context, userID string, state State, from, size int) ([]*Booking, pagination.Page, int, error) {
	return s.list(ctx, ScopeRequester, userID, state, from, size)
}

func (s *service) ListForOwner(ctx context.Context, userID string, state State, from, size int) ([]*Booking, pagination.Page, int, error) {
	return s.list(ctx, ScopeOwner, userID, state, from, size)
}

func (s *service) list(ctx context.Context, scope Scope, userID string, state State, from, size int) ([]*Booking, pagination.Page, int, error) {
	page, err := pagination.FromOffset(from, size)
	if err != nil {
		return nil, pagination.Page{}, 0, err
	}

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, pagination.Page{}, 0, err
	}

	bookings, total, err := s.repo.List(ctx, scope, userID, state, s.clock.Now(), page)
	if err != nil {
		return nil, pagination.Page{}, 0, err
	}
	return bookings, page, total, nil
}

func (s *service) HasCompletedBooking(ctx context.Context, bookerID, itemID string) (bool, error) {
	bookings, err := s.repo.ListByBookerAndItem(ctx, bookerID, itemID)
	if err != nil {
		return false, err
	}

	now := s.clock.Now()
	for _, b := range bookings {
		if b.Status == StatusApproved && StatePast.Matches(b, now) {
			return true, nil
		}
	}
	return false, nil
}

func (s *service) ItemTimeline(ctx context.Context, itemID string) (*Booking, *Booking, error) {
	bookings, err := s.repo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}

	last, next := lastAndNext(bookings, s.clock.Now())
	return last, next, nil
}

func (s *service) ensureUser(ctx context.Context, id string) error {
	ok, err := s.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}
