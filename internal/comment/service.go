package comment

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nekogravitycat/share-it-backend/internal/item"
	"github.com/nekogravitycat/share-it-backend/internal/user"
)

type UserLookup interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

type ItemLookup interface {
	GetByID(ctx context.Context, id string) (*item.Item, error)
}

// BookingChecker tells whether a member has finished using an item.
type BookingChecker interface {
	HasCompletedBooking(ctx context.Context, bookerID, itemID string) (bool, error)
}

type Service interface {
	Create(ctx context.Context, itemID, authorID, text string) (*Comment, error)
	ListByItem(ctx context.Context, itemID string) ([]*Comment, error)
}

type service struct {
	repo     Repository
	users    UserLookup
	items    ItemLookup
	bookings BookingChecker
	logger   *zerolog.Logger
}

func NewService(repo Repository, users UserLookup, items ItemLookup, bookings BookingChecker, logger *zerolog.Logger) Service {
	return &service{
		repo:     repo,
		users:    users,
		items:    items,
		bookings: bookings,
		logger:   logger,
	}
}

func (s *service) Create(ctx context.Context, itemID, authorID, text string) (*Comment, error) {
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextRequired
	}

	ok, err := s.bookings.HasCompletedBooking(ctx, authorID, itemID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoCompletedBooking
	}

	c := &Comment{
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Text:       text,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info().Str("comment_id", c.ID).Str("item_id", itemID).Str("author_id", authorID).Msg("comment created")
	return c, nil
}

func (s *service) ListByItem(ctx context.Context, itemID string) ([]*Comment, error) {
	return s.repo.ListByItem(ctx, itemID)
}
