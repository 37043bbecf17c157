package item

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nekogravitycat/share-it-backend/internal/pkg/pagination"
)

// UserChecker reports whether a user exists.
type UserChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// RequestChecker reports whether a sharing request exists.
type RequestChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service interface {
	Create(ctx context.Context, ownerID string, req CreateRequest) (*Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)
	Update(ctx context.Context, id, ownerID string, req UpdateRequest) (*Item, error)
	ListByOwner(ctx context.Context, ownerID string, from, size int) ([]*Item, pagination.Page, int, error)
	Search(ctx context.Context, text string, from, size int) ([]*Item, pagination.Page, int, error)
	ListByRequests(ctx context.Context, requestIDs []string) ([]*Item, error)
}

type service struct {
	repo     Repository
	users    UserChecker
	requests RequestChecker
	logger   *zerolog.Logger
}

func NewService(repo Repository, users UserChecker, requests RequestChecker, logger *zerolog.Logger) Service {
	return &service{
		repo:     repo,
		users:    users,
		requests: requests,
		logger:   logger,
	}
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateRequest) (*Item, error) {
	if err := s.ensureUser(ctx, ownerID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	if req.RequestID != nil {
		ok, err := s.requests.Exists(ctx, *req.RequestID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrRequestNotFound
		}
	}

	it := &Item{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Available:   req.Available,
		RequestID:   req.RequestID,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}

	s.logger.Info().Str("item_id", it.ID).Str("owner_id", ownerID).Msg("item created")
	return it, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial update. Callers other than the owner get ErrNotFound.
func (s *service) Update(ctx context.Context, id, ownerID string, req UpdateRequest) (*Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != ownerID {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		it.Name = name
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, ErrDescriptionRequired
		}
		it.Description = description
	}
	if req.Available != nil {
		it.Available = *req.Available
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID string, from, size int) ([]*Item, pagination.Page, int, error) {
	page, err := pagination.FromOffset(from, size)
	if err != nil {
		return nil, pagination.Page{}, 0, err
	}
	if err := s.ensureUser(ctx, ownerID); err != nil {
		return nil, pagination.Page{}, 0, err
	}

	items, total, err := s.repo.ListByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, pagination.Page{}, 0, err
	}
	return items, page, total, nil
}

// Search returns available items whose name or description contains text.
// Blank text matches nothing.
func (s *service) Search(ctx context.Context, text string, from, size int) ([]*Item, pagination.Page, int, error) {
	page, err := pagination.FromOffset(from, size)
	if err != nil {
		return nil, pagination.Page{}, 0, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return []*Item{}, page, 0, nil
	}

	items, total, err := s.repo.Search(ctx, text, page)
	if err != nil {
		return nil, pagination.Page{}, 0, err
	}
	return items, page, total, nil
}

func (s *service) ListByRequests(ctx context.Context, requestIDs []string) ([]*Item, error) {
	return s.repo.ListByRequests(ctx, requestIDs)
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
