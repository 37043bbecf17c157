package request

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nekogravitycat/share-it-backend/internal/item"
	"github.com/nekogravitycat/share-it-backend/internal/pkg/pagination"
	"github.com/nekogravitycat/share-it-backend/internal/user"
)

type UserLookup interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// ItemLister finds the items listed in answer to requests.
type ItemLister interface {
	ListByRequests(ctx context.Context, requestIDs []string) ([]*item.Item, error)
}

type Service interface {
	Create(ctx context.Context, requesterID, description string) (*Request, error)
	GetByID(ctx context.Context, userID, id string) (*Request, error)
	ListMine(ctx context.Context, requesterID string) ([]*Request, error)
	ListOthers(ctx context.Context, userID string, from, size int) ([]*Request, pagination.Page, int, error)
}

type service struct {
	repo   Repository
	users  UserLookup
	items  ItemLister
	logger *zerolog.Logger
}

func NewService(repo Repository, users UserLookup, items ItemLister, logger *zerolog.Logger) Service {
	return &service{
		repo:   repo,
		users:  users,
		items:  items,
		logger: logger,
	}
}

func (s *service) Create(ctx context.Context, requesterID, description string) (*Request, error) {
	requester, err := s.users.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	r := &Request{
		RequesterID:   requester.ID,
		RequesterName: requester.Name,
		Description:   description,
		Items:         []*item.Item{},
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info().Str("request_id", r.ID).Str("requester_id", requesterID).Msg("request created")
	return r, nil
}

// GetByID returns any member's request with the items answering it.
func (s *service) GetByID(ctx context.Context, userID, id string) (*Request, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.attachItems(ctx, []*Request{r}); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) ListMine(ctx context.Context, requesterID string) ([]*Request, error) {
	if err := s.ensureUser(ctx, requesterID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	if err := s.attachItems(ctx, requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// ListOthers pages through requests made by anyone but userID.
func (s *service) ListOthers(ctx context.Context, userID string, from, size int) ([]*Request, pagination.Page, int, error) {
	page, err := pagination.FromOffset(from, size)
	if err != nil {
		return nil, pagination.Page{}, 0, err
	}
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, pagination.Page{}, 0, err
	}

	requests, total, err := s.repo.ListOthers(ctx, userID, page)
	if err != nil {
		return nil, pagination.Page{}, 0, err
	}

	if err := s.attachItems(ctx, requests); err != nil {
		return nil, pagination.Page{}, 0, err
	}
	return requests, page, total, nil
}

// attachItems loads the answering items of all requests in one query.
func (s *service) attachItems(ctx context.Context, requests []*Request) error {
	if len(requests) == 0 {
		return nil
	}

	ids := make([]string, len(requests))
	for i, r := range requests {
		ids[i] = r.ID
	}

	items, err := s.items.ListByRequests(ctx, ids)
	if err != nil {
		return err
	}

	byRequest := make(map[string][]*item.Item, len(requests))
	for _, it := range items {
		if it.RequestID != nil {
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
		}
	}
	for _, r := range requests {
		r.Items = byRequest[r.ID]
		if r.Items == nil {
			r.Items = []*item.Item{}
		}
	}
	return nil
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
