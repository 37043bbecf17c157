package comment

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/share-it-backend/internal/item"
	"github.com/nekogravitycat/share-it-backend/internal/user"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) Create(ctx context.Context, c *Comment) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil {
		c.ID = "comment-1"
	}
	return args.Error(0)
}

func (m *mockRepo) ListByItem(ctx context.Context, itemID string) ([]*Comment, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).([]*Comment), args.Error(1)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) GetByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type mockItems struct{ mock.Mock }

func (m *mockItems) GetByID(ctx context.Context, id string) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

type mockBookings struct{ mock.Mock }

func (m *mockBookings) HasCompletedBooking(ctx context.Context, bookerID, itemID string) (bool, error) {
	args := m.Called(ctx, bookerID, itemID)
	return args.Bool(0), args.Error(1)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	setup := func() (Service, *mockRepo, *mockBookings) {
		repo, users, items, bookings := new(mockRepo), new(mockUsers), new(mockItems), new(mockBookings)
		users.On("GetByID", ctx, "author").Return(&user.User{ID: "author", Name: "Ann"}, nil)
		users.On("GetByID", ctx, "ghost").Return(nil, user.ErrNotFound)
		items.On("GetByID", ctx, "drill").Return(&item.Item{ID: "drill"}, nil)
		items.On("GetByID", ctx, "nope").Return(nil, item.ErrNotFound)
		logger := zerolog.New(io.Discard)
		return NewService(repo, users, items, bookings, &logger), repo, bookings
	}

	t.Run("after a finished booking", func(t *testing.T) {
		svc, repo, bookings := setup()
		bookings.On("HasCompletedBooking", ctx, "author", "drill").Return(true, nil)
		repo.On("Create", ctx, mock.Anything).Return(nil)

		c, err := svc.Create(ctx, "drill", "author", "  worked great ")
		require.NoError(t, err)
		assert.Equal(t, "comment-1", c.ID)
		assert.Equal(t, "worked great", c.Text)
		assert.Equal(t, "Ann", c.AuthorName)
	})

	t.Run("without a finished booking", func(t *testing.T) {
		svc, repo, bookings := setup()
		bookings.On("HasCompletedBooking", ctx, "author", "drill").Return(false, nil)

		_, err := svc.Create(ctx, "drill", "author", "nice")
		assert.ErrorIs(t, err, ErrNoCompletedBooking)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing author, item or text", func(t *testing.T) {
		svc, _, _ := setup()

		_, err := svc.Create(ctx, "drill", "ghost", "nice")
		assert.ErrorIs(t, err, ErrAuthorNotFound)
		_, err = svc.Create(ctx, "nope", "author", "nice")
		assert.ErrorIs(t, err, item.ErrNotFound)
		_, err = svc.Create(ctx, "drill", "author", "   ")
		assert.ErrorIs(t, err, ErrTextRequired)
	})

	t.Run("booking lookup failure propagates", func(t *testing.T) {
		svc, _, bookings := setup()
		boom := errors.New("db down")
		bookings.On("HasCompletedBooking", ctx, "author", "drill").Return(false, boom)

		_, err := svc.Create(ctx, "drill", "author", "nice")
		assert.ErrorIs(t, err, boom)
	})
}

func TestBuildListByItemQuery(t *testing.T) {
	sql, args, err := buildListByItemQuery("drill").ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT c.id, c.item_id, c.author_id, u.name, c.text, c.created_at FROM public.comments c "+
			"JOIN public.users u ON c.author_id = u.id WHERE c.item_id = $1 ORDER BY c.created_at DESC",
		sql)
	assert.Equal(t, []interface{}{"drill"}, args)
}
