package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/share-it-backend/internal/auth"
	"github.com/nekogravitycat/share-it-backend/internal/pkg/pagination"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}
func (m *mockRepo) GetByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}
func (m *mockRepo) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *mockRepo) Create(ctx context.Context, u *User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *mockRepo) Update(ctx context.Context, u *User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *mockRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockRepo) List(ctx context.Context, page pagination.Page) ([]*User, int, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]*User), args.Int(1), args.Error(2)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewBcryptPasswordHasherWithCost(4)

	t.Run("normalizes and hashes", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewService(repo, hasher)
		repo.On("Create", ctx, mock.MatchedBy(func(u *User) bool {
			return u.Email == "ann@example.com" && u.Name == "Ann" && u.PasswordHash != "password123"
		})).Return(nil).Once()

		u, err := svc.Register(ctx, "  Ann@Example.COM ", "password123", " Ann ")
		require.NoError(t, err)
		assert.NoError(t, hasher.Compare(u.PasswordHash, "password123"))
		repo.AssertExpectations(t)
	})

	t.Run("validation", func(t *testing.T) {
		svc := NewService(new(mockRepo), hasher)

		_, err := svc.Register(ctx, "", "password123", "Ann")
		assert.ErrorIs(t, err, ErrEmailRequired)
		_, err = svc.Register(ctx, "not-an-email", "password123", "Ann")
		assert.ErrorIs(t, err, ErrInvalidEmail)
		_, err = svc.Register(ctx, "ann@example.com", "short", "Ann")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
		_, err = svc.Register(ctx, "ann@example.com", "password123", "  ")
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(mockRepo)
		svc := NewService(repo, hasher)
		repo.On("Create", ctx, mock.Anything).Return(ErrEmailAlreadyUsed).Once()

		_, err := svc.Register(ctx, "ann@example.com", "password123", "Ann")
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewBcryptPasswordHasherWithCost(4)
	hash, err := hasher.Hash("password123")
	require.NoError(t, err)
	stored := &User{ID: "u1", Email: "ann@example.com", PasswordHash: hash}

	repo := new(mockRepo)
	svc := NewService(repo, hasher)
	repo.On("GetByEmail", ctx, "ann@example.com").Return(stored, nil)
	repo.On("GetByEmail", ctx, "bob@example.com").Return(nil, ErrNotFound)
	repo.On("GetByEmail", ctx, "eve@example.com").Return(nil, errors.New("db down"))

	u, err := svc.Login(ctx, "ANN@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = svc.Login(ctx, "ann@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "bob@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "eve@example.com", "password123")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	svc := NewService(repo, auth.NewBcryptPasswordHasherWithCost(4))

	repo.On("GetByID", ctx, "u1").Return(&User{ID: "u1", Email: "ann@example.com", Name: "Ann"}, nil)
	repo.On("GetByID", ctx, "missing").Return(nil, ErrNotFound)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	name := "Annie"
	u, err := svc.Update(ctx, "u1", UpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Annie", u.Name)
	assert.Equal(t, "ann@example.com", u.Email)

	blank := " "
	_, err = svc.Update(ctx, "u1", UpdateRequest{Name: &blank})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Update(ctx, "missing", UpdateRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	svc := NewService(repo, auth.NewBcryptPasswordHasherWithCost(4))

	repo.On("Delete", ctx, "u1").Return(nil).Once()
	repo.On("Delete", ctx, "missing").Return(ErrNotFound)
	repo.On("Delete", ctx, "owner").Return(ErrUserInUse)

	require.NoError(t, svc.Delete(ctx, "u1"))
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "owner"), ErrUserInUse)
	repo.AssertExpectations(t)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	svc := NewService(repo, auth.NewBcryptPasswordHasherWithCost(4))

	repo.On("List", ctx, pagination.Page{Number: 0, Size: 2}).Return([]*User{{ID: "u1"}, {ID: "u2"}}, 3, nil)
	repo.On("List", ctx, pagination.Page{Number: 1, Size: 2}).Return([]*User{{ID: "u3"}}, 3, nil)

	users, page, total, err := svc.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, 0, page.Number)
	assert.Equal(t, 3, total)

	users, page, _, err = svc.List(ctx, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, "u3", users[0].ID)

	_, _, _, err = svc.List(ctx, 0, 0)
	assert.ErrorIs(t, err, pagination.ErrInvalidPage)
}
