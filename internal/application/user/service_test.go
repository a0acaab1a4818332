package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zenbourg/agency-api/internal/domain"
)

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserStore) Update(ctx context.Context, email string, updates map[string]interface{}) error {
	return m.Called(ctx, email, updates).Error(0)
}

func (m *mockUserStore) ScanPage(ctx context.Context, limit int32, cursor string) ([]domain.User, string, error) {
	args := m.Called(ctx, limit, cursor)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.User), args.String(1), args.Error(2)
}

func TestList_DefaultsLimit(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("ScanPage", mock.Anything, int32(50), "").Return([]domain.User{{UserID: "u1"}}, "next", nil)

	svc := NewService(ServiceDeps{Repo: repo})
	page, err := svc.List(context.Background(), 0, "")

	require.NoError(t, err)
	assert.Len(t, page.Users, 1)
	assert.Equal(t, "next", page.NextCursor)
	repo.AssertExpectations(t)
}

func TestList_CapsOversizedLimit(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("ScanPage", mock.Anything, int32(50), "").Return([]domain.User{}, "", nil)

	svc := NewService(ServiceDeps{Repo: repo})
	_, err := svc.List(context.Background(), 5000, "")

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateRole_RejectsUnknownRole(t *testing.T) {
	repo := &mockUserStore{}

	svc := NewService(ServiceDeps{Repo: repo})
	_, err := svc.UpdateRole(context.Background(), "user@example.com", "superadmin")

	assert.ErrorIs(t, err, domain.ErrBadRequest)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateRole_HappyPath(t *testing.T) {
	repo := &mockUserStore{}
	stored := &domain.User{Email: "user@example.com", Role: domain.RoleUser}
	promoted := &domain.User{Email: "user@example.com", Role: domain.RoleAdmin}

	repo.On("GetByEmail", mock.Anything, "user@example.com").Return(stored, nil).Once()
	repo.On("Update", mock.Anything, "user@example.com", map[string]interface{}{"role": "admin"}).Return(nil)
	repo.On("GetByEmail", mock.Anything, "user@example.com").Return(promoted, nil)

	svc := NewService(ServiceDeps{Repo: repo})
	u, err := svc.UpdateRole(context.Background(), "user@example.com", domain.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)
}

func TestUpdateRole_UnknownUser(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

	svc := NewService(ServiceDeps{Repo: repo})
	_, err := svc.UpdateRole(context.Background(), "ghost@example.com", domain.RoleUser)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
