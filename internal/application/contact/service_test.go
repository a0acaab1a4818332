package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zenbourg/agency-api/internal/domain"
)

type mockContactStore struct{ mock.Mock }

func (m *mockContactStore) Put(ctx context.Context, c *domain.ContactSubmission) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockContactStore) Get(ctx context.Context, contactID string) (*domain.ContactSubmission, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactSubmission), args.Error(1)
}

func (m *mockContactStore) Scan(ctx context.Context) ([]domain.ContactSubmission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactSubmission), args.Error(1)
}

func (m *mockContactStore) Update(ctx context.Context, contactID string, updates map[string]interface{}) error {
	return m.Called(ctx, contactID, updates).Error(0)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendEmail(to, subject, body string) error {
	return m.Called(to, subject, body).Error(0)
}

func TestSubmit_StoresWithNewStatus(t *testing.T) {
	repo := &mockContactStore{}
	mailer := &mockMailer{}
	repo.On("Put", mock.Anything, mock.MatchedBy(func(c *domain.ContactSubmission) bool {
		return c.ContactID != "" && c.Status == domain.ContactNew && c.Email == "lead@example.com"
	})).Return(nil)
	mailer.On("SendEmail", "admin@zenbourg.com", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendEmail", "lead@example.com", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(ServiceDeps{Repo: repo, Mailer: mailer, AdminEmail: "admin@zenbourg.com"})
	c, err := svc.Submit(context.Background(), domain.CreateContactRequest{
		Name:    "Lead Person",
		Email:   "lead@example.com",
		Message: "We need a new site.",
		Type:    "project",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ContactNew, c.Status)
	repo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestSubmit_EmailFailureDoesNotFailSubmission(t *testing.T) {
	repo := &mockContactStore{}
	mailer := &mockMailer{}
	repo.On("Put", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	svc := NewService(ServiceDeps{Repo: repo, Mailer: mailer, AdminEmail: "admin@zenbourg.com"})
	c, err := svc.Submit(context.Background(), domain.CreateContactRequest{
		Name:    "Lead Person",
		Email:   "lead@example.com",
		Message: "Hello",
		Type:    "consultation",
	})

	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestSubmit_StoreFailurePropagates(t *testing.T) {
	repo := &mockContactStore{}
	mailer := &mockMailer{}
	repo.On("Put", mock.Anything, mock.Anything).Return(errors.New("dynamo down"))

	svc := NewService(ServiceDeps{Repo: repo, Mailer: mailer, AdminEmail: "admin@zenbourg.com"})
	_, err := svc.Submit(context.Background(), domain.CreateContactRequest{
		Name:    "Lead Person",
		Email:   "lead@example.com",
		Message: "Hello",
		Type:    "consultation",
	})

	require.Error(t, err)
	mailer.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_UnknownContact(t *testing.T) {
	repo := &mockContactStore{}
	repo.On("Get", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	svc := NewService(ServiceDeps{Repo: repo, Mailer: &mockMailer{}})
	_, err := svc.UpdateStatus(context.Background(), "missing", domain.ContactContacted)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_HappyPath(t *testing.T) {
	repo := &mockContactStore{}
	stored := &domain.ContactSubmission{ContactID: "c-1", Status: domain.ContactNew}
	updated := &domain.ContactSubmission{ContactID: "c-1", Status: domain.ContactConverted}

	repo.On("Get", mock.Anything, "c-1").Return(stored, nil).Once()
	repo.On("Update", mock.Anything, "c-1", map[string]interface{}{"status": "converted"}).Return(nil)
	repo.On("Get", mock.Anything, "c-1").Return(updated, nil)

	svc := NewService(ServiceDeps{Repo: repo, Mailer: &mockMailer{}})
	c, err := svc.UpdateStatus(context.Background(), "c-1", domain.ContactConverted)

	require.NoError(t, err)
	assert.Equal(t, domain.ContactConverted, c.Status)
}
