package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zenbourg/agency-api/internal/domain"
)

type mockAppointmentStore struct{ mock.Mock }

func (m *mockAppointmentStore) Put(ctx context.Context, a *domain.Appointment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockAppointmentStore) Get(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *mockAppointmentStore) ListByDate(ctx context.Context, date string) ([]domain.Appointment, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Appointment), args.Error(1)
}

func (m *mockAppointmentStore) Update(ctx context.Context, appointmentID string, updates map[string]interface{}) error {
	return m.Called(ctx, appointmentID, updates).Error(0)
}

func (m *mockAppointmentStore) Delete(ctx context.Context, appointmentID string) error {
	return m.Called(ctx, appointmentID).Error(0)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendEmail(to, subject, body string) error {
	return m.Called(to, subject, body).Error(0)
}

type mockSMSSender struct{ mock.Mock }

func (m *mockSMSSender) SendSMS(ctx context.Context, to, message string) error {
	return m.Called(ctx, to, message).Error(0)
}

func newService(repo *mockAppointmentStore, mailer *mockMailer, sms *mockSMSSender) Service {
	deps := ServiceDeps{Repo: repo, Mailer: mailer, AdminEmail: "admin@zenbourg.com"}
	if sms != nil {
		deps.SMSSender = sms
	}
	return NewService(deps)
}

func bookingRequest() domain.CreateAppointmentRequest {
	return domain.CreateAppointmentRequest{
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		Service:       "Website Development",
		Date:          "2026-09-15",
		Time:          "10:00",
		MeetingType:   "video-call",
		Type:          "consultation",
	}
}

func TestAvailableSlots_EmptyDayIsFullGrid(t *testing.T) {
	repo := &mockAppointmentStore{}
	repo.On("ListByDate", mock.Anything, "2026-09-15").Return([]domain.Appointment{}, nil)

	svc := newService(repo, &mockMailer{}, nil)
	slots, err := svc.AvailableSlots(context.Background(), "2026-09-15")

	require.NoError(t, err)
	assert.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "17:30", slots[15])
	assert.NotContains(t, slots, "13:00")
	assert.NotContains(t, slots, "13:30")
}

func TestAvailableSlots_BookedSlotsRemoved(t *testing.T) {
	repo := &mockAppointmentStore{}
	repo.On("ListByDate", mock.Anything, "2026-09-15").Return([]domain.Appointment{
		{Time: "10:00", Status: domain.AppointmentScheduled},
		{Time: "14:30", Status: domain.AppointmentConfirmed},
	}, nil)

	svc := newService(repo, &mockMailer{}, nil)
	slots, err := svc.AvailableSlots(context.Background(), "2026-09-15")

	require.NoError(t, err)
	assert.Len(t, slots, 14)
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "14:30")
}

func TestAvailableSlots_CancelledAndCompletedFreeTheSlot(t *testing.T) {
	repo := &mockAppointmentStore{}
	repo.On("ListByDate", mock.Anything, "2026-09-15").Return([]domain.Appointment{
		{Time: "10:00", Status: domain.AppointmentCancelled},
		{Time: "11:00", Status: domain.AppointmentCompleted},
	}, nil)

	svc := newService(repo, &mockMailer{}, nil)
	slots, err := svc.AvailableSlots(context.Background(), "2026-09-15")

	require.NoError(t, err)
	assert.Contains(t, slots, "10:00")
	assert.Contains(t, slots, "11:00")
}

func TestBook_HappyPath(t *testing.T) {
	repo := &mockAppointmentStore{}
	mailer := &mockMailer{}
	repo.On("ListByDate", mock.Anything, "2026-09-15").Return([]domain.Appointment{}, nil)
	repo.On("Put", mock.Anything, mock.MatchedBy(func(a *domain.Appointment) bool {
		return a.AppointmentID != "" &&
			a.Status == domain.AppointmentScheduled &&
			a.Time == "10:00" &&
			a.DurationMins == 30
	})).Return(nil)
	mailer.On("SendEmail", "asha@example.com", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendEmail", "admin@zenbourg.com", mock.Anything, mock.Anything).Return(nil)

	svc := newService(repo, mailer, nil)
	a, err := svc.Book(context.Background(), bookingRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentScheduled, a.Status)
	repo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestBook_OffGridSlotRejected(t *testing.T) {
	repo := &mockAppointmentStore{}
	req := bookingRequest()
	req.Time = "13:00"

	svc := newService(repo, &mockMailer{}, nil)
	_, err := svc.Book(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrBadRequest)
	repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestBook_TakenSlotConflicts(t *testing.T) {
	repo := &mockAppointmentStore{}
	repo.On("ListByDate", mock.Anything, "2026-09-15").Return([]domain.Appointment{
		{Time: "10:00", Status: domain.AppointmentScheduled},
	}, nil)

	svc := newService(repo, &mockMailer{}, nil)
	_, err := svc.Book(context.Background(), bookingRequest())

	assert.ErrorIs(t, err, domain.ErrConflict)
	repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestBook_NotificationFailureDoesNotFailBooking(t *testing.T) {
	repo := &mockAppointmentStore{}
	mailer := &mockMailer{}
	repo.On("ListByDate", mock.Anything, "2026-09-15").Return([]domain.Appointment{}, nil)
	repo.On("Put", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	svc := newService(repo, mailer, nil)
	a, err := svc.Book(context.Background(), bookingRequest())

	require.NoError(t, err)
	assert.NotNil(t, a)
}

func TestBook_SMSSentWhenPhonePresent(t *testing.T) {
	repo := &mockAppointmentStore{}
	mailer := &mockMailer{}
	sms := &mockSMSSender{}
	req := bookingRequest()
	req.CustomerPhone = "+91 9876543210"

	repo.On("ListByDate", mock.Anything, "2026-09-15").Return([]domain.Appointment{}, nil)
	repo.On("Put", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	sms.On("SendSMS", mock.Anything, "+91 9876543210", mock.Anything).Return(nil)

	svc := newService(repo, mailer, sms)
	_, err := svc.Book(context.Background(), req)

	require.NoError(t, err)
	sms.AssertExpectations(t)
}

func TestUpdate_StatusChangeNotifiesCustomer(t *testing.T) {
	repo := &mockAppointmentStore{}
	mailer := &mockMailer{}
	confirmed := domain.AppointmentConfirmed
	stored := &domain.Appointment{
		AppointmentID: "apt-1",
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		Date:          "2026-09-15",
		Time:          "10:00",
		Status:        domain.AppointmentConfirmed,
	}

	repo.On("Update", mock.Anything, "apt-1", map[string]interface{}{"status": "confirmed"}).Return(nil)
	repo.On("Get", mock.Anything, "apt-1").Return(stored, nil)
	mailer.On("SendEmail", "asha@example.com", "Appointment confirmed", mock.Anything).Return(nil)

	svc := newService(repo, mailer, nil)
	a, err := svc.Update(context.Background(), "apt-1", domain.UpdateAppointmentRequest{Status: &confirmed})

	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentConfirmed, a.Status)
	mailer.AssertExpectations(t)
}

func TestUpdate_OffGridTimeRejected(t *testing.T) {
	repo := &mockAppointmentStore{}
	badTime := "08:00"

	svc := newService(repo, &mockMailer{}, nil)
	_, err := svc.Update(context.Background(), "apt-1", domain.UpdateAppointmentRequest{Time: &badTime})

	assert.ErrorIs(t, err, domain.ErrBadRequest)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete_UnknownAppointment(t *testing.T) {
	repo := &mockAppointmentStore{}
	repo.On("Get", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	svc := newService(repo, &mockMailer{}, nil)
	err := svc.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, "missing")
}
