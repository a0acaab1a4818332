package appointment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/zenbourg/agency-api/internal/domain"
	"github.com/zenbourg/agency-api/internal/infrastructure/smtp"
	"github.com/zenbourg/agency-api/internal/infrastructure/sns"
	"github.com/zenbourg/agency-api/internal/pkg/id"
)

// slotGrid is the bookable half-hour grid. The 13:00/13:30 slots are the
// lunch gap and are never offered.
var slotGrid = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00", "12:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
}

const defaultDurationMins = 30

type Service interface {
	// AvailableSlots returns the grid minus the slots already booked on the
	// date, read from the appointment store.
	AvailableSlots(ctx context.Context, date string) ([]string, error)
	Book(ctx context.Context, req domain.CreateAppointmentRequest) (*domain.Appointment, error)
	ListByDate(ctx context.Context, date string) ([]domain.Appointment, error)
	Update(ctx context.Context, appointmentID string, req domain.UpdateAppointmentRequest) (*domain.Appointment, error)
	Delete(ctx context.Context, appointmentID string) error
}

type appointmentStore interface {
	Put(ctx context.Context, a *domain.Appointment) error
	Get(ctx context.Context, appointmentID string) (*domain.Appointment, error)
	ListByDate(ctx context.Context, date string) ([]domain.Appointment, error)
	Update(ctx context.Context, appointmentID string, updates map[string]interface{}) error
	Delete(ctx context.Context, appointmentID string) error
}

type service struct {
	repo       appointmentStore
	mailer     smtp.Mailer
	smsSender  sns.SMSSender
	adminEmail string
}

type ServiceDeps struct {
	Repo       appointmentStore
	Mailer     smtp.Mailer
	SMSSender  sns.SMSSender
	AdminEmail string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:       deps.Repo,
		mailer:     deps.Mailer,
		smsSender:  deps.SMSSender,
		adminEmail: deps.AdminEmail,
	}
}

func (s *service) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	appts, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	booked := make(map[string]bool, len(appts))
	for _, a := range appts {
		if a.Status == domain.AppointmentScheduled || a.Status == domain.AppointmentConfirmed {
			booked[a.Time] = true
		}
	}
	available := make([]string, 0, len(slotGrid))
	for _, slot := range slotGrid {
		if !booked[slot] {
			available = append(available, slot)
		}
	}
	return available, nil
}

func (s *service) Book(ctx context.Context, req domain.CreateAppointmentRequest) (*domain.Appointment, error) {
	if !onGrid(req.Time) {
		return nil, fmt.Errorf("time %s is not a bookable slot: %w", req.Time, domain.ErrBadRequest)
	}
	available, err := s.AvailableSlots(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	if !contains(available, req.Time) {
		return nil, fmt.Errorf("slot %s on %s is no longer available: %w", req.Time, req.Date, domain.ErrConflict)
	}

	duration := req.DurationMins
	if duration <= 0 {
		duration = defaultDurationMins
	}
	now := time.Now().UTC()
	a := &domain.Appointment{
		AppointmentID: id.New(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Service:       req.Service,
		Date:          req.Date,
		Time:          req.Time,
		DurationMins:  duration,
		MeetingType:   req.MeetingType,
		Type:          req.Type,
		Location:      req.Location,
		Notes:         req.Notes,
		Status:        domain.AppointmentScheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Put(ctx, a); err != nil {
		return nil, err
	}

	s.notifyBooked(ctx, a)
	return a, nil
}

func (s *service) ListByDate(ctx context.Context, date string) ([]domain.Appointment, error) {
	return s.repo.ListByDate(ctx, date)
}

func (s *service) Update(ctx context.Context, appointmentID string, req domain.UpdateAppointmentRequest) (*domain.Appointment, error) {
	updates := map[string]interface{}{}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Time != nil {
		if !onGrid(*req.Time) {
			return nil, fmt.Errorf("time %s is not a bookable slot: %w", *req.Time, domain.ErrBadRequest)
		}
		updates["time"] = *req.Time
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) == 0 {
		return s.repo.Get(ctx, appointmentID)
	}
	if err := s.repo.Update(ctx, appointmentID, updates); err != nil {
		return nil, err
	}
	a, err := s.repo.Get(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if req.Status != nil && (*req.Status == domain.AppointmentConfirmed || *req.Status == domain.AppointmentCancelled) {
		s.notifyStatus(a)
	}
	return a, nil
}

func (s *service) Delete(ctx context.Context, appointmentID string) error {
	if _, err := s.repo.Get(ctx, appointmentID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, appointmentID)
}

// notifyBooked sends the customer confirmation, an admin heads-up, and a
// best-effort SMS. All fail-open.
func (s *service) notifyBooked(ctx context.Context, a *domain.Appointment) {
	body := fmt.Sprintf("Hello %s,\r\n\r\nYour %s is booked for %s at %s (%s, %d minutes).\r\n",
		a.CustomerName, a.Type, a.Date, a.Time, a.MeetingType, a.DurationMins)
	if err := s.mailer.SendEmail(a.CustomerEmail, "Your Zenbourg Appointment Is Booked", body); err != nil {
		slog.Warn("appointment confirmation email failed", "email", a.CustomerEmail, "appointment_id", a.AppointmentID, "err", err)
	}
	if s.adminEmail != "" {
		admin := fmt.Sprintf("New %s booked by %s (%s) for %s at %s: %s\r\n",
			a.Type, a.CustomerName, a.CustomerEmail, a.Date, a.Time, a.Service)
		if err := s.mailer.SendEmail(s.adminEmail, "New appointment: "+a.Service, admin); err != nil {
			slog.Warn("admin appointment notification failed", "appointment_id", a.AppointmentID, "err", err)
		}
	}
	if s.smsSender != nil && a.CustomerPhone != "" {
		msg := fmt.Sprintf("Zenbourg: your %s on %s at %s is booked.", a.Type, a.Date, a.Time)
		if err := s.smsSender.SendSMS(ctx, a.CustomerPhone, msg); err != nil {
			slog.Warn("appointment SMS failed", "appointment_id", a.AppointmentID, "err", err)
		}
	}
}

func (s *service) notifyStatus(a *domain.Appointment) {
	body := fmt.Sprintf("Hello %s,\r\n\r\nYour appointment on %s at %s is now %s.\r\n",
		a.CustomerName, a.Date, a.Time, a.Status)
	if err := s.mailer.SendEmail(a.CustomerEmail, "Appointment "+a.Status, body); err != nil {
		slog.Warn("appointment status email failed", "email", a.CustomerEmail, "appointment_id", a.AppointmentID, "err", err)
	}
}

func onGrid(slot string) bool {
	return contains(slotGrid, slot)
}

func contains(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
