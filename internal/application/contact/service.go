package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/zenbourg/agency-api/internal/domain"
	"github.com/zenbourg/agency-api/internal/infrastructure/smtp"
	"github.com/zenbourg/agency-api/internal/pkg/id"
)

type Service interface {
	Submit(ctx context.Context, req domain.CreateContactRequest) (*domain.ContactSubmission, error)
	List(ctx context.Context) ([]domain.ContactSubmission, error)
	UpdateStatus(ctx context.Context, contactID, status string) (*domain.ContactSubmission, error)
}

type contactStore interface {
	Put(ctx context.Context, c *domain.ContactSubmission) error
	Get(ctx context.Context, contactID string) (*domain.ContactSubmission, error)
	Scan(ctx context.Context) ([]domain.ContactSubmission, error)
	Update(ctx context.Context, contactID string, updates map[string]interface{}) error
}

type service struct {
	repo       contactStore
	mailer     smtp.Mailer
	adminEmail string
}

type ServiceDeps struct {
	Repo       contactStore
	Mailer     smtp.Mailer
	AdminEmail string
}

func NewService(deps ServiceDeps) Service {
	return &service{repo: deps.Repo, mailer: deps.Mailer, adminEmail: deps.AdminEmail}
}

func (s *service) Submit(ctx context.Context, req domain.CreateContactRequest) (*domain.ContactSubmission, error) {
	now := time.Now().UTC()
	c := &domain.ContactSubmission{
		ContactID: id.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Message:   req.Message,
		Type:      req.Type,
		Status:    domain.ContactNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, err
	}

	// Notifications are fail-open: the submission is stored either way.
	if s.adminEmail != "" {
		body := fmt.Sprintf("New %s inquiry from %s (%s)\r\nCompany: %s\r\nPhone: %s\r\n\r\n%s\r\n",
			c.Type, c.Name, c.Email, c.Company, c.Phone, c.Message)
		if err := s.mailer.SendEmail(s.adminEmail, "New contact inquiry: "+c.Type, body); err != nil {
			slog.Warn("admin contact notification failed", "contact_id", c.ContactID, "err", err)
		}
	}
	ack := fmt.Sprintf("Hello %s,\r\n\r\nThanks for reaching out. Our team will get back to you within one business day.\r\n", c.Name)
	if err := s.mailer.SendEmail(c.Email, "We received your inquiry", ack); err != nil {
		slog.Warn("contact acknowledgement email failed", "contact_id", c.ContactID, "err", err)
	}

	return c, nil
}

func (s *service) List(ctx context.Context) ([]domain.ContactSubmission, error) {
	return s.repo.Scan(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, contactID, status string) (*domain.ContactSubmission, error) {
	if _, err := s.repo.Get(ctx, contactID); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, contactID, map[string]interface{}{"status": status}); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, contactID)
}
