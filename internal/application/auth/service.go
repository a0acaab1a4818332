package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/zenbourg/agency-api/internal/domain"
	"github.com/zenbourg/agency-api/internal/infrastructure/smtp"
	"github.com/zenbourg/agency-api/internal/pkg/id"
)

const (
	codeTTL    = 10 * time.Minute
	pendingTTL = 24 * time.Hour
)

// Result is a successful verification outcome: a signed session credential
// and the confirmed user.
type Result struct {
	Token string
	User  *domain.User
}

type Service interface {
	// RequestSignUp stores a pending registration and issues a signup code.
	RequestSignUp(ctx context.Context, req domain.SignUpRequest) error
	// RequestSignInCode issues a signin code for an existing account.
	RequestSignInCode(ctx context.Context, email string) error
	// ResendSignUpCode re-issues a signup code for an in-flight registration.
	ResendSignUpCode(ctx context.Context, email string) error
	// VerifySignUp validates a signup code, promotes the pending
	// registration to a confirmed user, and mints a session credential.
	VerifySignUp(ctx context.Context, email, code string) (*Result, error)
	// VerifySignIn validates a signin code and mints a session credential
	// for the existing user.
	VerifySignIn(ctx context.Context, email, code string) (*Result, error)
}

type verificationStore interface {
	Put(ctx context.Context, v *domain.VerificationCode) error
	Get(ctx context.Context, email string) (*domain.VerificationCode, error)
	Delete(ctx context.Context, email string) error
	SetDeliveryStatus(ctx context.Context, email, status string) error
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, email string, updates map[string]interface{}) error
}

type pendingStore interface {
	Put(ctx context.Context, p *domain.PendingUser) error
	Get(ctx context.Context, email string) (*domain.PendingUser, error)
	Delete(ctx context.Context, email string) error
}

type credentialSigner interface {
	Sign(userID, email, role string) (string, error)
}

type service struct {
	verificationRepo verificationStore
	userRepo         userStore
	pendingRepo      pendingStore
	mailer           smtp.Mailer
	signer           credentialSigner
}

type ServiceDeps struct {
	VerificationRepo verificationStore
	UserRepo         userStore
	PendingRepo      pendingStore
	Mailer           smtp.Mailer
	Signer           credentialSigner
}

func NewService(deps ServiceDeps) Service {
	return &service{
		verificationRepo: deps.VerificationRepo,
		userRepo:         deps.UserRepo,
		pendingRepo:      deps.PendingRepo,
		mailer:           deps.Mailer,
		signer:           deps.Signer,
	}
}

func (s *service) RequestSignUp(ctx context.Context, req domain.SignUpRequest) error {
	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return fmt.Errorf("an account with this email already exists: %w", domain.ErrConflict)
	}

	p := &domain.PendingUser{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Phone:     req.Phone,
		ExpiresAt: time.Now().Add(pendingTTL).Unix(),
	}
	if err := s.pendingRepo.Put(ctx, p); err != nil {
		return err
	}

	return s.issueCode(ctx, req.Email, domain.PurposeSignUp, req.FirstName)
}

func (s *service) RequestSignInCode(ctx context.Context, email string) error {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("no account found with this email address: %w", domain.ErrNotFound)
	}
	return s.issueCode(ctx, email, domain.PurposeSignIn, u.FirstName)
}

func (s *service) ResendSignUpCode(ctx context.Context, email string) error {
	p, err := s.pendingRepo.Get(ctx, email)
	if err != nil {
		return fmt.Errorf("no pending registration found: %w", domain.ErrNotFound)
	}
	return s.issueCode(ctx, email, domain.PurposeSignUp, p.FirstName)
}

// issueCode stores a fresh code (superseding any prior code for the email)
// and attempts delivery. Delivery is fail-open: once the code is stored the
// request succeeds, and the mailer outcome is recorded on the record so
// operators can alert on failure rates.
func (s *service) issueCode(ctx context.Context, email, purpose, firstName string) error {
	code, err := generateCode()
	if err != nil {
		return err
	}

	v := &domain.VerificationCode{
		Email:          email,
		Code:           code,
		Purpose:        purpose,
		ExpiresAt:      time.Now().Add(codeTTL).Unix(),
		DeliveryStatus: domain.DeliveryPending,
	}
	if err := s.verificationRepo.Put(ctx, v); err != nil {
		return err
	}

	status := domain.DeliverySent
	if err := s.mailer.SendEmail(email, codeSubject(purpose), codeBody(firstName, code, purpose)); err != nil {
		status = domain.DeliveryFailed
		slog.Warn("verification email delivery failed", "email", email, "purpose", purpose, "err", err)
	}
	if err := s.verificationRepo.SetDeliveryStatus(ctx, email, status); err != nil {
		slog.Warn("could not record delivery status", "email", email, "err", err)
	}
	return nil
}

func (s *service) VerifySignUp(ctx context.Context, email, code string) (*Result, error) {
	if err := s.validateCode(ctx, email, code, domain.PurposeSignUp); err != nil {
		return nil, err
	}

	p, err := s.pendingRepo.Get(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("no pending registration found: %w", domain.ErrNotFound)
	}

	now := time.Now().UTC()
	u := &domain.User{
		UserID:        id.New(),
		Email:         p.Email,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Company:       p.Company,
		Phone:         p.Phone,
		Role:          domain.RoleUser,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	if err := s.pendingRepo.Delete(ctx, email); err != nil {
		slog.Warn("could not delete pending registration", "email", email, "err", err)
	}

	if err := s.mailer.SendEmail(u.Email, "Welcome to Zenbourg - Your Account Is Ready",
		fmt.Sprintf("Hello %s,\r\n\r\nYour email is verified and your account is active. Sign in any time with a one-time code.\r\n", u.FirstName)); err != nil {
		slog.Warn("welcome email delivery failed", "email", u.Email, "err", err)
	}

	token, err := s.signer.Sign(u.UserID, u.Email, u.Role)
	if err != nil {
		return nil, err
	}
	return &Result{Token: token, User: u}, nil
}

func (s *service) VerifySignIn(ctx context.Context, email, code string) (*Result, error) {
	if err := s.validateCode(ctx, email, code, domain.PurposeSignIn); err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", domain.ErrNotFound)
	}

	if err := s.userRepo.Update(ctx, email, map[string]interface{}{
		"last_login_at": time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		slog.Warn("could not record last login", "email", email, "err", err)
	}

	token, err := s.signer.Sign(u.UserID, u.Email, u.Role)
	if err != nil {
		return nil, err
	}
	return &Result{Token: token, User: u}, nil
}

// validateCode enforces the single-use contract: a code validates at most
// once, an expired record is purged when read, and a code issued for one
// purpose never completes the other flow.
func (s *service) validateCode(ctx context.Context, email, code, purpose string) error {
	v, err := s.verificationRepo.Get(ctx, email)
	if err != nil {
		return fmt.Errorf("no verification code found: %w", domain.ErrNotFound)
	}
	if v.ExpiresAt < time.Now().Unix() {
		if err := s.verificationRepo.Delete(ctx, email); err != nil {
			slog.Warn("could not delete expired verification code", "email", email, "err", err)
		}
		return fmt.Errorf("verification code has expired: %w", domain.ErrExpired)
	}
	if subtle.ConstantTimeCompare([]byte(v.Code), []byte(code)) != 1 {
		return fmt.Errorf("invalid verification code: %w", domain.ErrMismatch)
	}
	if v.Purpose != purpose {
		return fmt.Errorf("invalid verification type: %w", domain.ErrMismatch)
	}
	if err := s.verificationRepo.Delete(ctx, email); err != nil {
		slog.Warn("could not delete used verification code", "email", email, "err", err)
	}
	return nil
}

// generateCode returns a uniformly random 6-digit code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}

func codeSubject(purpose string) string {
	if purpose == domain.PurposeSignIn {
		return "Your Zenbourg Sign In Code"
	}
	return "Welcome to Zenbourg - Verify Your Email"
}

func codeBody(firstName, code, purpose string) string {
	greeting := "Hello"
	if firstName != "" {
		greeting = "Hello " + firstName
	}
	action := "complete your registration"
	if purpose == domain.PurposeSignIn {
		action = "sign in to your account"
	}
	return fmt.Sprintf("%s,\r\n\r\nUse this code to %s: %s\r\n\r\nThe code expires in 10 minutes. If you didn't request it, ignore this email.\r\n", greeting, action, code)
}
