package order

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/zenbourg/agency-api/internal/domain"
	"github.com/zenbourg/agency-api/internal/infrastructure/smtp"
	"github.com/zenbourg/agency-api/internal/pkg/id"
)

const defaultCurrency = "INR"

type Service interface {
	// Create records an order in the created state. The request amount is in
	// whole currency units and is stored in the smallest unit.
	Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.PaymentOrder, error)
	// Process charges the order through the gateway and marks it completed
	// or failed.
	Process(ctx context.Context, orderID string, req domain.ProcessPaymentRequest) (*domain.PaymentOrder, error)
	Get(ctx context.Context, orderID string) (*domain.PaymentOrder, error)
	List(ctx context.Context) ([]domain.PaymentOrder, error)
}

type orderStore interface {
	Put(ctx context.Context, o *domain.PaymentOrder) error
	Get(ctx context.Context, orderID string) (*domain.PaymentOrder, error)
	Scan(ctx context.Context) ([]domain.PaymentOrder, error)
	Update(ctx context.Context, orderID string, updates map[string]interface{}) error
}

// Gateway charges an order and returns the gateway transaction id.
type Gateway interface {
	Charge(ctx context.Context, o *domain.PaymentOrder, paymentMethod string) (string, error)
}

type service struct {
	repo    orderStore
	gateway Gateway
	mailer  smtp.Mailer
}

type ServiceDeps struct {
	Repo    orderStore
	Gateway Gateway
	Mailer  smtp.Mailer
}

func NewService(deps ServiceDeps) Service {
	return &service{repo: deps.Repo, gateway: deps.Gateway, mailer: deps.Mailer}
}

func (s *service) Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.PaymentOrder, error) {
	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = defaultCurrency
	}
	now := time.Now().UTC()
	o := &domain.PaymentOrder{
		OrderID:       id.New(),
		Amount:        req.Amount * 100,
		Currency:      currency,
		Plan:          req.Plan,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Company:       req.Company,
		Status:        domain.OrderCreated,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Put(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) Process(ctx context.Context, orderID string, req domain.ProcessPaymentRequest) (*domain.PaymentOrder, error) {
	o, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status == domain.OrderCompleted {
		return nil, fmt.Errorf("order %s is already paid: %w", orderID, domain.ErrConflict)
	}

	txnID, chargeErr := s.gateway.Charge(ctx, o, req.PaymentMethod)

	status := domain.OrderCompleted
	updates := map[string]interface{}{
		"status":         status,
		"payment_method": req.PaymentMethod,
		"transaction_id": txnID,
	}
	if chargeErr != nil {
		status = domain.OrderFailed
		updates["status"] = status
		delete(updates, "transaction_id")
		slog.Warn("payment charge failed", "order_id", orderID, "method", req.PaymentMethod, "err", chargeErr)
	}
	if err := s.repo.Update(ctx, orderID, updates); err != nil {
		return nil, err
	}

	o, err = s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if status == domain.OrderCompleted {
		s.sendReceipt(o)
	}
	return o, nil
}

func (s *service) Get(ctx context.Context, orderID string) (*domain.PaymentOrder, error) {
	return s.repo.Get(ctx, orderID)
}

func (s *service) List(ctx context.Context) ([]domain.PaymentOrder, error) {
	return s.repo.Scan(ctx)
}

func (s *service) sendReceipt(o *domain.PaymentOrder) {
	body := fmt.Sprintf("Hello %s,\r\n\r\nWe received your payment of %s %.2f for the %s plan.\r\nTransaction: %s\r\n",
		o.CustomerName, o.Currency, float64(o.Amount)/100, o.Plan, o.TransactionID)
	if err := s.mailer.SendEmail(o.CustomerEmail, "Payment received - Zenbourg", body); err != nil {
		slog.Warn("payment receipt email failed", "order_id", o.OrderID, "err", err)
	}
}
