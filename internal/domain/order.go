package domain

import "time"

// Payment order statuses.
const (
	OrderCreated   = "created"
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderFailed    = "failed"
)

// PaymentOrder records a purchase of a service plan. Amount is stored in the
// smallest currency unit (paise for INR).
type PaymentOrder struct {
	OrderID       string    `json:"id" dynamodbav:"order_id"`
	Amount        int64     `json:"amount" dynamodbav:"amount"`
	Currency      string    `json:"currency" dynamodbav:"currency"`
	Plan          string    `json:"plan" dynamodbav:"plan"`
	CustomerName  string    `json:"customer_name" dynamodbav:"customer_name"`
	CustomerEmail string    `json:"customer_email" dynamodbav:"customer_email"`
	CustomerPhone string    `json:"customer_phone,omitempty" dynamodbav:"customer_phone"`
	Company       string    `json:"company,omitempty" dynamodbav:"company"`
	Status        string    `json:"status" dynamodbav:"status"`
	PaymentMethod string    `json:"payment_method,omitempty" dynamodbav:"payment_method"`
	TransactionID string    `json:"transaction_id,omitempty" dynamodbav:"transaction_id"`
	CreatedAt     time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

type CreateOrderRequest struct {
	// Amount in whole currency units; converted to the smallest unit on save.
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	Currency      string `json:"currency"`
	Plan          string `json:"plan" validate:"required"`
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	CustomerPhone string `json:"customerPhone"`
	Company       string `json:"company"`
}

type ProcessPaymentRequest struct {
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=card upi netbanking"`
}
