package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a confirmed account. Email is the primary lookup key; UserID is a
// server-generated ULID carried in session credentials.
type User struct {
	UserID        string     `json:"id" dynamodbav:"user_id"`
	Email         string     `json:"email" dynamodbav:"email"`
	FirstName     string     `json:"first_name" dynamodbav:"first_name"`
	LastName      string     `json:"last_name" dynamodbav:"last_name"`
	Company       string     `json:"company,omitempty" dynamodbav:"company"`
	Phone         string     `json:"phone,omitempty" dynamodbav:"phone"`
	Role          string     `json:"role" dynamodbav:"role"`
	EmailVerified bool       `json:"email_verified" dynamodbav:"email_verified"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty" dynamodbav:"last_login_at"`
	CreatedAt     time.Time  `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" dynamodbav:"updated_at"`
}

// PendingUser holds a registration between signup submission and code
// verification. Keyed by email. ExpiresAt is a Unix timestamp used as
// DynamoDB TTL so abandoned registrations are swept by the store.
type PendingUser struct {
	Email     string `json:"email" dynamodbav:"email"`
	FirstName string `json:"first_name" dynamodbav:"first_name"`
	LastName  string `json:"last_name" dynamodbav:"last_name"`
	Company   string `json:"company,omitempty" dynamodbav:"company"`
	Phone     string `json:"phone,omitempty" dynamodbav:"phone"`
	ExpiresAt int64  `json:"-" dynamodbav:"expires_at"`
}

type SignUpRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
}

type SendCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Type  string `json:"type" validate:"required,oneof=signin signup"`
}

type VerifyCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}
