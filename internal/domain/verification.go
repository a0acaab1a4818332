package domain

// Code purposes. A code issued for one purpose must not validate the other.
const (
	PurposeSignIn = "signin"
	PurposeSignUp = "signup"
)

// Delivery outcomes recorded on a code record after the mailer attempt.
// The flow is fail-open: a failed delivery never fails the request, but
// operators can alert on the stored status.
const (
	DeliveryPending = "pending"
	DeliverySent    = "sent"
	DeliveryFailed  = "failed"
)

// VerificationCode is a single-use 6-digit code keyed by email.
// PK: email. ExpiresAt is a Unix timestamp doubling as DynamoDB TTL;
// expired records are also deleted lazily when read.
type VerificationCode struct {
	Email          string `json:"email" dynamodbav:"email"`
	Code           string `json:"-" dynamodbav:"code"`
	Purpose        string `json:"purpose" dynamodbav:"purpose"`
	ExpiresAt      int64  `json:"expires_at" dynamodbav:"expires_at"`
	DeliveryStatus string `json:"delivery_status" dynamodbav:"delivery_status"`
}
