package domain

import "time"

// Contact triage statuses.
const (
	ContactNew       = "new"
	ContactContacted = "contacted"
	ContactConverted = "converted"
	ContactClosed    = "closed"
)

type ContactSubmission struct {
	ContactID string    `json:"id" dynamodbav:"contact_id"`
	Name      string    `json:"name" dynamodbav:"name"`
	Email     string    `json:"email" dynamodbav:"email"`
	Phone     string    `json:"phone,omitempty" dynamodbav:"phone"`
	Company   string    `json:"company,omitempty" dynamodbav:"company"`
	Message   string    `json:"message" dynamodbav:"message"`
	Type      string    `json:"type" dynamodbav:"type"` // consultation | project
	Status    string    `json:"status" dynamodbav:"status"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

type CreateContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=consultation project"`
}
