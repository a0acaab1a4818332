package domain

import "time"

// Appointment statuses.
const (
	AppointmentScheduled = "scheduled"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

type Appointment struct {
	AppointmentID string    `json:"id" dynamodbav:"appointment_id"`
	CustomerName  string    `json:"customer_name" dynamodbav:"customer_name"`
	CustomerEmail string    `json:"customer_email" dynamodbav:"customer_email"`
	CustomerPhone string    `json:"customer_phone,omitempty" dynamodbav:"customer_phone"`
	Service       string    `json:"service" dynamodbav:"service"`
	Date          string    `json:"date" dynamodbav:"date"` // YYYY-MM-DD
	Time          string    `json:"time" dynamodbav:"time"` // HH:MM, on the slot grid
	DurationMins  int       `json:"duration_minutes" dynamodbav:"duration_minutes"`
	MeetingType   string    `json:"meeting_type" dynamodbav:"meeting_type"` // video-call | phone-call | in-person
	Type          string    `json:"type" dynamodbav:"type"`                 // consultation | meeting | demo | support
	Location      string    `json:"location,omitempty" dynamodbav:"location"`
	Notes         string    `json:"notes,omitempty" dynamodbav:"notes"`
	Status        string    `json:"status" dynamodbav:"status"`
	CreatedAt     time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

type CreateAppointmentRequest struct {
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	CustomerPhone string `json:"customerPhone"`
	Service       string `json:"service" validate:"required"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string `json:"time" validate:"required"`
	DurationMins  int    `json:"duration"`
	MeetingType   string `json:"meetingType" validate:"required,oneof=video-call phone-call in-person"`
	Type          string `json:"type" validate:"required,oneof=consultation meeting demo support"`
	Location      string `json:"location"`
	Notes         string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=scheduled confirmed completed cancelled"`
	Date   *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time   *string `json:"time"`
	Notes  *string `json:"notes"`
}
