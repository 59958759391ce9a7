package models

import "time"

const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// Appointment is created before payment confirmation and promoted to paid
// only by the webhook processor.
type Appointment struct {
	Id            int
	AccountId     int
	PatientName   string
	PatientEmail  string
	PatientPhone  string
	ScheduledAt   time.Time
	Status        string
	PaymentStatus string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
