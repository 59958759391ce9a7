package models

import "time"

const InvoiceStatusPending = "PENDING"

// Invoice is a monthly usage statement row produced by the billing report job.
type Invoice struct {
	Id                 int       `json:"id"`
	AccountId          int       `json:"account_id"`
	Month              int       `json:"month"`
	Year               int       `json:"year"`
	AppointmentCount   int       `json:"appointment_count"`
	TotalFee           int64     `json:"total_fee"`
	Status             string    `json:"status"`
	ConfirmationNumber string    `json:"confirmation_number"`
	CreatedAt          time.Time `json:"created_at"`
}
