package models

import (
	"database/sql"
	"time"
)

// Onboarding lifecycle. Status only moves forward; the billing hold
// (AccountStatus) toggles independently of it.
const (
	StatusProspect        = "prospect"
	StatusPaymentReceived = "payment_received"
	StatusOnboarded       = "onboarded"
)

const (
	AccountActive = "active"
	AccountPaused = "paused"
)

// Account represents a dental practice
type Account struct {
	Id                      int
	StripeCustomerId        sql.NullString
	Email                   sql.NullString
	ContactName             sql.NullString
	PracticeName            sql.NullString
	Phone                   sql.NullString
	Slug                    sql.NullString
	Status                  string
	AccountStatus           string
	TrialBudgetInitial      int64
	TrialBudgetSpent        int64
	TrialBudgetFromPatients int64
	CreatedAt               time.Time
	UpdatedAt               time.Time
	OnboardingCompletedAt   sql.NullTime
}

// OnboardingProfile is the set of fields a practice submits to complete
// onboarding.
type OnboardingProfile struct {
	ContactName        string            `json:"contactName"`
	PracticeName       string            `json:"practiceName"`
	Phone              string            `json:"phone"`
	Services           []string          `json:"services"`
	WeeklyAvailability map[string]string `json:"weeklyAvailability"`
	WeeklyCapacity     int               `json:"weeklyCapacity"`
}
