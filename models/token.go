package models

import (
	"database/sql"
	"time"
)

const (
	TokenKindOnboarding = "onboarding"
	TokenKindReschedule = "reschedule"
)

const (
	OnboardingTokenTTL = 24 * time.Hour
	RescheduleTokenTTL = 30 * 24 * time.Hour
)

// AccessToken is a single-use, time-bounded token. Onboarding tokens are
// consumed by flipping Used; reschedule tokens are consumed by row deletion.
type AccessToken struct {
	Id            int
	AccountId     int
	AppointmentId sql.NullInt64
	Kind          string
	Token         string
	ExpiresAt     time.Time
	Used          bool
	CreatedAt     time.Time
}
