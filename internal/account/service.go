package account

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/paivaedu632/dental-sub001/models"
	"github.com/paivaedu632/dental-sub001/repository"
)

const (
	// TrialPriceCents is the fixed signup checkout amount.
	TrialPriceCents = 50000
	// PrepaymentCreditCents is credited to the practice's trial budget when a
	// patient booking payment succeeds.
	PrepaymentCreditCents = 7900
)

var ErrValidation = errors.New("invalid onboarding profile")

// Service drives the practice lifecycle:
// prospect -> payment_received -> onboarded, with an independent
// active/paused billing hold.
type Service struct {
	accounts repository.AccountRepository
	logger   *logrus.Entry
}

func NewService(accounts repository.AccountRepository) *Service {
	return &Service{
		accounts: accounts,
		logger:   logrus.WithField("component", "account"),
	}
}

// OnPaymentReceived resolves the account for a completed signup payment.
// Resolution order is customer id first, email second, create last, which
// makes replaying the same event land on the same row instead of creating a
// duplicate.
func (s *Service) OnPaymentReceived(ctx context.Context, customerId string, email string) (int, error) {
	if customerId != "" {
		acct, err := s.accounts.GetAccountByCustomerId(ctx, customerId)
		if err == nil {
			if err := s.accounts.SetPaymentReceived(ctx, acct.Id); err != nil {
				return 0, err
			}
			return acct.Id, nil
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return 0, err
		}
	}

	if email != "" {
		acct, err := s.accounts.GetAccountByEmail(ctx, email)
		if err == nil {
			if customerId != "" && !acct.StripeCustomerId.Valid {
				if err := s.accounts.BackfillCustomerId(ctx, acct.Id, customerId); err != nil {
					return 0, err
				}
			}
			if err := s.accounts.SetPaymentReceived(ctx, acct.Id); err != nil {
				return 0, err
			}
			return acct.Id, nil
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return 0, err
		}
	}

	id, err := s.accounts.CreateAccount(ctx, customerId, email)
	if err != nil {
		return 0, err
	}
	s.logger.Infof("created account %d for customer %s", id, customerId)
	return id, nil
}

// OnOnboardingSubmitted validates and persists the submitted profile and
// advances the lifecycle with an explicit status write. Downstream code reads
// the status column, never infers it from field presence.
func (s *Service) OnOnboardingSubmitted(ctx context.Context, accountId int, profile *models.OnboardingProfile) error {
	if err := validateProfile(profile); err != nil {
		return err
	}
	return s.accounts.CompleteOnboarding(ctx, accountId, profile, time.Now())
}

// OnInvoicePaymentFailed pauses billing without touching the onboarding
// status. Applying it twice is a no-op.
func (s *Service) OnInvoicePaymentFailed(ctx context.Context, customerId string) error {
	return s.accounts.PauseBilling(ctx, customerId)
}

func (s *Service) CreditPatientPrepayment(ctx context.Context, accountId int) error {
	return s.accounts.CreditPatientPrepayment(ctx, accountId, PrepaymentCreditCents)
}

func validateProfile(profile *models.OnboardingProfile) error {
	if profile == nil {
		return errors.Wrap(ErrValidation, "profile is required")
	}
	if profile.ContactName == "" {
		return errors.Wrap(ErrValidation, "contact name is required")
	}
	if profile.PracticeName == "" {
		return errors.Wrap(ErrValidation, "practice name is required")
	}
	if profile.Phone == "" {
		return errors.Wrap(ErrValidation, "phone is required")
	}
	if len(profile.Services) == 0 {
		return errors.Wrap(ErrValidation, "at least one service is required")
	}
	if len(profile.WeeklyAvailability) == 0 {
		return errors.Wrap(ErrValidation, "weekly availability is required")
	}
	if profile.WeeklyCapacity <= 0 {
		return errors.Wrap(ErrValidation, "weekly capacity must be positive")
	}
	return nil
}
