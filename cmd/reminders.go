package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/paivaedu632/dental-sub001/internal/notify"
	"github.com/paivaedu632/dental-sub001/models"
	"github.com/paivaedu632/dental-sub001/repository"
)

// ReminderJob nudges practices that paid but never finished onboarding. An
// account is reminded at most once per reminderInterval; per-account failures
// are logged and counted, never propagated to the trigger.
type ReminderJob struct {
	accounts         repository.AccountRepository
	tokens           repository.TokenRepository
	notifier         notify.Notifier
	baseURL          string
	reminderInterval time.Duration
	logger           *logrus.Entry
}

func NewReminderJob(
	accounts repository.AccountRepository,
	tokens repository.TokenRepository,
	notifier notify.Notifier,
	baseURL string,
) *ReminderJob {
	return &ReminderJob{
		accounts:         accounts,
		tokens:           tokens,
		notifier:         notifier,
		baseURL:          baseURL,
		reminderInterval: 24 * time.Hour,
		logger:           logrus.WithField("component", "reminder_sweep"),
	}
}

// Run re-scans accounts stuck in payment_received and re-sends the
// onboarding link. The webhook may have lagged the browser redirect, or the
// practice may simply have closed the tab; either way the durable account row
// is the source of truth, not anything cached in-process.
func (j *ReminderJob) Run(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-j.reminderInterval)
	accounts, err := j.accounts.ListAwaitingOnboarding(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "listing accounts awaiting onboarding")
	}

	sent := 0
	failed := 0
	for _, acct := range accounts {
		if !acct.Email.Valid || acct.Email.String == "" {
			j.logger.Infof("account %d has no email yet, skipping reminder", acct.Id)
			continue
		}

		token, err := j.tokens.FindActiveByAccount(ctx, acct.Id, models.TokenKindOnboarding)
		if errors.Is(err, repository.ErrTokenInvalid) {
			// the original 24h token lapsed, issue a fresh one
			token, err = j.tokens.Issue(ctx, acct.Id, models.TokenKindOnboarding, models.OnboardingTokenTTL, nil)
		}
		if err != nil {
			j.logger.WithError(err).Errorf("could not get onboarding token for account %d", acct.Id)
			failed++
			continue
		}

		err = j.notifier.Send(ctx, models.Notification{
			Kind:    models.NotifyOnboardingReminder,
			To:      acct.Email.String,
			Subject: "Finish setting up your practice",
			Args: map[string]string{
				"onboarding_url": fmt.Sprintf("%s/onboarding/%s", j.baseURL, token.Token),
			},
		})
		if err != nil {
			j.logger.WithError(err).Errorf("could not send reminder to account %d", acct.Id)
			failed++
			continue
		}

		if err := j.accounts.MarkReminderSent(ctx, acct.Id, time.Now()); err != nil {
			j.logger.WithError(err).Errorf("could not mark reminder sent for account %d", acct.Id)
		}
		sent++
	}

	j.logger.Infof("reminder sweep finished: %d sent, %d failed", sent, failed)
	return sent, nil
}
