package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/paivaedu632/dental-sub001/models"
)

// Notifier delivers a transactional message. Callers log failures and never
// roll back the state mutation that preceded the send.
type Notifier interface {
	Send(ctx context.Context, n models.Notification) error
}

type MailgunNotifier struct {
	mg     mailgun.Mailgun
	sender string
	logger *logrus.Entry
}

func NewMailgunNotifier(domain string, apiKey string, sender string) *MailgunNotifier {
	return &MailgunNotifier{
		mg:     mailgun.NewMailgun(domain, apiKey),
		sender: sender,
		logger: logrus.WithField("component", "notify"),
	}
}

func (m *MailgunNotifier) Send(ctx context.Context, n models.Notification) error {
	if n.To == "" {
		return errors.New("notification has no recipient")
	}

	body := renderBody(n)
	msg := m.mg.NewMessage(m.sender, n.Subject, body, n.To)

	sendCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, _, err := m.mg.Send(sendCtx, msg)
	if err != nil {
		return errors.Wrapf(err, "sending %s email to %s", n.Kind, n.To)
	}
	m.logger.Infof("sent %s email to %s", n.Kind, n.To)
	return nil
}

func renderBody(n models.Notification) string {
	switch n.Kind {
	case models.NotifyWelcome:
		return fmt.Sprintf("Welcome! Finish setting up your practice here: %s\nThe link expires in 24 hours.", n.Args["onboarding_url"])
	case models.NotifyBookingConfirmed:
		return fmt.Sprintf("Your appointment on %s is confirmed.\nNeed to change it? Use this link: %s", n.Args["scheduled_at"], n.Args["reschedule_url"])
	case models.NotifyPaymentFailed:
		return "We could not collect your latest invoice. Your campaigns are paused until the payment method is updated."
	case models.NotifyOnboardingReminder:
		return fmt.Sprintf("Your account is ready but onboarding is not finished yet. Continue here: %s", n.Args["onboarding_url"])
	}
	return n.Subject
}
