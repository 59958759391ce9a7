package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/webhook"

	"github.com/paivaedu632/dental-sub001/internal/account"
	"github.com/paivaedu632/dental-sub001/internal/notify"
	"github.com/paivaedu632/dental-sub001/models"
	"github.com/paivaedu632/dental-sub001/repository"
)

const webhookBodyLimit = 1024 * 1024 // 1MiB

const (
	metadataTypeTrialSignup    = "trial_signup"
	metadataTypePatientBooking = "patient_booking"
)

// EventDeduper skips redeliveries of already-handled events. Implemented by
// locks.Service; every handler stays idempotent without it.
type EventDeduper interface {
	SeenEvent(ctx context.Context, eventId string) (bool, error)
	MarkEventHandled(ctx context.Context, eventId string) error
}

// WebhookHandler consumes asynchronous payment-processor events. Signature
// verification is the authentication mechanism for this endpoint; the
// response is 200 {received:true} no matter what happened internally, so the
// processor never triggers a redelivery storm and never mutates state on a
// forged event.
type WebhookHandler struct {
	accounts     *account.Service
	appointments repository.AppointmentRepository
	tokens       repository.TokenRepository
	notifier     notify.Notifier
	dedupe       EventDeduper
	secret       string
	baseURL      string
	logger       *logrus.Entry
}

func NewWebhookHandler(
	accounts *account.Service,
	appointments repository.AppointmentRepository,
	tokens repository.TokenRepository,
	notifier notify.Notifier,
	dedupe EventDeduper,
	secret string,
	baseURL string,
) *WebhookHandler {
	return &WebhookHandler{
		accounts:     accounts,
		appointments: appointments,
		tokens:       tokens,
		notifier:     notifier,
		dedupe:       dedupe,
		secret:       secret,
		baseURL:      baseURL,
		logger:       logrus.WithField("component", "webhook"),
	}
}

func (h *WebhookHandler) HandleStripeWebhook(w http.ResponseWriter, r *http.Request) {
	// the sender is always acknowledged; failures only show up in logs
	defer writeJSON(w, http.StatusOK, map[string]bool{"received": true})

	if h.secret == "" {
		h.logger.Error("webhook secret is not configured, dropping event")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, webhookBodyLimit)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.WithError(err).Error("error reading webhook body")
		return
	}

	event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), h.secret)
	if err != nil {
		// forged or stale delivery, no state is touched
		h.logger.WithError(err).Warn("webhook signature verification failed")
		return
	}

	ctx := r.Context()
	if h.dedupe != nil {
		seen, err := h.dedupe.SeenEvent(ctx, event.ID)
		if err != nil {
			h.logger.WithError(err).Warn("event dedupe check failed, relying on handler idempotency")
		} else if seen {
			h.logger.Infof("skipping duplicate delivery of event %s", event.ID)
			return
		}
	}

	if err := h.processEvent(ctx, &event); err != nil {
		// no dedupe key was written, the redelivery will retry the handler
		h.logger.WithError(err).Errorf("error processing event %s (%s)", event.ID, event.Type)
		return
	}
	if h.dedupe == nil {
		return
	}
	// mark only after success so a crash mid-handler never loses the event
	if err := h.dedupe.MarkEventHandled(ctx, event.ID); err != nil {
		h.logger.WithError(err).Warnf("could not mark event %s handled", event.ID)
	}
}

func (h *WebhookHandler) processEvent(ctx context.Context, event *stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return err
		}
		switch sess.Metadata["type"] {
		case metadataTypeTrialSignup:
			return h.handleTrialSignup(ctx, &sess)
		case metadataTypePatientBooking:
			return h.handlePatientBooking(ctx, &sess)
		default:
			h.logger.Infof("ignoring checkout session with metadata type %q", sess.Metadata["type"])
			return nil
		}
	case "invoice.payment_failed":
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return err
		}
		return h.handleInvoicePaymentFailed(ctx, &invoice)
	default:
		h.logger.Infof("ignoring event type %s", event.Type)
		return nil
	}
}

// handleTrialSignup turns the completed signup payment into a durable account
// state transition and a 24h onboarding token. Account resolution is
// find-or-create, so a redelivered event lands on the same row.
func (h *WebhookHandler) handleTrialSignup(ctx context.Context, sess *stripe.CheckoutSession) error {
	customerId := ""
	if sess.Customer != nil {
		customerId = sess.Customer.ID
	}
	email := sess.CustomerEmail
	if email == "" && sess.CustomerDetails != nil {
		email = sess.CustomerDetails.Email
	}

	accountId, err := h.accounts.OnPaymentReceived(ctx, customerId, email)
	if err != nil {
		return err
	}

	token, err := h.tokens.Issue(ctx, accountId, models.TokenKindOnboarding, models.OnboardingTokenTTL, nil)
	if err != nil {
		return err
	}

	h.sendNotification(ctx, models.Notification{
		Kind:    models.NotifyWelcome,
		To:      email,
		Subject: "Your account is ready",
		Args: map[string]string{
			"onboarding_url": fmt.Sprintf("%s/onboarding/%s", h.baseURL, token.Token),
		},
	})
	return nil
}

// handlePatientBooking promotes the pending appointment to paid and credits
// the practice's trial budget. The conditional flip decides whether the
// credit runs, so a duplicated event cannot credit twice.
func (h *WebhookHandler) handlePatientBooking(ctx context.Context, sess *stripe.CheckoutSession) error {
	appointmentId, err := strconv.Atoi(sess.Metadata["appointment_id"])
	if err != nil {
		return fmt.Errorf("booking session %s carries no usable appointment_id: %w", sess.ID, err)
	}

	won, err := h.appointments.MarkPaid(ctx, appointmentId)
	if err != nil {
		return err
	}
	if !won {
		h.logger.Infof("appointment %d already paid, skipping credit", appointmentId)
		return nil
	}

	appt, err := h.appointments.GetAppointment(ctx, appointmentId)
	if err != nil {
		return err
	}
	if err := h.accounts.CreditPatientPrepayment(ctx, appt.AccountId); err != nil {
		return err
	}

	rescheduleURL := ""
	if token, err := h.tokens.FindActiveByAppointment(ctx, appt.Id, models.TokenKindReschedule); err == nil {
		rescheduleURL = fmt.Sprintf("%s/reschedule/%s", h.baseURL, token.Token)
	}
	h.sendNotification(ctx, models.Notification{
		Kind:    models.NotifyBookingConfirmed,
		To:      appt.PatientEmail,
		Subject: "Your appointment is confirmed",
		Args: map[string]string{
			"scheduled_at":   appt.ScheduledAt.Format("02/01/2006 15:04"),
			"reschedule_url": rescheduleURL,
		},
	})
	return nil
}

func (h *WebhookHandler) handleInvoicePaymentFailed(ctx context.Context, invoice *stripe.Invoice) error {
	if invoice.Customer == nil || invoice.Customer.ID == "" {
		h.logger.Warn("invoice.payment_failed without customer reference")
		return nil
	}
	customerId := invoice.Customer.ID

	if err := h.accounts.OnInvoicePaymentFailed(ctx, customerId); err != nil {
		return err
	}

	to := invoice.CustomerEmail
	h.sendNotification(ctx, models.Notification{
		Kind:    models.NotifyPaymentFailed,
		To:      to,
		Subject: "Payment failed, campaigns paused",
		Args:    map[string]string{},
	})
	return nil
}

// sendNotification logs failures instead of propagating them. The state
// mutation that preceded the send is never rolled back for a missed email.
func (h *WebhookHandler) sendNotification(ctx context.Context, n models.Notification) {
	if h.notifier == nil {
		return
	}
	if err := h.notifier.Send(ctx, n); err != nil {
		h.logger.WithError(err).Errorf("could not send %s notification", n.Kind)
	}
}
