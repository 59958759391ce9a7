package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paivaedu632/dental-sub001/internal/account"
	"github.com/paivaedu632/dental-sub001/internal/locks"
	"github.com/paivaedu632/dental-sub001/internal/notify"
	"github.com/paivaedu632/dental-sub001/repository"
	"github.com/paivaedu632/dental-sub001/utils"
)

type RouterConfig struct {
	Accounts      repository.AccountRepository
	Appointments  repository.AppointmentRepository
	Tokens        repository.TokenRepository
	Payments      repository.PaymentRepository
	Notifier      notify.Notifier
	Dedupe        *locks.Service
	ReminderJob   ReminderRunner
	WebhookSecret string
	BaseURL       string
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	accountSvc := account.NewService(cfg.Accounts)

	webhooks := NewWebhookHandler(accountSvc, cfg.Appointments, cfg.Tokens, cfg.Notifier,
		cfg.Dedupe, cfg.WebhookSecret, cfg.BaseURL)
	checkout := NewCheckoutHandler(cfg.Payments, cfg.BaseURL)
	booking := NewBookingHandler(cfg.Accounts, cfg.Appointments, cfg.Tokens, cfg.Payments, cfg.BaseURL)
	onboarding := NewOnboardingHandler(cfg.Accounts, cfg.Tokens, accountSvc, utils.DefaultRetryPolicy())
	reschedule := NewRescheduleHandler(cfg.Tokens, cfg.Appointments)

	r.Post("/webhooks/stripe", webhooks.HandleStripeWebhook)
	r.Post("/api/checkout", checkout.CreateCheckout)
	r.Post("/api/bookings", booking.CreateBooking)
	r.Post("/api/onboarding", onboarding.CompleteOnboarding)
	r.Get("/api/onboarding/start", onboarding.StartOnboarding)
	r.Post("/api/reschedule", reschedule.Reschedule)

	if cfg.ReminderJob != nil {
		reminders := NewReminderHandler(cfg.ReminderJob)
		r.Get("/jobs/reminders", reminders.TriggerSweep)
	}

	return r
}
