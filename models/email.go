package models

// Notification kinds dispatched by the webhook processor and reminder job.
const (
	NotifyWelcome            = "welcome"
	NotifyBookingConfirmed   = "booking_confirmed"
	NotifyPaymentFailed      = "payment_failed"
	NotifyOnboardingReminder = "onboarding_reminder"
)

// Notification is a transactional email task. It is either sent directly
// through Mailgun or published to the notification_tasks queue.
type Notification struct {
	Kind    string            `json:"kind"`
	To      string            `json:"to"`
	Subject string            `json:"subject"`
	Args    map[string]string `json:"args"`
}
