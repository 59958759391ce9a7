package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/paivaedu632/dental-sub001/handlers/billing"
	"github.com/paivaedu632/dental-sub001/internal/account"
	"github.com/paivaedu632/dental-sub001/models"
	"github.com/paivaedu632/dental-sub001/repository"
)

// BookingHandler persists a pending appointment before redirecting the
// patient to payment. The row must exist before the redirect so the webhook
// has something to update.
type BookingHandler struct {
	accounts     repository.AccountRepository
	appointments repository.AppointmentRepository
	tokens       repository.TokenRepository
	payments     repository.PaymentRepository
	baseURL      string
	logger       *logrus.Entry
}

func NewBookingHandler(
	accounts repository.AccountRepository,
	appointments repository.AppointmentRepository,
	tokens repository.TokenRepository,
	payments repository.PaymentRepository,
	baseURL string,
) *BookingHandler {
	return &BookingHandler{
		accounts:     accounts,
		appointments: appointments,
		tokens:       tokens,
		payments:     payments,
		baseURL:      baseURL,
		logger:       logrus.WithField("component", "booking"),
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}

	ctx := r.Context()
	acct, err := h.resolveAccount(r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_account", "no practice matches the given reference")
		return
	}

	if msg := validateBookingData(&req.Data); msg != "" {
		writeError(w, http.StatusBadRequest, "validation_error", msg)
		return
	}

	scheduledAt, err := time.Parse("2006-01-02 15:04", req.Data.AppointmentDate+" "+req.Data.AppointmentTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "appointmentDate/appointmentTime must be YYYY-MM-DD and HH:MM")
		return
	}

	appointmentId, err := h.appointments.CreateAppointment(ctx, &models.Appointment{
		AccountId:    acct.Id,
		PatientName:  req.Data.PatientName,
		PatientEmail: req.Data.PatientEmail,
		PatientPhone: req.Data.PatientPhone,
		ScheduledAt:  scheduledAt,
	})
	if err != nil {
		h.logger.WithError(err).Error("error persisting appointment")
		writeError(w, http.StatusInternalServerError, "upstream_error", "could not persist appointment")
		return
	}

	if _, err := h.tokens.Issue(ctx, acct.Id, models.TokenKindReschedule, models.RescheduleTokenTTL, &appointmentId); err != nil {
		// the appointment is still bookable without a reschedule link
		h.logger.WithError(err).Error("error issuing reschedule token")
	}

	sess, err := h.payments.CreateCheckoutSession(&billing.CheckoutRequest{
		AmountCents:   account.PrepaymentCreditCents,
		Description:   fmt.Sprintf("Appointment prepayment - %s", req.Data.PatientName),
		CustomerEmail: req.Data.PatientEmail,
		Metadata: map[string]string{
			"type":           metadataTypePatientBooking,
			"appointment_id": strconv.Itoa(appointmentId),
		},
		SuccessURL: h.baseURL + "/booking/confirmed",
		CancelURL:  h.baseURL + "/booking",
	})
	if err != nil {
		// the pending row is the durable source of truth, a retry is safe
		h.logger.WithError(err).Error("error creating booking checkout session")
		writeError(w, http.StatusInternalServerError, "upstream_error", "could not create payment session")
		return
	}

	writeJSON(w, http.StatusOK, CreateBookingResponse{URL: sess.URL, AppointmentId: appointmentId})
}

func (h *BookingHandler) resolveAccount(r *http.Request, req *CreateBookingRequest) (*models.Account, error) {
	ctx := r.Context()
	if req.DentistId > 0 {
		acct, err := h.accounts.GetAccount(ctx, req.DentistId)
		if err == nil {
			return acct, nil
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return nil, err
		}
	}
	if req.DentistSlug != "" {
		return h.accounts.GetAccountBySlug(ctx, req.DentistSlug)
	}
	return nil, repository.ErrAccountNotFound
}

func validateBookingData(data *BookingData) string {
	if data.PatientName == "" {
		return "patientName is required"
	}
	if data.PatientEmail == "" {
		return "patientEmail is required"
	}
	if data.PatientPhone == "" {
		return "patientPhone is required"
	}
	if data.AppointmentDate == "" || data.AppointmentTime == "" {
		return "appointmentDate and appointmentTime are required"
	}
	if !data.Consent {
		return "consent is required"
	}
	return ""
}
