package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/paivaedu632/dental-sub001/handlers/billing"
	"github.com/paivaedu632/dental-sub001/mocks"
	"github.com/paivaedu632/dental-sub001/models"
	"github.com/paivaedu632/dental-sub001/repository"
)

func bookingRequestBody(t *testing.T, req CreateBookingRequest) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(req)
	assert.NoError(t, err)
	return bytes.NewReader(body)
}

func validBookingRequest() CreateBookingRequest {
	return CreateBookingRequest{
		DentistId: 7,
		Data: BookingData{
			PatientName:     "Maria Souza",
			PatientEmail:    "maria@example.com",
			PatientPhone:    "+5511988880000",
			AppointmentDate: "2026-09-14",
			AppointmentTime: "10:30",
			Consent:         true,
		},
	}
}

func TestCreateBooking(t *testing.T) {
	t.Parallel()

	t.Run("Should persist the appointment before opening the payment session", func(t *testing.T) {
		t.Parallel()

		accounts := mocks.NewAccountRepository(t)
		appointments := mocks.NewAppointmentRepository(t)
		tokens := mocks.NewTokenRepository(t)
		payments := mocks.NewPaymentRepository(t)

		accounts.EXPECT().GetAccount(mock.Anything, 7).Return(&models.Account{Id: 7}, nil)
		appointments.EXPECT().CreateAppointment(mock.Anything, mock.MatchedBy(func(appt *models.Appointment) bool {
			return appt.AccountId == 7 &&
				appt.PatientName == "Maria Souza" &&
				appt.ScheduledAt.Equal(time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC))
		})).Return(42, nil)
		apptId := 42
		tokens.EXPECT().Issue(mock.Anything, 7, models.TokenKindReschedule, models.RescheduleTokenTTL, &apptId).
			Return(&models.AccessToken{Token: "rtok"}, nil)
		payments.EXPECT().CreateCheckoutSession(mock.MatchedBy(func(req *billing.CheckoutRequest) bool {
			return req.Metadata["type"] == "patient_booking" &&
				req.Metadata["appointment_id"] == "42" &&
				req.CustomerEmail == "maria@example.com"
		})).Return(&billing.CheckoutSession{Id: "cs_1", URL: "https://pay.test/cs_1"}, nil)

		handler := NewBookingHandler(accounts, appointments, tokens, payments, "https://app.test")
		rec := httptest.NewRecorder()
		handler.CreateBooking(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", bookingRequestBody(t, validBookingRequest())))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp CreateBookingResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "https://pay.test/cs_1", resp.URL)
		assert.Equal(t, 42, resp.AppointmentId)
	})

	t.Run("Should resolve the practice by slug when no id is given", func(t *testing.T) {
		t.Parallel()

		accounts := mocks.NewAccountRepository(t)
		appointments := mocks.NewAppointmentRepository(t)
		tokens := mocks.NewTokenRepository(t)
		payments := mocks.NewPaymentRepository(t)

		accounts.EXPECT().GetAccountBySlug(mock.Anything, "acme-dental").Return(&models.Account{Id: 9}, nil)
		appointments.EXPECT().CreateAppointment(mock.Anything, mock.Anything).Return(50, nil)
		tokens.EXPECT().Issue(mock.Anything, 9, models.TokenKindReschedule, models.RescheduleTokenTTL, mock.Anything).
			Return(&models.AccessToken{Token: "rtok"}, nil)
		payments.EXPECT().CreateCheckoutSession(mock.Anything).
			Return(&billing.CheckoutSession{Id: "cs_2", URL: "https://pay.test/cs_2"}, nil)

		req := validBookingRequest()
		req.DentistId = 0
		req.DentistSlug = "acme-dental"

		handler := NewBookingHandler(accounts, appointments, tokens, payments, "https://app.test")
		rec := httptest.NewRecorder()
		handler.CreateBooking(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", bookingRequestBody(t, req)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Should reject an unknown practice reference", func(t *testing.T) {
		t.Parallel()

		accounts := mocks.NewAccountRepository(t)
		accounts.EXPECT().GetAccount(mock.Anything, 7).Return(nil, repository.ErrAccountNotFound)

		handler := NewBookingHandler(accounts, mocks.NewAppointmentRepository(t), mocks.NewTokenRepository(t), mocks.NewPaymentRepository(t), "https://app.test")

		rec := httptest.NewRecorder()
		handler.CreateBooking(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", bookingRequestBody(t, validBookingRequest())))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid_account", resp.Error)
	})

	t.Run("Should reject a booking without consent", func(t *testing.T) {
		t.Parallel()

		accounts := mocks.NewAccountRepository(t)
		accounts.EXPECT().GetAccount(mock.Anything, 7).Return(&models.Account{Id: 7}, nil)

		req := validBookingRequest()
		req.Data.Consent = false

		handler := NewBookingHandler(accounts, mocks.NewAppointmentRepository(t), mocks.NewTokenRepository(t), mocks.NewPaymentRepository(t), "https://app.test")
		rec := httptest.NewRecorder()
		handler.CreateBooking(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", bookingRequestBody(t, req)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "validation_error", resp.Error)
	})

	t.Run("Should still book when the reschedule token cannot be issued", func(t *testing.T) {
		t.Parallel()

		accounts := mocks.NewAccountRepository(t)
		appointments := mocks.NewAppointmentRepository(t)
		tokens := mocks.NewTokenRepository(t)
		payments := mocks.NewPaymentRepository(t)

		accounts.EXPECT().GetAccount(mock.Anything, 7).Return(&models.Account{Id: 7}, nil)
		appointments.EXPECT().CreateAppointment(mock.Anything, mock.Anything).Return(42, nil)
		tokens.EXPECT().Issue(mock.Anything, 7, models.TokenKindReschedule, models.RescheduleTokenTTL, mock.Anything).
			Return(nil, assert.AnError)
		payments.EXPECT().CreateCheckoutSession(mock.Anything).
			Return(&billing.CheckoutSession{Id: "cs_1", URL: "https://pay.test/cs_1"}, nil)

		handler := NewBookingHandler(accounts, appointments, tokens, payments, "https://app.test")
		rec := httptest.NewRecorder()
		handler.CreateBooking(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", bookingRequestBody(t, validBookingRequest())))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Should keep the pending row when the payment provider is down", func(t *testing.T) {
		t.Parallel()

		accounts := mocks.NewAccountRepository(t)
		appointments := mocks.NewAppointmentRepository(t)
		tokens := mocks.NewTokenRepository(t)
		payments := mocks.NewPaymentRepository(t)

		accounts.EXPECT().GetAccount(mock.Anything, 7).Return(&models.Account{Id: 7}, nil)
		appointments.EXPECT().CreateAppointment(mock.Anything, mock.Anything).Return(42, nil)
		tokens.EXPECT().Issue(mock.Anything, 7, models.TokenKindReschedule, models.RescheduleTokenTTL, mock.Anything).
			Return(&models.AccessToken{Token: "rtok"}, nil)
		payments.EXPECT().CreateCheckoutSession(mock.Anything).Return(nil, repository.ErrUpstream)

		handler := NewBookingHandler(accounts, appointments, tokens, payments, "https://app.test")
		rec := httptest.NewRecorder()
		handler.CreateBooking(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", bookingRequestBody(t, validBookingRequest())))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "upstream_error", resp.Error)
	})
}
