package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/paivaedu632/dental-sub001/mocks"
	"github.com/paivaedu632/dental-sub001/models"
	"github.com/paivaedu632/dental-sub001/repository"
)

func TestReschedule(t *testing.T) {
	t.Parallel()

	t.Run("Should move the appointment linked to the token", func(t *testing.T) {
		t.Parallel()

		tokens := mocks.NewTokenRepository(t)
		appointments := mocks.NewAppointmentRepository(t)

		tokens.EXPECT().Redeem(mock.Anything, "rtok", models.TokenKindReschedule).
			Return(&models.AccessToken{AccountId: 7, AppointmentId: sql.NullInt64{Int64: 42, Valid: true}}, nil)
		appointments.EXPECT().UpdateSchedule(mock.Anything, 42, time.Date(2026, 9, 20, 14, 0, 0, 0, time.UTC), "conflict").
			Return(nil)

		handler := NewRescheduleHandler(tokens, appointments)
		rec := httptest.NewRecorder()
		body := `{"token":"rtok","data":{"newDateTime":"2026-09-20 14:00","reason":"conflict"}}`
		handler.Reschedule(rec, httptest.NewRequest(http.MethodPost, "/api/reschedule", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	})

	t.Run("Should reject a consumed or expired token", func(t *testing.T) {
		t.Parallel()

		tokens := mocks.NewTokenRepository(t)
		tokens.EXPECT().Redeem(mock.Anything, "rtok", models.TokenKindReschedule).
			Return(nil, repository.ErrTokenInvalid)

		handler := NewRescheduleHandler(tokens, mocks.NewAppointmentRepository(t))
		rec := httptest.NewRecorder()
		body := `{"token":"rtok","data":{"newDateTime":"2026-09-20 14:00"}}`
		handler.Reschedule(rec, httptest.NewRequest(http.MethodPost, "/api/reschedule", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid_token", resp.Error)
	})

	t.Run("Should reject a malformed datetime before touching the token", func(t *testing.T) {
		t.Parallel()

		handler := NewRescheduleHandler(mocks.NewTokenRepository(t), mocks.NewAppointmentRepository(t))
		rec := httptest.NewRecorder()
		body := `{"token":"rtok","data":{"newDateTime":"next tuesday"}}`
		handler.Reschedule(rec, httptest.NewRequest(http.MethodPost, "/api/reschedule", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "validation_error", resp.Error)
	})

	t.Run("Should reject a token without an appointment link", func(t *testing.T) {
		t.Parallel()

		tokens := mocks.NewTokenRepository(t)
		tokens.EXPECT().Redeem(mock.Anything, "rtok", models.TokenKindReschedule).
			Return(&models.AccessToken{AccountId: 7}, nil)

		handler := NewRescheduleHandler(tokens, mocks.NewAppointmentRepository(t))
		rec := httptest.NewRecorder()
		body := `{"token":"rtok","data":{"newDateTime":"2026-09-20 14:00"}}`
		handler.Reschedule(rec, httptest.NewRequest(http.MethodPost, "/api/reschedule", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
