package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/paivaedu632/dental-sub001/models"
	"github.com/paivaedu632/dental-sub001/repository"
)

type RescheduleHandler struct {
	tokens       repository.TokenRepository
	appointments repository.AppointmentRepository
	logger       *logrus.Entry
}

func NewRescheduleHandler(tokens repository.TokenRepository, appointments repository.AppointmentRepository) *RescheduleHandler {
	return &RescheduleHandler{
		tokens:       tokens,
		appointments: appointments,
		logger:       logrus.WithField("component", "reschedule"),
	}
}

// Reschedule redeems the reschedule token (consumed by row deletion, so a
// second attempt with the same link fails) and moves the appointment.
func (h *RescheduleHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	var req RescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}
	if req.Token == "" {
		writeError(w, http.StatusBadRequest, "validation_error", "token is required")
		return
	}

	newTime, err := time.Parse("2006-01-02 15:04", req.Data.NewDateTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "newDateTime must be YYYY-MM-DD HH:MM")
		return
	}

	ctx := r.Context()
	record, err := h.tokens.Redeem(ctx, req.Token, models.TokenKindReschedule)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_token", "token is invalid or expired")
		return
	}
	if !record.AppointmentId.Valid {
		writeError(w, http.StatusBadRequest, "invalid_token", "token is not linked to an appointment")
		return
	}

	if err := h.appointments.UpdateSchedule(ctx, int(record.AppointmentId.Int64), newTime, req.Data.Reason); err != nil {
		h.logger.WithError(err).Error("error updating appointment schedule")
		writeError(w, http.StatusBadRequest, "reschedule_failed", "could not update the appointment")
		return
	}

	writeJSON(w, http.StatusOK, OkResponse{Ok: true})
}
