package api

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
)

// ReminderRunner is implemented by the reminder sweep job.
type ReminderRunner interface {
	Run(ctx context.Context) (int, error)
}

type ReminderHandler struct {
	job    ReminderRunner
	logger *logrus.Entry
}

func NewReminderHandler(job ReminderRunner) *ReminderHandler {
	return &ReminderHandler{
		job:    job,
		logger: logrus.WithField("component", "reminders"),
	}
}

// TriggerSweep never fails the time-trigger that calls it. Per-account
// failures are counted inside the job; a run-level failure only flips ok.
func (h *ReminderHandler) TriggerSweep(w http.ResponseWriter, r *http.Request) {
	sent, err := h.job.Run(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("reminder sweep finished with errors")
	}
	writeJSON(w, http.StatusOK, ReminderSweepResponse{Ok: err == nil, RemindersSent: sent})
}
