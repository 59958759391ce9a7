package api

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/paivaedu632/dental-sub001/internal/account"
	"github.com/paivaedu632/dental-sub001/models"
	"github.com/paivaedu632/dental-sub001/repository"
	"github.com/paivaedu632/dental-sub001/utils"
)

type OnboardingHandler struct {
	accounts repository.AccountRepository
	tokens   repository.TokenRepository
	service  *account.Service
	poll     utils.RetryPolicy
	logger   *logrus.Entry
}

func NewOnboardingHandler(
	accounts repository.AccountRepository,
	tokens repository.TokenRepository,
	service *account.Service,
	poll utils.RetryPolicy,
) *OnboardingHandler {
	return &OnboardingHandler{
		accounts: accounts,
		tokens:   tokens,
		service:  service,
		poll:     poll,
		logger:   logrus.WithField("component", "onboarding"),
	}
}

// CompleteOnboarding redeems the single-use onboarding token and writes the
// submitted profile. A resubmission with the same token observes the token as
// consumed and gets a 400.
func (h *OnboardingHandler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	var req OnboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}
	if req.Token == "" {
		writeError(w, http.StatusBadRequest, "validation_error", "token is required")
		return
	}

	ctx := r.Context()
	record, err := h.tokens.Redeem(ctx, req.Token, models.TokenKindOnboarding)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_token", "token is invalid, expired or already used")
		return
	}
	if req.DentistId != 0 && req.DentistId != record.AccountId {
		writeError(w, http.StatusBadRequest, "invalid_token", "token does not belong to this account")
		return
	}

	profile := &models.OnboardingProfile{
		ContactName:        req.ContactName,
		PracticeName:       req.PracticeName,
		Phone:              req.Phone,
		Services:           req.Services,
		WeeklyAvailability: req.WeeklyAvailability,
		WeeklyCapacity:     req.WeeklyCapacity,
	}
	if err := h.service.OnOnboardingSubmitted(ctx, record.AccountId, profile); err != nil {
		if errors.Is(err, account.ErrValidation) {
			writeError(w, http.StatusBadRequest, "validation_error", err.Error())
			return
		}
		h.logger.WithError(err).Error("error completing onboarding")
		writeError(w, http.StatusInternalServerError, "upstream_error", "could not complete onboarding")
		return
	}

	writeJSON(w, http.StatusOK, OkResponse{Ok: true})
}

// StartOnboarding bridges the browser redirect racing the webhook: the
// account and token the webhook creates may not exist yet when the redirect
// lands, so the read is retried on a bounded schedule. The terminal state is
// a setup error, never an unbounded wait.
func (h *OnboardingHandler) StartOnboarding(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "validation_error", "email query parameter is required")
		return
	}

	ctx := r.Context()
	var resp OnboardingStartResponse
	err := h.poll.Run(func() (bool, error) {
		acct, err := h.accounts.GetAccountByEmail(ctx, email)
		if err != nil {
			return false, err
		}
		token, err := h.tokens.FindActiveByAccount(ctx, acct.Id, models.TokenKindOnboarding)
		if err != nil {
			return false, err
		}
		resp = OnboardingStartResponse{AccountId: acct.Id, Token: token.Token}
		return true, nil
	})
	if err != nil {
		h.logger.WithError(err).Warnf("onboarding record for %s never appeared", email)
		writeError(w, http.StatusInternalServerError, "setup_error", "account setup has not completed yet, please contact support")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
