package api

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/paivaedu632/dental-sub001/handlers/billing"
	"github.com/paivaedu632/dental-sub001/internal/account"
	"github.com/paivaedu632/dental-sub001/repository"
)

const trialCheckoutDescription = "Trial signup - dental lead generation"

// CheckoutHandler opens a payment-collection session for the trial signup.
// No durable state exists before the provider call succeeds, so a 500 here is
// safe to retry whole.
type CheckoutHandler struct {
	payments repository.PaymentRepository
	baseURL  string
	logger   *logrus.Entry
}

func NewCheckoutHandler(payments repository.PaymentRepository, baseURL string) *CheckoutHandler {
	return &CheckoutHandler{
		payments: payments,
		baseURL:  baseURL,
		logger:   logrus.WithField("component", "checkout"),
	}
}

func (h *CheckoutHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	var req CreateCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}

	if req.AmountCents < 0 {
		writeError(w, http.StatusBadRequest, "validation_error", "amountCents cannot be negative")
		return
	}
	if req.AmountCents == 0 {
		req.AmountCents = account.TrialPriceCents
	}
	if req.Description == "" {
		req.Description = trialCheckoutDescription
	}
	if req.SuccessURL == "" {
		req.SuccessURL = h.baseURL + "/onboarding/start"
	}
	if req.CancelURL == "" {
		req.CancelURL = h.baseURL + "/"
	}
	// caller metadata is copied first so the routing keys the webhook trusts
	// can never be forged by the request body
	metadata := make(map[string]string, len(req.Metadata)+1)
	for key, value := range req.Metadata {
		metadata[key] = value
	}
	delete(metadata, "appointment_id")
	metadata["type"] = metadataTypeTrialSignup

	sess, err := h.payments.CreateCheckoutSession(&billing.CheckoutRequest{
		AmountCents: req.AmountCents,
		Description: req.Description,
		Metadata:    metadata,
		SuccessURL:  req.SuccessURL,
		CancelURL:   req.CancelURL,
	})
	if err != nil {
		h.logger.WithError(err).Error("error creating checkout session")
		writeError(w, http.StatusInternalServerError, "upstream_error", "could not create checkout session")
		return
	}

	writeJSON(w, http.StatusOK, CreateCheckoutResponse{Id: sess.Id, URL: sess.URL})
}
