package repository

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/paivaedu632/dental-sub001/handlers/billing"
	"github.com/paivaedu632/dental-sub001/utils"
)

// ErrUpstream marks a payment processor failure. No durable state exists
// before the provider call succeeds, so the caller may retry the whole
// request.
var ErrUpstream = errors.New("payment provider request failed")

type PaymentRepository interface {
	CreateCheckoutSession(req *billing.CheckoutRequest) (*billing.CheckoutSession, error)
}

type PaymentService struct {
	billingParams *utils.BillingParams
	logger        *logrus.Entry
}

func NewPaymentRepository(billingParams *utils.BillingParams) PaymentRepository {
	return NewPaymentService(billingParams)
}

func NewPaymentService(billingParams *utils.BillingParams) *PaymentService {
	return &PaymentService{
		billingParams: billingParams,
		logger:        logrus.WithField("component", "payments"),
	}
}

func (ps *PaymentService) CreateCheckoutSession(req *billing.CheckoutRequest) (*billing.CheckoutSession, error) {
	var hndl billing.BillingHandler

	switch ps.billingParams.Provider {
	case "stripe":
		key := ps.billingParams.Data["stripe_key"]
		hndl = billing.NewStripeBillingHandler(key)
	case "braintree":
		key := ps.billingParams.Data["braintree_api_key"]
		hndl = billing.NewBraintreeBillingHandler(key)
	default:
		return nil, errors.Errorf("unknown payment provider %s", ps.billingParams.Provider)
	}

	sess, err := hndl.CreateCheckoutSession(req)
	if err != nil {
		ps.logger.WithError(err).Error("error creating checkout session")
		return nil, errors.Wrap(ErrUpstream, err.Error())
	}
	return sess, nil
}
