package billing

import (
	"errors"
)

type BraintreeBillingHandler struct {
	BraintreeKey string
}

func NewBraintreeBillingHandler(braintreeKey string) *BraintreeBillingHandler {
	return &BraintreeBillingHandler{
		BraintreeKey: braintreeKey,
	}
}

func (hndl *BraintreeBillingHandler) CreateCheckoutSession(req *CheckoutRequest) (*CheckoutSession, error) {
	// todo: implement handler
	return nil, errors.New("not implemented yet")
}
