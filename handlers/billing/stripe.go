package billing

import (
	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/checkout/session"
)

type StripeBillingHandler struct {
	StripeKey string
}

func NewStripeBillingHandler(stripeKey string) *StripeBillingHandler {
	return &StripeBillingHandler{
		StripeKey: stripeKey,
	}
}

func (hndl *StripeBillingHandler) CreateCheckoutSession(req *CheckoutRequest) (*CheckoutSession, error) {
	stripe.Key = hndl.StripeKey

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyBRL)),
					UnitAmount: stripe.Int64(req.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "creating stripe checkout session")
	}

	return &CheckoutSession{Id: sess.ID, URL: sess.URL}, nil
}
