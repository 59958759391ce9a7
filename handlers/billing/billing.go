package billing

// CheckoutRequest carries everything the payment provider needs to open a
// payment-collection session.
type CheckoutRequest struct {
	AmountCents   int64
	Description   string
	CustomerEmail string
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
}

// CheckoutSession is the provider's handle for a created session.
type CheckoutSession struct {
	Id  string
	URL string
}

type BillingHandler interface {
	CreateCheckoutSession(req *CheckoutRequest) (*CheckoutSession, error)
}
