package checkout

import (
	"context"

	"tripcheckout/models"
)

// LineItem is a single priced entry on the provider's checkout page.
type LineItem struct {
	Name        string
	Description string
	Currency    string
	UnitAmount  int64
	Quantity    int64
}

// SessionParams is everything the provider needs to open a checkout session.
type SessionParams struct {
	LineItems          []LineItem
	PaymentMethodTypes []string
	Mode               string
	SuccessURL         string
	CancelURL          string
	CustomerEmail      string
	Metadata           map[string]string
}

// SessionCreator opens a checkout session with the payment provider and
// returns its id. Provider rejections must be returned as
// NewProviderRejectedError so they reach the caller as client errors.
type SessionCreator interface {
	CreateSession(ctx context.Context, params SessionParams) (string, error)
}

// RecordPublisher hands a created session off for auditing.
type RecordPublisher interface {
	Publish(ctx context.Context, record models.CheckoutRecord) error
}

// NopPublisher drops every record.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, models.CheckoutRecord) error { return nil }

// Recorder receives one observation per finished checkout attempt.
type Recorder interface {
	ObserveCheckout(kind, outcome string, seconds float64)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCheckout(string, string, float64) {}
