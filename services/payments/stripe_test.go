package payments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"tripcheckout/config"
	"tripcheckout/services/checkout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleParams() checkout.SessionParams {
	return checkout.SessionParams{
		LineItems: []checkout.LineItem{{
			Name:        "Booking for Hotel ID: trip-42",
			Description: "Stay from 2025-03-01 to 2025-03-04 - 2 guests",
			Currency:    "usd",
			UnitAmount:  10000,
			Quantity:    1,
		}},
		PaymentMethodTypes: []string{"card"},
		Mode:               "payment",
		SuccessURL:         "http://localhost:5173/success",
		CancelURL:          "http://localhost:5173/cancel",
		CustomerEmail:      "ayesha@example.com",
		Metadata:           map[string]string{"tripId": "trip-42", "totalPriceUSD": "100.00"},
	}
}

func newTestSessions(url string) *StripeSessions {
	return NewStripeSessions(config.Config{
		StripeSecretKey: "sk_test_123",
		StripeAPIURL:    url,
	}, zap.NewNop())
}

func TestCreateSessionSendsCheckoutForm(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		assert.NoError(t, r.ParseForm())
		form := r.PostForm
		assert.Equal(t, "payment", form.Get("mode"))
		assert.Equal(t, "card", form.Get("payment_method_types[0]"))
		assert.Equal(t, "http://localhost:5173/success", form.Get("success_url"))
		assert.Equal(t, "http://localhost:5173/cancel", form.Get("cancel_url"))
		assert.Equal(t, "ayesha@example.com", form.Get("customer_email"))
		assert.Equal(t, "usd", form.Get("line_items[0][price_data][currency]"))
		assert.Equal(t, "10000", form.Get("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "Booking for Hotel ID: trip-42", form.Get("line_items[0][price_data][product_data][name]"))
		assert.Equal(t, "1", form.Get("line_items[0][quantity]"))
		assert.Equal(t, "trip-42", form.Get("metadata[tripId]"))
		assert.Equal(t, "100.00", form.Get("metadata[totalPriceUSD]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_test_abc","object":"checkout.session","mode":"payment"}`))
	}))
	defer srv.Close()

	id, err := newTestSessions(srv.URL).CreateSession(context.Background(), sampleParams())
	require.NoError(t, err)
	assert.Equal(t, "cs_test_abc", id)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCreateSessionProviderRejection(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Invalid email address: ayesha","param":"customer_email"}}`))
	}))
	defer srv.Close()

	_, err := newTestSessions(srv.URL).CreateSession(context.Background(), sampleParams())
	require.Error(t, err)

	ce := checkout.AsError(err)
	assert.Equal(t, checkout.KindProviderRejected, ce.Kind)
	assert.Equal(t, "Stripe error: Invalid email address: ayesha", ce.Message)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCreateSessionTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestSessions(url).CreateSession(context.Background(), sampleParams())
	require.Error(t, err)
	assert.Equal(t, checkout.KindUnexpectedFailure, checkout.AsError(err).Kind)
}
