package payments

import (
	"context"
	"errors"

	"tripcheckout/config"
	"tripcheckout/services/checkout"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

// StripeSessions opens Stripe Checkout sessions.
type StripeSessions struct {
	api    *client.API
	logger *zap.Logger
}

// NewStripeSessions builds a Stripe client for cfg. Network retries are
// disabled so every request reaches Stripe at most once.
func NewStripeSessions(cfg config.Config, logger *zap.Logger) *StripeSessions {
	backendCfg := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     logger.Sugar(),
	}
	if cfg.StripeAPIURL != "" {
		backendCfg.URL = stripe.String(cfg.StripeAPIURL)
	}
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg)

	api := client.New(cfg.StripeSecretKey, &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendCfg),
	})
	return &StripeSessions{api: api, logger: logger}
}

// CreateSession implements checkout.SessionCreator.
func (s *StripeSessions) CreateSession(ctx context.Context, p checkout.SessionParams) (string, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice(p.PaymentMethodTypes),
		Mode:               stripe.String(p.Mode),
		SuccessURL:         stripe.String(p.SuccessURL),
		CancelURL:          stripe.String(p.CancelURL),
	}
	params.Context = ctx
	if p.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(p.CustomerEmail)
	}
	for _, item := range p.LineItems {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(item.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(item.Name),
					Description: stripe.String(item.Description),
				},
				UnitAmount: stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			msg := stripeErr.Msg
			if msg == "" {
				msg = string(stripeErr.Type)
			}
			s.logger.Warn("stripe rejected checkout session",
				zap.String("type", string(stripeErr.Type)),
				zap.String("code", string(stripeErr.Code)),
				zap.Int("status", stripeErr.HTTPStatusCode),
				zap.String("requestId", stripeErr.RequestID),
			)
			return "", checkout.NewProviderRejectedError(msg, err)
		}
		return "", checkout.NewUnexpectedError(err)
	}
	return sess.ID, nil
}
