package config

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("APP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sk_test_123", cfg.StripeSecretKey)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "1/291", cfg.ExchangeRate)
	assert.Equal(t, "pkr", cfg.SourceCurrency)
	assert.Equal(t, "usd", cfg.DestCurrency)
	assert.Equal(t, "http://localhost:5173/success", cfg.SuccessURL)
	assert.Equal(t, "http://localhost:5173/cancel", cfg.CancelURL)
	assert.Equal(t, 100, cfg.MaxRequestsPerMin)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"missing key", Config{ExchangeRate: "1/291"}, ErrMissingStripeKey},
		{"blank key", Config{StripeSecretKey: "   ", ExchangeRate: "1/291"}, ErrMissingStripeKey},
		{"bad rate", Config{StripeSecretKey: "sk", ExchangeRate: "abc"}, ErrInvalidRate},
		{"zero rate", Config{StripeSecretKey: "sk", ExchangeRate: "0"}, ErrInvalidRate},
		{"negative rate", Config{StripeSecretKey: "sk", ExchangeRate: "-1/2"}, ErrInvalidRate},
		{"decimal rate", Config{StripeSecretKey: "sk", ExchangeRate: "0.0034"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRateIsExact(t *testing.T) {
	r, err := Config{ExchangeRate: "1/291"}.Rate()
	require.NoError(t, err)
	assert.Equal(t, 0, r.Cmp(big.NewRat(1, 291)))
}

func TestOrigins(t *testing.T) {
	cfg := Config{AllowedOrigins: "http://localhost:5173, https://trips.example.com ,"}
	assert.Equal(t, []string{"http://localhost:5173", "https://trips.example.com"}, cfg.Origins())
	assert.Empty(t, Config{}.Origins())
}
