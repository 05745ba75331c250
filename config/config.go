package config

import (
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`

	// Stripe.
	StripeSecretKey string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeAPIURL    string `mapstructure:"STRIPE_API_URL"`

	// Pricing. ExchangeRate is a decimal or a fraction such as "1/291".
	ExchangeRate   string `mapstructure:"EXCHANGE_RATE"`
	SourceCurrency string `mapstructure:"SOURCE_CURRENCY"`
	DestCurrency   string `mapstructure:"DEST_CURRENCY"`

	// Checkout redirect targets.
	SuccessURL     string `mapstructure:"SUCCESS_URL"`
	CancelURL      string `mapstructure:"CANCEL_URL"`
	RideSuccessURL string `mapstructure:"RIDE_SUCCESS_URL"`
	RideCancelURL  string `mapstructure:"RIDE_CANCEL_URL"`

	// Redis configuration. An empty address disables the audit queue.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// MongoDB. An empty URL disables the audit worker.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`
}

var (
	ErrMissingStripeKey = errors.New("STRIPE_SECRET_KEY is not configured")
	ErrInvalidRate      = errors.New("EXCHANGE_RATE must be a positive number or fraction")
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("STRIPE_SECRET_KEY", "")
	v.SetDefault("STRIPE_API_URL", "")
	v.SetDefault("EXCHANGE_RATE", "1/291")
	v.SetDefault("SOURCE_CURRENCY", "pkr")
	v.SetDefault("DEST_CURRENCY", "usd")
	v.SetDefault("SUCCESS_URL", "http://localhost:5173/success")
	v.SetDefault("CANCEL_URL", "http://localhost:5173/cancel")
	v.SetDefault("RIDE_SUCCESS_URL", "http://localhost:5173/ride-success")
	v.SetDefault("RIDE_CANCEL_URL", "http://localhost:5173/ride-cancel")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_QUEUE_DB", 3)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DATABASE_NAME", "tripcheckout")
}

// Load reads config.yaml from the current or ./config directory when present
// and overlays environment variables on top of it.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Validate reports configuration that must stop the process at startup.
func (c Config) Validate() error {
	if strings.TrimSpace(c.StripeSecretKey) == "" {
		return ErrMissingStripeKey
	}
	if _, err := c.Rate(); err != nil {
		return err
	}
	return nil
}

// Rate parses ExchangeRate as an exact rational.
func (c Config) Rate() (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(c.ExchangeRate))
	if !ok || r.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRate, c.ExchangeRate)
	}
	return r, nil
}

// Origins splits the comma separated ALLOWED_ORIGINS value.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}
