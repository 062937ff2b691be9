// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr           string `env:"BIND_ADDR"              flag:"bind-addr"              flagDesc:"Bind address"`
	PaymentDriver      string `env:"PAYMENT_DRIVER"         flag:"payment-driver"         flagDesc:"Payment provider driver (paypal or stripe)"`
	PaymentEnvironment string `env:"PAYMENT_ENVIRONMENT"    flag:"payment-environment"    flagDesc:"Payment provider environment (sandbox or production)"`
	PayPalClientID     string `env:"PAYPAL_CLIENT_ID"       flag:"paypal-client-id"       flagDesc:"Client ID used to authenticate API calls with PayPal"`
	PayPalClientSecret string `env:"PAYPAL_CLIENT_SECRET"   flag:"paypal-client-secret"   flagDesc:"Client secret used to authenticate API calls with PayPal"`
	StripeSecretKey    string `env:"STRIPE_SECRET_KEY"      flag:"stripe-secret-key"      flagDesc:"Secret key used to authenticate API calls with Stripe"`
	StripePublishable  string `env:"STRIPE_PUBLISHABLE_KEY" flag:"stripe-publishable-key" flagDesc:"Stripe publishable key"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		PaymentDriver:      "paypal",
		PaymentEnvironment: "sandbox",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// ProviderConfig returns the credential map consumed by the payment provider
// factory. Keys for both drivers are always present; the factory validates
// the ones the selected driver needs.
func (c *Config) ProviderConfig() map[string]string {
	return map[string]string{
		"client_id":       c.PayPalClientID,
		"client_secret":   c.PayPalClientSecret,
		"secret_key":      c.StripeSecretKey,
		"publishable_key": c.StripePublishable,
	}
}
