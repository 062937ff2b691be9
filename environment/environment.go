// Package environment resolves a payment driver and environment name to a
// concrete API base URL and holds the credentials for that environment.
package environment

import (
	"encoding/base64"

	"github.com/plutov/paypal/v4"
)

// Environment names recognized for every driver
const (
	Sandbox    = "sandbox"
	Production = "production"
)

const stripeAPIBase = "https://api.stripe.com"

// PaymentEnvironment is an interface for the sandbox and production
// environments of each payment provider. Environments are immutable once
// constructed.
type PaymentEnvironment interface {
	BaseURL() string
	Name() string
	Credentials() map[string]string
}

// PayPalEnvironment holds the client credential pair for a PayPal
// environment and the API base it resolves to
type PayPalEnvironment struct {
	name         string
	baseURL      string
	clientID     string
	clientSecret string
}

// NewPayPalSandboxEnvironment returns the PayPal sandbox environment for the
// given client credential pair
func NewPayPalSandboxEnvironment(clientID, clientSecret string) *PayPalEnvironment {
	return &PayPalEnvironment{
		name:         Sandbox,
		baseURL:      paypal.APIBaseSandBox,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// NewPayPalProductionEnvironment returns the PayPal production environment
// for the given client credential pair
func NewPayPalProductionEnvironment(clientID, clientSecret string) *PayPalEnvironment {
	return &PayPalEnvironment{
		name:         Production,
		baseURL:      paypal.APIBaseLive,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// BaseURL returns the PayPal API base for this environment
func (e *PayPalEnvironment) BaseURL() string {
	return e.baseURL
}

// Name returns the environment name
func (e *PayPalEnvironment) Name() string {
	return e.name
}

// Credentials returns the credentials held for this environment
func (e *PayPalEnvironment) Credentials() map[string]string {
	return map[string]string{
		"client_id":     e.clientID,
		"client_secret": e.clientSecret,
	}
}

// BasicAuthorization returns the value used with HTTP Basic authentication
// against the PayPal API, base64(client_id:client_secret)
func (e *PayPalEnvironment) BasicAuthorization() string {
	return base64.StdEncoding.EncodeToString([]byte(e.clientID + ":" + e.clientSecret))
}

// StripeEnvironment holds the key pair for a Stripe environment. Stripe uses
// the same API base for sandbox and production; the two are distinguished
// purely by which secret key is supplied.
type StripeEnvironment struct {
	name           string
	secretKey      string
	publishableKey string
}

// NewStripeSandboxEnvironment returns the Stripe sandbox environment for the
// given keys
func NewStripeSandboxEnvironment(secretKey, publishableKey string) *StripeEnvironment {
	return &StripeEnvironment{
		name:           Sandbox,
		secretKey:      secretKey,
		publishableKey: publishableKey,
	}
}

// NewStripeProductionEnvironment returns the Stripe production environment
// for the given keys
func NewStripeProductionEnvironment(secretKey, publishableKey string) *StripeEnvironment {
	return &StripeEnvironment{
		name:           Production,
		secretKey:      secretKey,
		publishableKey: publishableKey,
	}
}

// BaseURL returns the Stripe API base
func (e *StripeEnvironment) BaseURL() string {
	return stripeAPIBase
}

// Name returns the environment name
func (e *StripeEnvironment) Name() string {
	return e.name
}

// Credentials returns the credentials held for this environment
func (e *StripeEnvironment) Credentials() map[string]string {
	return map[string]string{
		"secret_key":      e.secretKey,
		"publishable_key": e.publishableKey,
	}
}

// SecretKey returns the Stripe secret key
func (e *StripeEnvironment) SecretKey() string {
	return e.secretKey
}

// PublishableKey returns the Stripe publishable key, which may be empty
func (e *StripeEnvironment) PublishableKey() string {
	return e.publishableKey
}
