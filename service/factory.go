package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/companieshouse/payment-providers.api.ch.gov.uk/environment"
)

// Drivers recognized by CreatePaymentProvider
const (
	DriverPayPal = "paypal"
	DriverStripe = "stripe"
)

var (
	// ErrUnsupportedDriver is returned for any driver other than paypal or stripe
	ErrUnsupportedDriver = errors.New("unsupported payment driver")

	// ErrUnsupportedEnvironment is returned for any environment name other than sandbox or production
	ErrUnsupportedEnvironment = errors.New("unsupported environment")

	// ErrMissingPayPalCredentials is returned when client_id or client_secret is absent from the config
	ErrMissingPayPalCredentials = errors.New("PayPal requires client_id and client_secret")

	// ErrMissingStripeCredentials is returned when secret_key is absent from the config
	ErrMissingStripeCredentials = errors.New("Stripe requires secret_key")
)

// CreatePaymentProvider validates the driver, environment name and
// credentials - in that order - then constructs the environment and the
// matching adapter bound to it. The adapter is returned typed as the
// PaymentProvider contract; callers must not depend on the concrete type.
func CreatePaymentProvider(driver, environmentName string, config map[string]string) (PaymentProvider, error) {
	switch driver {
	case DriverPayPal, DriverStripe:
	default:
		return nil, fmt.Errorf("%w: [%s]", ErrUnsupportedDriver, driver)
	}

	if environmentName != environment.Sandbox && environmentName != environment.Production {
		return nil, fmt.Errorf("%w: [%s]", ErrUnsupportedEnvironment, environmentName)
	}

	if driver == DriverPayPal {
		return createPayPalProvider(environmentName, config)
	}

	return createStripeProvider(environmentName, config)
}

func createPayPalProvider(environmentName string, config map[string]string) (PaymentProvider, error) {
	clientID := config["client_id"]
	clientSecret := config["client_secret"]

	if clientID == "" || clientSecret == "" {
		return nil, ErrMissingPayPalCredentials
	}

	var env *environment.PayPalEnvironment
	if environmentName == environment.Sandbox {
		env = environment.NewPayPalSandboxEnvironment(clientID, clientSecret)
	} else {
		env = environment.NewPayPalProductionEnvironment(clientID, clientSecret)
	}

	return &PayPalService{Client: http.DefaultClient, Environment: env}, nil
}

func createStripeProvider(environmentName string, config map[string]string) (PaymentProvider, error) {
	secretKey := config["secret_key"]
	publishableKey := config["publishable_key"]

	if secretKey == "" {
		return nil, ErrMissingStripeCredentials
	}

	var env *environment.StripeEnvironment
	if environmentName == environment.Sandbox {
		env = environment.NewStripeSandboxEnvironment(secretKey, publishableKey)
	} else {
		env = environment.NewStripeProductionEnvironment(secretKey, publishableKey)
	}

	return &StripeService{Client: http.DefaultClient, Environment: env}, nil
}
