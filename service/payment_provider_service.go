package service

import (
	"github.com/companieshouse/payment-providers.api.ch.gov.uk/models"
)

// PaymentProvider is an interface for all the requests to external payment
// providers. Every operation returns the provider's raw response; a non-2xx
// status from the gateway is returned as an ordinary ProviderResponse for
// the caller to interpret, never as an error.
type PaymentProvider interface {
	CreateOrder(order *models.Order) (*models.ProviderResponse, error)
	ShowOrder(orderID string) (*models.ProviderResponse, error)
	CaptureOrder(orderID string) (*models.ProviderResponse, error)
	AuthorizeOrder(orderID string, params map[string]string) (*models.ProviderResponse, error)
	CaptureAuthorizeOrder(authorizationID string) (*models.ProviderResponse, error)
	CancelAuthorizeOrder(authorizationID string) (*models.ProviderResponse, error)
	RefundPayment(paymentID string, refund *models.RefundRequest) (*models.ProviderResponse, error)
	// ShowRefund looks up refund details. The result shape differs per
	// provider: PayPal reuses the order lookup, Stripe returns the charge
	// list for the payment intent.
	ShowRefund(refundID string) (*models.ProviderResponse, error)
}
