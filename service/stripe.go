package service

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/companieshouse/payment-providers.api.ch.gov.uk/environment"
	"github.com/companieshouse/payment-providers.api.ch.gov.uk/models"
)

const (
	stripeVersion   = "2023-10-16"
	stripeUserAgent = "payment-providers.api.ch.gov.uk (stripe)"
)

// ErrEmptyOrder is returned when an order with no purchase unit reaches the
// Stripe adapter, which needs one to build a payment intent
var ErrEmptyOrder = errors.New("order passed to Stripe must have at least one purchase unit")

// StripeService handles the specific functionality of translating the
// canonical order model into Stripe Payment Intents requests. Stripe has no
// purchase unit concept and takes integer amounts in the currency's minor
// unit as form-encoded bodies, so this is a genuine schema conversion rather
// than a passthrough.
type StripeService struct {
	Client      HTTPClient
	Environment *environment.StripeEnvironment
}

// CreateOrder creates a payment intent in Stripe from the order's single
// purchase unit. The amount conversion assumes two minor-unit digits for
// every currency; zero-decimal currencies convert lossily.
func (s *StripeService) CreateOrder(order *models.Order) (*models.ProviderResponse, error) {
	form, err := transformOrderForStripe(order)
	if err != nil {
		return nil, err
	}

	request, err := s.newRequest("POST", "/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	return s.send(request)
}

// ShowOrder gets the details of a payment intent from Stripe
func (s *StripeService) ShowOrder(orderID string) (*models.ProviderResponse, error) {
	request, err := s.newRequest("GET", "/v1/payment_intents/"+url.PathEscape(orderID), nil)
	if err != nil {
		return nil, err
	}

	return s.send(request)
}

// CaptureOrder captures the funds of a payment intent
func (s *StripeService) CaptureOrder(orderID string) (*models.ProviderResponse, error) {
	request, err := s.newRequest("POST", "/v1/payment_intents/"+url.PathEscape(orderID)+"/capture", nil)
	if err != nil {
		return nil, err
	}

	return s.send(request)
}

// AuthorizeOrder confirms a payment intent. Stripe requires a payment method
// and return URL from the caller; there is no default for either.
func (s *StripeService) AuthorizeOrder(orderID string, params map[string]string) (*models.ProviderResponse, error) {
	form := url.Values{}
	for _, key := range []string{"payment_method", "return_url"} {
		value, ok := params[key]
		if !ok || value == "" {
			return nil, fmt.Errorf("missing required Stripe parameter [%s]", key)
		}
		form.Set(key, value)
	}

	request, err := s.newRequest("POST", "/v1/payment_intents/"+url.PathEscape(orderID)+"/confirm", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	return s.send(request)
}

// CaptureAuthorizeOrder captures the funds of a payment intent. Stripe makes
// no distinction between capturing an order and capturing an authorization;
// both contract operations map to the same endpoint.
func (s *StripeService) CaptureAuthorizeOrder(authorizationID string) (*models.ProviderResponse, error) {
	return s.CaptureOrder(authorizationID)
}

// CancelAuthorizeOrder cancels a payment intent
func (s *StripeService) CancelAuthorizeOrder(authorizationID string) (*models.ProviderResponse, error) {
	request, err := s.newRequest("POST", "/v1/payment_intents/"+url.PathEscape(authorizationID)+"/cancel", nil)
	if err != nil {
		return nil, err
	}

	return s.send(request)
}

// RefundPayment creates a refund against a payment intent. The refund is
// translated to form fields before sending; invoice and payer note details
// travel as metadata keys.
func (s *StripeService) RefundPayment(paymentID string, refund *models.RefundRequest) (*models.ProviderResponse, error) {
	form, err := transformRefundForStripe(paymentID, refund)
	if err != nil {
		return nil, err
	}

	request, err := s.newRequest("POST", "/v1/refunds", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	return s.send(request)
}

// ShowRefund lists the charges for a payment intent. Stripe has no single
// refund lookup matching PayPal's, so the result is a charge list rather
// than one refund resource.
func (s *StripeService) ShowRefund(refundID string) (*models.ProviderResponse, error) {
	query := url.Values{}
	query.Set("payment_intent", refundID)

	request, err := s.newRequest("GET", "/v1/charges?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	return s.send(request)
}

func transformOrderForStripe(order *models.Order) (url.Values, error) {
	purchaseUnits := order.PurchaseUnits()
	if len(purchaseUnits) == 0 {
		return nil, ErrEmptyOrder
	}

	amount := purchaseUnits[0].Amount
	minorUnits, err := models.ToMinorUnits(amount.GetValue())
	if err != nil {
		return nil, err
	}

	captureMethod := "manual"
	if order.Intent() == models.IntentCapture {
		captureMethod = "automatic"
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(minorUnits, 10))
	form.Set("currency", strings.ToLower(amount.GetCurrencyCode()))
	form.Set("capture_method", captureMethod)

	if order.ApplicationContext() != nil {
		form.Set("description", "Payment for order")
	}

	return form, nil
}

func transformRefundForStripe(paymentID string, refund *models.RefundRequest) (url.Values, error) {
	form := url.Values{}
	form.Set("payment_intent", paymentID)

	if refund.Amount != nil {
		minorUnits, err := models.ToMinorUnits(refund.Amount.GetValue())
		if err != nil {
			return nil, err
		}
		form.Set("amount", strconv.FormatInt(minorUnits, 10))
	}

	if refund.Reason != "" {
		form.Set("reason", refund.Reason)
	}

	if refund.InvoiceID != "" {
		form.Set("metadata[invoice_id]", refund.InvoiceID)
	}

	if refund.NoteToPayer != "" {
		form.Set("metadata[note_to_payer]", refund.NoteToPayer)
	}

	return form, nil
}

func (s *StripeService) newRequest(method, path string, body io.Reader) (*http.Request, error) {
	request, err := http.NewRequest(method, s.Environment.BaseURL()+path, body)
	if err != nil {
		return nil, fmt.Errorf("error generating request for Stripe: [%v]", err)
	}

	request.Header.Add("Accept", "application/json")
	request.Header.Add("Authorization", "Bearer "+s.Environment.SecretKey())
	request.Header.Add("Stripe-Version", stripeVersion)
	request.Header.Add("User-Agent", stripeUserAgent)
	if body != nil {
		request.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	}

	return request, nil
}

func (s *StripeService) send(request *http.Request) (*models.ProviderResponse, error) {
	resp, err := s.Client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error sending request to Stripe: [%w]", err)
	}

	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from Stripe: [%w]", err)
	}

	return &models.ProviderResponse{StatusCode: resp.StatusCode, Body: body}, nil
}
