package service

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/companieshouse/payment-providers.api.ch.gov.uk/environment"
	"github.com/companieshouse/payment-providers.api.ch.gov.uk/models"
)

// PayPalService handles the specific functionality of building PayPal
// Orders v2 requests from the canonical order model. The canonical form is
// already PayPal's own request schema, so translation is near-identity and
// each operation only adds HTTP framing.
type PayPalService struct {
	Client      HTTPClient
	Environment *environment.PayPalEnvironment
}

// CreateOrder creates an order in PayPal from the canonical order form. The
// order is serialized before the request is sent, so later mutation of the
// order by the caller cannot change the in-flight request.
func (pp *PayPalService) CreateOrder(order *models.Order) (*models.ProviderResponse, error) {
	body, err := order.MarshalCanonical()
	if err != nil {
		return nil, err
	}

	request, err := pp.newRequest("POST", "/v2/checkout/orders", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	return pp.send(request)
}

// ShowOrder gets the details of an order from PayPal
func (pp *PayPalService) ShowOrder(orderID string) (*models.ProviderResponse, error) {
	request, err := pp.newRequest("GET", "/v2/checkout/orders/"+url.PathEscape(orderID), nil)
	if err != nil {
		return nil, err
	}

	return pp.send(request)
}

// CaptureOrder captures payment for an approved order
func (pp *PayPalService) CaptureOrder(orderID string) (*models.ProviderResponse, error) {
	request, err := pp.newRequest("POST", "/v2/checkout/orders/"+url.PathEscape(orderID)+"/capture", nil)
	if err != nil {
		return nil, err
	}

	return pp.send(request)
}

// AuthorizeOrder authorizes payment for an approved order, placing funds on
// hold. PayPal needs no extra parameters so params is ignored.
func (pp *PayPalService) AuthorizeOrder(orderID string, _ map[string]string) (*models.ProviderResponse, error) {
	request, err := pp.newRequest("POST", "/v2/checkout/orders/"+url.PathEscape(orderID)+"/authorize", nil)
	if err != nil {
		return nil, err
	}

	return pp.send(request)
}

// CaptureAuthorizeOrder captures previously authorized funds
func (pp *PayPalService) CaptureAuthorizeOrder(authorizationID string) (*models.ProviderResponse, error) {
	request, err := pp.newRequest("POST", "/v2/payments/authorizations/"+url.PathEscape(authorizationID)+"/capture", nil)
	if err != nil {
		return nil, err
	}

	return pp.send(request)
}

// CancelAuthorizeOrder voids a previously authorized payment
func (pp *PayPalService) CancelAuthorizeOrder(authorizationID string) (*models.ProviderResponse, error) {
	request, err := pp.newRequest("POST", "/v2/payments/authorizations/"+url.PathEscape(authorizationID)+"/void", nil)
	if err != nil {
		return nil, err
	}

	return pp.send(request)
}

// RefundPayment refunds a captured payment. The refund request is serialized
// before sending; a refund with no amount refunds the capture in full.
func (pp *PayPalService) RefundPayment(captureID string, refund *models.RefundRequest) (*models.ProviderResponse, error) {
	body, err := refund.MarshalCanonical()
	if err != nil {
		return nil, err
	}

	request, err := pp.newRequest("POST", "/v2/payments/captures/"+url.PathEscape(captureID)+"/refund", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	return pp.send(request)
}

// ShowRefund gets the details of a refund from PayPal. This reuses the order
// lookup path, so the result shape is an order resource rather than a single
// refund resource.
func (pp *PayPalService) ShowRefund(refundID string) (*models.ProviderResponse, error) {
	return pp.ShowOrder(refundID)
}

func (pp *PayPalService) newRequest(method, path string, body io.Reader) (*http.Request, error) {
	request, err := http.NewRequest(method, pp.Environment.BaseURL()+path, body)
	if err != nil {
		return nil, fmt.Errorf("error generating request for PayPal: [%v]", err)
	}

	request.Header.Add("Accept", "application/json")
	request.Header.Add("Content-Type", "application/json")
	request.Header.Add("Prefer", "return=representation")
	request.Header.Add("Authorization", "Basic "+pp.Environment.BasicAuthorization())

	return request, nil
}

func (pp *PayPalService) send(request *http.Request) (*models.ProviderResponse, error) {
	resp, err := pp.Client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error sending request to PayPal: [%w]", err)
	}

	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from PayPal: [%w]", err)
	}

	return &models.ProviderResponse{StatusCode: resp.StatusCode, Body: body}, nil
}
