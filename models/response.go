package models

// ProviderResponse is the uniform result of every payment provider
// operation: the gateway's HTTP status code and its raw body. A non-2xx
// status is an ordinary response for the caller to inspect, not an error;
// no decoding of the body is performed by this layer.
type ProviderResponse struct {
	StatusCode int
	Body       []byte
}

// IncomingOrderRequest is the request to create a payment order
type IncomingOrderRequest struct {
	Intent             string              `json:"intent"        validate:"required"`
	Amount             string              `json:"amount"        validate:"required"`
	CurrencyCode       string              `json:"currency_code" validate:"required"`
	ReferenceID        string              `json:"reference_id"`
	ApplicationContext *ApplicationContext `json:"application_context"`
}

// IncomingAuthorizeRequest carries the provider parameters needed to confirm
// an authorization
type IncomingAuthorizeRequest struct {
	PaymentMethod string `json:"payment_method"`
	ReturnURL     string `json:"return_url"`
}

// IncomingRefundRequest is the request to refund a payment. Amount and
// CurrencyCode may be omitted together to request a full refund.
type IncomingRefundRequest struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currency_code"`
	InvoiceID    string `json:"invoice_id"`
	NoteToPayer  string `json:"note_to_payer"`
	Reason       string `json:"reason"`
}
