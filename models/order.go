package models

import (
	"encoding/json"
	"errors"
)

// Intent is whether funds are captured immediately or merely authorized and
// held for a later capture.
type Intent string

const (
	// IntentCapture captures payment immediately after the customer pays
	IntentCapture Intent = "CAPTURE"

	// IntentAuthorize places funds on hold after the customer pays
	IntentAuthorize Intent = "AUTHORIZE"
)

var (
	// ErrInvalidIntent is returned for any intent other than CAPTURE or AUTHORIZE
	ErrInvalidIntent = errors.New("order intent must be CAPTURE or AUTHORIZE")

	// ErrTooManyPurchaseUnits is returned when a second purchase unit is added to an order
	ErrTooManyPurchaseUnits = errors.New("at present only 1 purchase unit is supported")

	// ErrMissingPurchaseUnit is returned when an order with no purchase units is serialized
	ErrMissingPurchaseUnit = errors.New("order must have at least one purchase unit")

	// ErrCurrencyMismatch is returned when an item currency differs from the purchase unit currency
	ErrCurrencyMismatch = errors.New("item currency does not match purchase unit currency")
)

// Item is a single product the customer purchases within a purchase unit
type Item struct {
	Name        string  `json:"name"`
	UnitAmount  *Amount `json:"unit_amount"`
	Quantity    string  `json:"quantity"`
	Description string  `json:"description,omitempty"`
	SKU         string  `json:"sku,omitempty"`
	Category    string  `json:"category,omitempty"`
}

// PurchaseUnit establishes a contract between a payer and the payee. Items
// are appended through AddItem so the single-currency invariant holds.
type PurchaseUnit struct {
	Amount      PurchaseAmount
	ReferenceID string
	items       []*Item
}

// NewPurchaseUnit returns a purchase unit for the given total amount
func NewPurchaseUnit(amount PurchaseAmount) *PurchaseUnit {
	return &PurchaseUnit{Amount: amount}
}

// AddItem appends an item to the purchase unit. Items in a different
// currency to the purchase unit total are rejected; multi-currency orders
// are not supported.
func (pu *PurchaseUnit) AddItem(item *Item) error {
	if item.UnitAmount == nil || item.UnitAmount.GetCurrencyCode() != pu.Amount.GetCurrencyCode() {
		return ErrCurrencyMismatch
	}

	pu.items = append(pu.items, item)

	return nil
}

// Items returns the items attached to the purchase unit
func (pu *PurchaseUnit) Items() []*Item {
	return pu.items
}

// MarshalJSON writes the purchase unit in its canonical wire form, omitting
// absent optional fields
func (pu *PurchaseUnit) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount      PurchaseAmount `json:"amount"`
		Items       []*Item        `json:"items,omitempty"`
		ReferenceID string         `json:"reference_id,omitempty"`
	}{
		Amount:      pu.Amount,
		Items:       pu.items,
		ReferenceID: pu.ReferenceID,
	})
}

// ApplicationContext carries presentation and redirect hints which are passed
// through to the provider opaquely
type ApplicationContext struct {
	BrandName          string `json:"brand_name,omitempty"`
	ShippingPreference string `json:"shipping_preference,omitempty"`
	UserAction         string `json:"user_action,omitempty"`
	ReturnURL          string `json:"return_url,omitempty"`
	CancelURL          string `json:"cancel_url,omitempty"`
}

// Order is the provider-neutral representation of a payment intent. ID and
// Status are server-assigned and read-only; the purchase unit list is a
// bounded sequence holding at most one unit.
type Order struct {
	ID     string
	Status string

	intent             Intent
	purchaseUnits      []*PurchaseUnit
	applicationContext *ApplicationContext
}

// NewOrder returns an order with the given intent
func NewOrder(intent Intent) (*Order, error) {
	o := &Order{}
	if err := o.SetIntent(intent); err != nil {
		return nil, err
	}
	return o, nil
}

// SetIntent sets the order intent, rejecting anything other than CAPTURE or AUTHORIZE
func (o *Order) SetIntent(intent Intent) error {
	if intent != IntentCapture && intent != IntentAuthorize {
		return ErrInvalidIntent
	}

	o.intent = intent

	return nil
}

// Intent returns the order intent
func (o *Order) Intent() Intent {
	return o.intent
}

// AddPurchaseUnit attaches a purchase unit to the order. At present only one
// purchase unit is supported, so a second call always fails.
func (o *Order) AddPurchaseUnit(pu *PurchaseUnit) error {
	if len(o.purchaseUnits) >= 1 {
		return ErrTooManyPurchaseUnits
	}

	o.purchaseUnits = append(o.purchaseUnits, pu)

	return nil
}

// PurchaseUnits returns the purchase units attached to the order
func (o *Order) PurchaseUnits() []*PurchaseUnit {
	return o.purchaseUnits
}

// SetApplicationContext sets the order application context
func (o *Order) SetApplicationContext(applicationContext *ApplicationContext) {
	o.applicationContext = applicationContext
}

// ApplicationContext returns the order application context, which may be nil
func (o *Order) ApplicationContext() *ApplicationContext {
	return o.applicationContext
}

// CanonicalOrder is the canonical wire form of an order. It is PayPal's
// Orders v2 create-order request schema.
type CanonicalOrder struct {
	Intent             Intent              `json:"intent"`
	PurchaseUnits      []*PurchaseUnit     `json:"purchase_units"`
	ApplicationContext *ApplicationContext `json:"application_context,omitempty"`
}

// CanonicalForm returns the canonical form of the order. Calling it is pure
// and repeatable; an order with no purchase units cannot be serialized.
func (o *Order) CanonicalForm() (*CanonicalOrder, error) {
	if len(o.purchaseUnits) == 0 {
		return nil, ErrMissingPurchaseUnit
	}

	return &CanonicalOrder{
		Intent:             o.intent,
		PurchaseUnits:      o.purchaseUnits,
		ApplicationContext: o.applicationContext,
	}, nil
}

// MarshalCanonical serializes the canonical form of the order as JSON
func (o *Order) MarshalCanonical() ([]byte, error) {
	canonical, err := o.CanonicalForm()
	if err != nil {
		return nil, err
	}
	return json.Marshal(canonical)
}
