package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var currencyValidator = validator.New()

// PurchaseAmount is implemented by the amount representations a purchase unit
// accepts - a flat Amount or an AmountBreakdown with itemized components.
type PurchaseAmount interface {
	GetValue() string
	GetCurrencyCode() string
}

// Amount is a flat monetary amount, with the value held as a decimal string
// formatted to the currency's minor-unit precision.
type Amount struct {
	Value        string `json:"value"         validate:"required"`
	CurrencyCode string `json:"currency_code" validate:"required,iso4217"`
}

// NewAmount validates the value and currency code and returns an Amount with
// the value normalised to two minor-unit digits.
func NewAmount(value, currencyCode string) (*Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("amount [%s] format incorrect", value)
	}

	amount := &Amount{
		Value:        d.StringFixed(2),
		CurrencyCode: currencyCode,
	}

	if err = currencyValidator.Struct(amount); err != nil {
		return nil, fmt.Errorf("invalid amount: [%v]", err)
	}

	return amount, nil
}

// GetValue returns the amount value string
func (a *Amount) GetValue() string {
	return a.Value
}

// GetCurrencyCode returns the ISO-4217 currency code
func (a *Amount) GetCurrencyCode() string {
	return a.CurrencyCode
}

// AmountBreakdown is an alternate total-amount representation carrying
// itemized components that sum to the purchase unit total. It is accepted
// anywhere a purchase unit accepts an Amount.
type AmountBreakdown struct {
	Value        string     `json:"value"         validate:"required"`
	CurrencyCode string     `json:"currency_code" validate:"required,iso4217"`
	Breakdown    *Breakdown `json:"breakdown,omitempty"`
}

// Breakdown itemizes the components of an AmountBreakdown total
type Breakdown struct {
	ItemTotal *Amount `json:"item_total,omitempty"`
	TaxTotal  *Amount `json:"tax_total,omitempty"`
	Shipping  *Amount `json:"shipping,omitempty"`
	Discount  *Amount `json:"discount,omitempty"`
}

// NewAmountBreakdown returns an AmountBreakdown with the given total and no
// components; components are attached directly on the Breakdown field.
func NewAmountBreakdown(value, currencyCode string) (*AmountBreakdown, error) {
	total, err := NewAmount(value, currencyCode)
	if err != nil {
		return nil, err
	}

	return &AmountBreakdown{
		Value:        total.Value,
		CurrencyCode: total.CurrencyCode,
	}, nil
}

// GetValue returns the total amount value string
func (a *AmountBreakdown) GetValue() string {
	return a.Value
}

// GetCurrencyCode returns the ISO-4217 currency code
func (a *AmountBreakdown) GetCurrencyCode() string {
	return a.CurrencyCode
}

// ToMinorUnits converts a decimal amount string into an integer amount in the
// currency's minor unit, rounding half away from zero, e.g. "100.00" becomes
// 10000. Every currency is assumed to carry two minor-unit digits;
// zero-decimal currencies are not special-cased and convert lossily.
func ToMinorUnits(value string) (int64, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, fmt.Errorf("amount [%s] format incorrect", value)
	}
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
