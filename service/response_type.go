package service

import (
	"errors"

	"github.com/companieshouse/payment-providers.api.ch.gov.uk/models"
)

// ResponseType enumerates the outcome types the service layer reports to handlers
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// NotFound response
	NotFound

	// Success response
	Success
)

var vals = [...]string{
	"invalid-data",
	"error",
	"not-found",
	"success",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}

// ClassifyError maps an error from a provider operation to a ResponseType.
// Domain validation failures are InvalidData; anything else, including
// transport failures, is Error.
func ClassifyError(err error) ResponseType {
	switch {
	case errors.Is(err, models.ErrInvalidIntent),
		errors.Is(err, models.ErrTooManyPurchaseUnits),
		errors.Is(err, models.ErrMissingPurchaseUnit),
		errors.Is(err, models.ErrCurrencyMismatch),
		errors.Is(err, ErrEmptyOrder):
		return InvalidData
	default:
		return Error
	}
}
