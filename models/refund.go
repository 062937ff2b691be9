package models

import "encoding/json"

// RefundRequest holds the caller-supplied details of a refund. A nil Amount
// requests a full refund of the referenced payment, so omitting it is
// meaningful rather than an error.
type RefundRequest struct {
	Amount      *Amount `json:"amount,omitempty"`
	InvoiceID   string  `json:"invoice_id,omitempty"`
	NoteToPayer string  `json:"note_to_payer,omitempty"`
	Reason      string  `json:"reason,omitempty"`
}

// MarshalCanonical serializes the canonical form of the refund request as
// JSON, omitting absent optional fields. A full refund serializes to an
// empty object.
func (r *RefundRequest) MarshalCanonical() ([]byte, error) {
	return json.Marshal(r)
}
