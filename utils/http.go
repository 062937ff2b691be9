package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/payment-providers.api.ch.gov.uk/models"
)

// ResponseResource is the object returned in an error case
type ResponseResource struct {
	Message string `json:"message"`
}

// NewMessageResponse - convenience function for creating a response resource
func NewMessageResponse(message string) *ResponseResource {
	return &ResponseResource{Message: message}
}

// WriteJSONWithStatus writes the interface as a json string with the supplied status.
func WriteJSONWithStatus(w http.ResponseWriter, r *http.Request, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error writing response: %v", err))
	}
}

// WriteProviderResponse relays a payment provider response to the caller
// unmodified: the gateway's status code and raw body, including provider
// rejections, which the caller inspects rather than this layer.
func WriteProviderResponse(w http.ResponseWriter, r *http.Request, res *models.ProviderResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	if _, err := w.Write(res.Body); err != nil {
		log.ErrorR(r, fmt.Errorf("error writing response: %v", err))
	}
}
