package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/payment-providers.api.ch.gov.uk/models"
	"github.com/companieshouse/payment-providers.api.ch.gov.uk/utils"
	"github.com/gorilla/mux"
)

// HandleCreateRefund initiates a refund of a captured payment with the
// configured payment provider. An omitted amount requests a full refund.
func HandleCreateRefund(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["paymentId"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("payment id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var incomingRefundRequest models.IncomingRefundRequest
	if req.Body != nil {
		err := json.NewDecoder(req.Body).Decode(&incomingRefundRequest)
		if err != nil && err != io.EOF {
			log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	refund, err := buildRefundRequest(incomingRefundRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error building refund request: [%v]", err))
		m := utils.NewMessageResponse(err.Error())
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	response, err := provider.RefundPayment(id, refund)
	if err != nil {
		handleProviderError(w, req, "error creating refund", err)
		return
	}

	log.InfoR(req, "Successful POST request for new refund", log.Data{"payment_id": id, "status": response.StatusCode})
	utils.WriteProviderResponse(w, req, response)
}

// HandleShowRefund retrieves refund details from the payment provider. The
// result shape differs per provider; the body is relayed as the provider
// returned it.
func HandleShowRefund(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["refundId"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("refund id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	response, err := provider.ShowRefund(id)
	if err != nil {
		handleProviderError(w, req, "error getting refund", err)
		return
	}

	utils.WriteProviderResponse(w, req, response)
}

func buildRefundRequest(incomingRefundRequest models.IncomingRefundRequest) (*models.RefundRequest, error) {
	refund := &models.RefundRequest{
		InvoiceID:   incomingRefundRequest.InvoiceID,
		NoteToPayer: incomingRefundRequest.NoteToPayer,
		Reason:      incomingRefundRequest.Reason,
	}

	// no amount means a full refund of the referenced payment
	if incomingRefundRequest.Amount != "" {
		amount, err := models.NewAmount(incomingRefundRequest.Amount, incomingRefundRequest.CurrencyCode)
		if err != nil {
			return nil, err
		}
		refund.Amount = amount
	}

	return refund, nil
}
