package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/payment-providers.api.ch.gov.uk/models"
	"github.com/companieshouse/payment-providers.api.ch.gov.uk/service"
	"github.com/companieshouse/payment-providers.api.ch.gov.uk/utils"
	"github.com/gorilla/mux"

	"gopkg.in/go-playground/validator.v9"
)

// HandleCreateOrder builds a canonical order from the request body and
// creates it with the configured payment provider
func HandleCreateOrder(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var incomingOrderRequest models.IncomingOrderRequest
	err := requestDecoder.Decode(&incomingOrderRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validateOrderCreate(incomingOrderRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to create order: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := buildOrder(incomingOrderRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error building order: [%v]", err))
		m := utils.NewMessageResponse(err.Error())
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	response, err := provider.CreateOrder(order)
	if err != nil {
		handleProviderError(w, req, "error creating order", err)
		return
	}

	log.InfoR(req, "Successful POST request for new order", log.Data{"status": response.StatusCode})
	utils.WriteProviderResponse(w, req, response)
}

// HandleShowOrder retrieves the details of an order from the payment provider
func HandleShowOrder(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["paymentId"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("payment id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	response, err := provider.ShowOrder(id)
	if err != nil {
		handleProviderError(w, req, "error getting order", err)
		return
	}

	utils.WriteProviderResponse(w, req, response)
}

// HandleCaptureOrder captures payment for an approved order
func HandleCaptureOrder(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["paymentId"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("payment id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	response, err := provider.CaptureOrder(id)
	if err != nil {
		handleProviderError(w, req, "error capturing order", err)
		return
	}

	log.InfoR(req, "Successful POST request to capture order", log.Data{"payment_id": id, "status": response.StatusCode})
	utils.WriteProviderResponse(w, req, response)
}

// HandleAuthorizeOrder authorizes payment for an approved order. Provider
// parameters such as payment_method and return_url are taken from the
// request body when present.
func HandleAuthorizeOrder(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["paymentId"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("payment id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	params := map[string]string{}
	if req.Body != nil {
		var incomingAuthorizeRequest models.IncomingAuthorizeRequest
		if err := json.NewDecoder(req.Body).Decode(&incomingAuthorizeRequest); err == nil {
			if incomingAuthorizeRequest.PaymentMethod != "" {
				params["payment_method"] = incomingAuthorizeRequest.PaymentMethod
			}
			if incomingAuthorizeRequest.ReturnURL != "" {
				params["return_url"] = incomingAuthorizeRequest.ReturnURL
			}
		}
	}

	response, err := provider.AuthorizeOrder(id, params)
	if err != nil {
		handleProviderError(w, req, "error authorizing order", err)
		return
	}

	log.InfoR(req, "Successful POST request to authorize order", log.Data{"payment_id": id, "status": response.StatusCode})
	utils.WriteProviderResponse(w, req, response)
}

// HandleCancelAuthorizeOrder cancels a previously authorized payment
func HandleCancelAuthorizeOrder(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["paymentId"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("payment id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	response, err := provider.CancelAuthorizeOrder(id)
	if err != nil {
		handleProviderError(w, req, "error cancelling authorized order", err)
		return
	}

	log.InfoR(req, "Successful POST request to cancel authorized order", log.Data{"payment_id": id, "status": response.StatusCode})
	utils.WriteProviderResponse(w, req, response)
}

func validateOrderCreate(incomingOrderRequest models.IncomingOrderRequest) error {
	validate := validator.New()
	return validate.Struct(incomingOrderRequest)
}

func buildOrder(incomingOrderRequest models.IncomingOrderRequest) (*models.Order, error) {
	order, err := models.NewOrder(models.Intent(incomingOrderRequest.Intent))
	if err != nil {
		return nil, err
	}

	amount, err := models.NewAmount(incomingOrderRequest.Amount, incomingOrderRequest.CurrencyCode)
	if err != nil {
		return nil, err
	}

	purchaseUnit := models.NewPurchaseUnit(amount)
	purchaseUnit.ReferenceID = incomingOrderRequest.ReferenceID

	if err = order.AddPurchaseUnit(purchaseUnit); err != nil {
		return nil, err
	}

	if incomingOrderRequest.ApplicationContext != nil {
		order.SetApplicationContext(incomingOrderRequest.ApplicationContext)
	}

	return order, nil
}

func handleProviderError(w http.ResponseWriter, req *http.Request, message string, err error) {
	responseType := service.ClassifyError(err)
	log.ErrorR(req, fmt.Errorf("%s: [%v]", message, err), log.Data{"service_response_type": responseType.String()})

	switch responseType {
	case service.InvalidData:
		w.WriteHeader(http.StatusBadRequest)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
