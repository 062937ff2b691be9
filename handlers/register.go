package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/payment-providers.api.ch.gov.uk/config"
	"github.com/companieshouse/payment-providers.api.ch.gov.uk/service"
	"github.com/gorilla/mux"
)

var provider service.PaymentProvider

// Register defines the route mappings for the main router. The payment
// provider is constructed once from config; all handlers share it.
func Register(mainRouter *mux.Router, cfg *config.Config) error {
	p, err := service.CreatePaymentProvider(cfg.PaymentDriver, cfg.PaymentEnvironment, cfg.ProviderConfig())
	if err != nil {
		return fmt.Errorf("error creating payment provider: [%w]", err)
	}
	provider = p

	log.Info("payment provider configured", log.Data{"driver": cfg.PaymentDriver, "environment": cfg.PaymentEnvironment})

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	mainRouter.HandleFunc("/payments", HandleCreateOrder).Methods("POST").Name("create-payment")
	mainRouter.HandleFunc("/payments/{paymentId}", HandleShowOrder).Methods("GET").Name("get-payment")
	mainRouter.HandleFunc("/payments/{paymentId}/capture", HandleCaptureOrder).Methods("POST").Name("capture-payment")
	mainRouter.HandleFunc("/payments/{paymentId}/authorize", HandleAuthorizeOrder).Methods("POST").Name("authorize-payment")
	mainRouter.HandleFunc("/payments/{paymentId}/cancel", HandleCancelAuthorizeOrder).Methods("POST").Name("cancel-authorize")
	mainRouter.HandleFunc("/payments/{paymentId}/refunds", HandleCreateRefund).Methods("POST").Name("create-refund")
	mainRouter.HandleFunc("/refunds/{refundId}", HandleShowRefund).Methods("GET").Name("get-refund")

	return nil
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
