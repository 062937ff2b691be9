package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/companieshouse/chs.go/log"

	"github.com/companieshouse/payment-providers.api.ch.gov.uk/config"
	"github.com/companieshouse/payment-providers.api.ch.gov.uk/handlers"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.Namespace = "payment-providers.api.ch.gov.uk"

	cfg, err := config.Get()
	if err != nil {
		log.Error(fmt.Errorf("error configuring service: %s. Exiting", err))
		os.Exit(1)
	}

	router := mux.NewRouter()
	if err = handlers.Register(router, cfg); err != nil {
		log.Error(err)
		os.Exit(1)
	}

	log.Info("Starting payment-providers.api.ch.gov.uk service")

	server := &http.Server{Addr: cfg.BindAddr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		return server.Shutdown(context.Background())
	})

	if err = eg.Wait(); err != nil {
		log.Error(err)
	}
	log.Trace("Exiting payment-providers.api.ch.gov.uk service")
}
