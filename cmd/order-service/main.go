package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/vasiliy-maslov/order-service/internal/config"
	"github.com/vasiliy-maslov/order-service/internal/db"
	"github.com/vasiliy-maslov/order-service/internal/order"
	"github.com/vasiliy-maslov/order-service/internal/product"
	"github.com/vasiliy-maslov/order-service/internal/transport"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "order-service").Logger()

	// Money fields go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	log.Info().Msg("Order service starting...")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	mongoDB, err := db.NewMongo(connectCtx, cfg.Mongo)
	cancelConnect()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	productClient := product.NewClient(cfg.ProductService.BaseAddress, &http.Client{})
	repo := order.NewRepository(mongoDB.Database)
	svc := order.NewService(repo, productClient)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      transport.NewRouter(svc),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Info().Msg("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Shutdown failed")
	}

	mongoDB.Close(ctx)

	log.Info().Msg("Server stopped")
}
