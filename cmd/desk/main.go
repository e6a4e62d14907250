package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atelier-desk/internal/client"
	"atelier-desk/internal/config"
	"atelier-desk/internal/handler"
	"atelier-desk/internal/orderform"
	"atelier-desk/internal/router"
	"atelier-desk/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting atelier-desk server")

	// Initialize the back-office API client and its typed facades
	upstream := client.New(cfg.Upstream.BaseURL, cfg.Upstream.APIKey, cfg.Upstream.Timeout, logger)
	carrierClient := client.NewCarrierClient(upstream)
	ordersClient := client.NewOrdersClient(upstream)
	catalogClient := client.NewCatalogClient(upstream)
	settingsClient := client.NewSettingsClient(upstream)
	inventoryClient := client.NewInventoryClient(upstream)
	productionClient := client.NewProductionClient(upstream)

	// Initialize the order-form session registry
	registry := session.NewRegistry(cfg.Session.TTL, logger)
	defer registry.Shutdown()

	// Collaborators shared by every order-form session
	deps := orderform.Deps{
		Carrier:  carrierClient,
		Catalog:  catalogClient,
		Settings: settingsClient,
		Orders:   ordersClient,
	}
	formConfig := orderform.DefaultConfig()

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Form:       handler.NewFormHandler(registry, ordersClient, deps, formConfig, logger),
		Orders:     handler.NewOrdersHandler(ordersClient, logger),
		Catalog:    handler.NewCatalogHandler(catalogClient, logger),
		Carrier:    handler.NewCarrierHandler(carrierClient, logger),
		Settings:   handler.NewSettingsHandler(settingsClient, logger),
		Inventory:  handler.NewInventoryHandler(inventoryClient, logger),
		Production: handler.NewProductionHandler(productionClient, logger),
	}

	// Initialize router
	mux := router.New(handlers, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
