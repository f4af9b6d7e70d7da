package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caseshop/checkout-gateway/internal/application/services"
	"github.com/caseshop/checkout-gateway/internal/config"
	"github.com/caseshop/checkout-gateway/internal/infrastructure/processor"
	"github.com/caseshop/checkout-gateway/internal/interfaces/rest/handlers"
	"github.com/caseshop/checkout-gateway/internal/interfaces/rest/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting checkout gateway",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"processor_base_url", cfg.Processor.BaseURL,
	)

	processorClient := processor.NewProcessorClient(cfg.Processor)
	paymentService := services.NewPaymentService(processorClient, cfg.Payments, logger)

	h := handlers.NewHandlers(paymentService, logger, cfg.Primary.Debug)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	router := http.Handler(mux)

	handler := middleware.Recovery(logger, cfg.Primary.Debug)(router)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)
	handler = cors.New(cors.Options{
		AllowedOrigins: []string{cfg.Payments.PublicBaseURL},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
