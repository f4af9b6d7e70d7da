package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/caseshop/checkout-gateway/internal/domain"
	"github.com/caseshop/checkout-gateway/web"
)

// PaymentService is the single entry point into the payment pipeline.
type PaymentService interface {
	Process(ctx context.Context, req *domain.PaymentRequest) (*domain.ServiceResponse, error)
}

type Handlers struct {
	payments PaymentService
	logger   *slog.Logger
	debug    bool
}

func NewHandlers(payments PaymentService, logger *slog.Logger, debug bool) *Handlers {
	return &Handlers{
		payments: payments,
		logger:   logger,
		debug:    debug,
	}
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/payment", h.HandlePayment)
	mux.HandleFunc("GET /health", h.HandleHealth)
	mux.HandleFunc("GET /{$}", h.HandleIndex)
	mux.HandleFunc("GET /success", h.HandleSuccess)
	mux.Handle("GET /static/", http.FileServerFS(web.Assets))
}
