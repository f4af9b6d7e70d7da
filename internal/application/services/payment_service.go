// Package services implements the payment submission and normalization
// pipeline between the untrusted client payload and the external
// processor.
package services

import (
	"context"
	"log/slog"

	"github.com/caseshop/checkout-gateway/internal/application"
	"github.com/caseshop/checkout-gateway/internal/config"
	"github.com/caseshop/checkout-gateway/internal/domain"
)

// MethodHandler is the common capability of a payment method: validate
// the raw request, then execute the method-specific submission flow.
// The set of handlers is closed at construction.
type MethodHandler interface {
	Validate(req *domain.PaymentRequest) error
	Submit(ctx context.Context, req *domain.PaymentRequest) (*domain.ServiceResponse, error)
}

type PaymentService struct {
	handlers map[domain.PaymentMethod]MethodHandler
	logger   *slog.Logger
}

func NewPaymentService(
	processor application.ProcessorClient,
	cfg config.PaymentsConfig,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		handlers: map[domain.PaymentMethod]MethodHandler{
			domain.MethodCard:  NewCardHandler(processor, cfg, logger),
			domain.MethodIdeal: NewIdealHandler(cfg, logger),
		},
		logger: logger,
	}
}

// Process is the single entry point for a payment submission. It routes
// the request to its method handler; validation failures short-circuit
// before any external call.
func (s *PaymentService) Process(ctx context.Context, req *domain.PaymentRequest) (*domain.ServiceResponse, error) {
	// Card number and cvv are logged as presence booleans only.
	s.logger.Info("payment request received",
		"method", req.Method,
		"number_present", req.Number != "",
		"cvv_present", req.CVV != "",
		"amount", req.Amount.String(),
		"currency", req.Currency,
		"bank", req.Bank,
	)

	if req.Method == "" {
		return nil, domain.NewMissingMethodError()
	}

	handler, ok := s.handlers[req.Method]
	if !ok {
		return nil, domain.NewUnsupportedMethodError(string(req.Method))
	}

	if err := handler.Validate(req); err != nil {
		return nil, err
	}

	return handler.Submit(ctx, req)
}
