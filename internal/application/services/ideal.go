package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/url"

	"github.com/caseshop/checkout-gateway/internal/config"
	"github.com/caseshop/checkout-gateway/internal/domain"
)

// IdealHandler synthesizes a bank-redirect outcome without contacting
// any external processor. The amount stays in the base currency's
// display form; no currency or minor-unit conversion happens on this
// path because no minor-unit-denominated API is called.
type IdealHandler struct {
	cfg    config.PaymentsConfig
	logger *slog.Logger
}

func NewIdealHandler(cfg config.PaymentsConfig, logger *slog.Logger) *IdealHandler {
	return &IdealHandler{
		cfg:    cfg,
		logger: logger,
	}
}

func (h *IdealHandler) Validate(req *domain.PaymentRequest) error {
	if req.Bank == "" || !req.Amount.Present() {
		return domain.NewMissingIdealFieldsError()
	}

	amount, err := req.Amount.Float()
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return domain.NewInvalidIdealAmountError()
	}

	return nil
}

func (h *IdealHandler) Submit(ctx context.Context, req *domain.PaymentRequest) (*domain.ServiceResponse, error) {
	if err := h.Validate(req); err != nil {
		return nil, err
	}
	amount, _ := req.Amount.Float()

	reference := newReference("ideal")

	query := url.Values{}
	query.Set("amount", fmt.Sprintf("%.2f", amount))
	query.Set("bank", req.Bank)
	query.Set("ref", reference)
	query.Set("return_url", h.cfg.PublicBaseURL+"/success")
	redirectURL := h.cfg.RedirectBaseURL + "?" + query.Encode()

	h.logger.Info("iDEAL redirect created",
		"bank", req.Bank,
		"reference", reference,
	)

	return &domain.ServiceResponse{
		Success:                 true,
		PaymentID:               reference,
		PaymentAccountReference: reference,
		Status:                  "redirect_pending",
		RedirectURL:             redirectURL,
	}, nil
}
