package services

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/caseshop/checkout-gateway/internal/application"
	"github.com/caseshop/checkout-gateway/internal/config"
	"github.com/caseshop/checkout-gateway/internal/domain"
)

// CardHandler normalizes card payment requests and submits the
// resulting charge to the external processor.
type CardHandler struct {
	processor application.ProcessorClient
	cfg       config.PaymentsConfig
	logger    *slog.Logger
}

func NewCardHandler(
	processor application.ProcessorClient,
	cfg config.PaymentsConfig,
	logger *slog.Logger,
) *CardHandler {
	return &CardHandler{
		processor: processor,
		cfg:       cfg,
		logger:    logger,
	}
}

func (h *CardHandler) Validate(req *domain.PaymentRequest) error {
	_, err := h.Normalize(req)
	return err
}

// Normalize applies the card validation rules in order, short-circuiting
// on the first violation, and derives the minor-unit charge.
//
// Currency conversion (HKD -> EUR) happens exactly once, before the
// minor-unit conversion.
func (h *CardHandler) Normalize(req *domain.PaymentRequest) (*domain.NormalizedCharge, error) {
	if req.Number == "" || req.Expiry == "" || req.CVV == "" || !req.Amount.Present() {
		return nil, domain.NewMissingCardFieldsError()
	}

	parts := strings.Split(req.Expiry, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, domain.NewInvalidExpiryFormatError()
	}

	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || month < 1 || month > 12 {
		return nil, domain.NewInvalidExpiryMonthError()
	}

	yy, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, domain.NewInvalidExpiryYearError()
	}
	year := 2000 + yy
	if year < h.cfg.MinExpiryYear {
		return nil, domain.NewInvalidExpiryYearError()
	}

	amount, err := req.Amount.Float()
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, domain.NewInvalidAmountError()
	}

	currency := req.Currency
	if currency == "" {
		currency = domain.CurrencyHKD
	}
	if currency == domain.CurrencyEUR {
		amount = math.Round(amount*h.cfg.ExchangeRateHKDToEUR*100) / 100
	}

	minorUnits := int64(math.Round(amount * 100))
	if minorUnits <= 0 {
		return nil, domain.NewInvalidAmountCentsError()
	}

	return &domain.NormalizedCharge{
		AmountMinorUnits: minorUnits,
		Currency:         currency,
		Reference:        newReference(h.cfg.ReferencePrefix),
		CardNumber:       strings.ReplaceAll(req.Number, " ", ""),
		CVV:              req.CVV,
		ExpiryMonth:      month,
		ExpiryYear:       year,
	}, nil
}

// Submit sends the normalized charge to the processor as a single
// authorization-only attempt and maps the result for the client.
func (h *CardHandler) Submit(ctx context.Context, req *domain.PaymentRequest) (*domain.ServiceResponse, error) {
	charge, err := h.Normalize(req)
	if err != nil {
		return nil, err
	}

	h.logger.Info("submitting card authorization",
		"amount_minor_units", charge.AmountMinorUnits,
		"currency", charge.Currency,
		"reference", charge.Reference,
	)

	result, err := h.processor.Authorize(ctx, application.AuthorizationRequest{
		CardNumber:       charge.CardNumber,
		CVV:              charge.CVV,
		ExpiryMonth:      charge.ExpiryMonth,
		ExpiryYear:       charge.ExpiryYear,
		AmountMinorUnits: charge.AmountMinorUnits,
		Currency:         string(charge.Currency),
		Reference:        charge.Reference,
	})
	if err != nil {
		return nil, err
	}

	paymentAccountRef := result.PaymentAccountReference
	if paymentAccountRef == "" {
		paymentAccountRef = result.Reference
	}
	if paymentAccountRef == "" {
		paymentAccountRef = charge.Reference
	}

	approved := result.Approved
	return &domain.ServiceResponse{
		Success:                 true,
		PaymentID:               result.ID,
		PaymentAccountReference: paymentAccountRef,
		Status:                  result.Status,
		Approved:                &approved,
	}, nil
}
