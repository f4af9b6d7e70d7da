package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/caseshop/checkout-gateway/internal/application/services"
	"github.com/caseshop/checkout-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIdealRequest() *domain.PaymentRequest {
	return &domain.PaymentRequest{
		Method: domain.MethodIdeal,
		Bank:   "ing",
		Amount: domain.NewAmount("50"),
	}
}

func TestIdealValidate_MissingBank(t *testing.T) {
	h := services.NewIdealHandler(testPaymentsConfig(), testLogger())

	req := validIdealRequest()
	req.Bank = ""

	err := h.Validate(req)

	vErr, ok := domain.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeMissingIdealFields, vErr.Code)
}

func TestIdealValidate_MissingAmount(t *testing.T) {
	h := services.NewIdealHandler(testPaymentsConfig(), testLogger())

	req := validIdealRequest()
	req.Amount = domain.Amount{}

	err := h.Validate(req)

	vErr, ok := domain.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeMissingIdealFields, vErr.Code)
}

func TestIdealValidate_InvalidAmount(t *testing.T) {
	for _, raw := range []string{"0", "-5", "abc"} {
		t.Run(raw, func(t *testing.T) {
			h := services.NewIdealHandler(testPaymentsConfig(), testLogger())

			req := validIdealRequest()
			req.Amount = domain.NewAmount(raw)

			err := h.Validate(req)

			vErr, ok := domain.IsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, domain.CodeInvalidAmount, vErr.Code)
			assert.Equal(t, "Invalid amount for iDEAL payment", vErr.Message)
		})
	}
}

func TestIdealSubmit_BuildsRedirect(t *testing.T) {
	h := services.NewIdealHandler(testPaymentsConfig(), testLogger())

	resp, err := h.Submit(context.Background(), validIdealRequest())

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "redirect_pending", resp.Status)
	assert.True(t, strings.HasPrefix(resp.PaymentID, "ideal_"))
	assert.Equal(t, resp.PaymentID, resp.PaymentAccountReference)

	assert.True(t, strings.HasPrefix(resp.RedirectURL, "https://ideal-simulator.com/payment?"))
	assert.Contains(t, resp.RedirectURL, "amount=50.00")
	assert.Contains(t, resp.RedirectURL, "bank=ing")
	assert.Contains(t, resp.RedirectURL, "ref="+resp.PaymentID)
	assert.Contains(t, resp.RedirectURL, "return_url=http%3A%2F%2Flocalhost%3A3001%2Fsuccess")
}

func TestIdealSubmit_NoCurrencyConversion(t *testing.T) {
	// The redirect embeds the display amount as-is; EUR on the request
	// is ignored on this path.
	h := services.NewIdealHandler(testPaymentsConfig(), testLogger())

	req := validIdealRequest()
	req.Currency = domain.CurrencyEUR
	req.Amount = domain.NewAmount("200")

	resp, err := h.Submit(context.Background(), req)

	require.NoError(t, err)
	assert.Contains(t, resp.RedirectURL, "amount=200.00")
}
