// Package domain holds the payment request/response shapes exchanged with
// the checkout client and the normalized charge derived from them.
package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// PaymentMethod identifies one of the supported checkout methods.
type PaymentMethod string

const (
	MethodCard  PaymentMethod = "card"
	MethodIdeal PaymentMethod = "ideal"
)

// Currency is the ISO 4217 code of a charge. HKD is the base display
// currency of the shop; EUR is the only conversion target.
type Currency string

const (
	CurrencyHKD Currency = "HKD"
	CurrencyEUR Currency = "EUR"
)

// Amount is a decimal amount as submitted by the client. The wire value
// may be either a JSON number or a numeric string; both decode into the
// raw textual form and are parsed during validation.
type Amount struct {
	raw string
}

// NewAmount builds an Amount from its textual form.
func NewAmount(s string) Amount {
	return Amount{raw: strings.TrimSpace(s)}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	token := strings.TrimSpace(string(data))
	if token == "null" {
		return nil
	}
	if strings.HasPrefix(token, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		a.raw = strings.TrimSpace(s)
		return nil
	}
	a.raw = token
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(a.raw)
}

// Present reports whether the client supplied a non-empty value.
func (a Amount) Present() bool {
	return a.raw != ""
}

// Float parses the raw value as a decimal number.
func (a Amount) Float() (float64, error) {
	return strconv.ParseFloat(a.raw, 64)
}

func (a Amount) String() string {
	return a.raw
}

// PaymentRequest is the untrusted payload received from the checkout
// form. Fields are method-specific: number/expiry/cvv/currency apply to
// card payments, bank to iDEAL; amount applies to both.
type PaymentRequest struct {
	Method   PaymentMethod `json:"method"`
	Number   string        `json:"number"`
	Expiry   string        `json:"expiry"`
	CVV      string        `json:"cvv"`
	Amount   Amount        `json:"amount"`
	Currency Currency      `json:"currency"`
	Bank     string        `json:"bank"`
}

// NormalizedCharge is the validated, unit-converted form of a card
// payment request. It is derived per request, sent to the processor
// once and discarded.
type NormalizedCharge struct {
	AmountMinorUnits int64
	Currency         Currency
	Reference        string
	CardNumber       string
	CVV              string
	ExpiryMonth      int
	ExpiryYear       int
}

// ServiceResponse is the client-facing outcome of a payment submission.
// Field spelling mirrors the checkout client contract: paymentId is
// camel-cased while payment_account_reference and redirect_url are
// snake-cased.
type ServiceResponse struct {
	Success                 bool   `json:"success"`
	PaymentID               string `json:"paymentId,omitempty"`
	PaymentAccountReference string `json:"payment_account_reference,omitempty"`
	Status                  string `json:"status,omitempty"`
	Approved                *bool  `json:"approved,omitempty"`
	RedirectURL             string `json:"redirect_url,omitempty"`
	Error                   string `json:"error,omitempty"`
	Details                 any    `json:"details,omitempty"`
}
