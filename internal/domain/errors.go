package domain

import (
	"errors"
	"fmt"
)

// ValidationError is a rule violation found while normalizing a payment
// request. The message is client-facing and surfaced verbatim.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

const (
	CodeMissingMethod      = "MISSING_METHOD"
	CodeMissingCardFields  = "MISSING_CARD_FIELDS"
	CodeInvalidExpiry      = "INVALID_EXPIRY_FORMAT"
	CodeInvalidExpiryMonth = "INVALID_EXPIRY_MONTH"
	CodeInvalidExpiryYear  = "INVALID_EXPIRY_YEAR"
	CodeInvalidAmount      = "INVALID_AMOUNT"
	CodeInvalidAmountCents = "INVALID_AMOUNT_CENTS"
	CodeMissingIdealFields = "MISSING_IDEAL_FIELDS"
	CodeUnsupportedMethod  = "UNSUPPORTED_METHOD"
)

func NewMissingMethodError() *ValidationError {
	return &ValidationError{
		Code:    CodeMissingMethod,
		Message: "Payment method is required",
	}
}

func NewMissingCardFieldsError() *ValidationError {
	return &ValidationError{
		Code:    CodeMissingCardFields,
		Message: "Missing required card fields",
	}
}

func NewInvalidExpiryFormatError() *ValidationError {
	return &ValidationError{
		Code:    CodeInvalidExpiry,
		Message: "Invalid expiry date format. Expected MM/YY",
	}
}

func NewInvalidExpiryMonthError() *ValidationError {
	return &ValidationError{
		Code:    CodeInvalidExpiryMonth,
		Message: "Invalid month in expiry date",
	}
}

func NewInvalidExpiryYearError() *ValidationError {
	return &ValidationError{
		Code:    CodeInvalidExpiryYear,
		Message: "Invalid year in expiry date",
	}
}

func NewInvalidAmountError() *ValidationError {
	return &ValidationError{
		Code:    CodeInvalidAmount,
		Message: "Invalid amount provided",
	}
}

func NewInvalidIdealAmountError() *ValidationError {
	return &ValidationError{
		Code:    CodeInvalidAmount,
		Message: "Invalid amount for iDEAL payment",
	}
}

func NewInvalidAmountCentsError() *ValidationError {
	return &ValidationError{
		Code:    CodeInvalidAmountCents,
		Message: "Invalid amount - must be a positive number",
	}
}

func NewMissingIdealFieldsError() *ValidationError {
	return &ValidationError{
		Code:    CodeMissingIdealFields,
		Message: "Missing required iDEAL fields",
	}
}

// NewUnsupportedMethodError carries the offending method value so the
// client can see what was rejected.
func NewUnsupportedMethodError(method string) *ValidationError {
	return &ValidationError{
		Code:    CodeUnsupportedMethod,
		Message: fmt.Sprintf("Unsupported payment method: %s", method),
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	ok := errors.As(err, &vErr)
	return vErr, ok
}
