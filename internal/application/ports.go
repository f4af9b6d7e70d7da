package application

import "context"

// ProcessorClient is the port for the external payment processor.
// Implementations perform exactly one attempt per call; retry and
// idempotency are out of scope for this gateway.
type ProcessorClient interface {
	Authorize(ctx context.Context, req AuthorizationRequest) (*AuthorizationResult, error)
}

// AuthorizationRequest is the processor-agnostic charge built from a
// normalized card payment. The infrastructure client adds the
// processor-specific envelope (capture flag, 3DS block, channel id).
type AuthorizationRequest struct {
	CardNumber       string
	CVV              string
	ExpiryMonth      int
	ExpiryYear       int
	AmountMinorUnits int64
	Currency         string
	Reference        string
}

// AuthorizationResult is the processor's view of an accepted charge.
type AuthorizationResult struct {
	ID                      string
	Status                  string
	Approved                bool
	Reference               string
	PaymentAccountReference string
}
