package processor

import (
	"errors"
	"fmt"
)

// ProcessorError is a failed external call: either a non-2xx response
// or a network-level failure. StatusCode is 0 when no HTTP response was
// received.
type ProcessorError struct {
	StatusCode int
	Payload    any
	Message    string
}

func (e *ProcessorError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("processor request failed: %s", e.Message)
	}
	return fmt.Sprintf("processor returned status %d: %s", e.StatusCode, e.Message)
}

// Details is the diagnostic payload surfaced to the client: the
// processor's decoded error body when one was returned, otherwise the
// transport error message.
func (e *ProcessorError) Details() any {
	if e.Payload != nil {
		return e.Payload
	}
	return e.Message
}

func IsProcessorError(err error) (*ProcessorError, bool) {
	var pErr *ProcessorError
	ok := errors.As(err, &pErr)
	return pErr, ok
}
