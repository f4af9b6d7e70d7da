// Package rest maps service outcomes and errors onto the client-facing
// JSON contract.
package rest

import (
	"log/slog"
	"net/http"

	"github.com/caseshop/checkout-gateway/internal/application"
	"github.com/caseshop/checkout-gateway/internal/domain"
	"github.com/caseshop/checkout-gateway/internal/infrastructure/processor"
)

// WriteError maps an error from the payment pipeline to an HTTP
// response. Validation failures surface their specific message with
// 400; processor failures surface the processor's status and payload;
// anything else is a generic 500 with detail only under debug.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger, debug bool) {
	if vErr, ok := domain.IsValidationError(err); ok {
		logger.Info("payment request rejected",
			"code", vErr.Code,
			"message", vErr.Message,
		)
		WriteJSON(w, http.StatusBadRequest, domain.ServiceResponse{
			Success: false,
			Error:   vErr.Message,
		})
		return
	}

	if pErr, ok := processor.IsProcessorError(err); ok {
		statusCode := pErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusInternalServerError
		}
		logger.Error("processor call failed",
			"status", pErr.StatusCode,
			"error", pErr.Message,
		)
		WriteJSON(w, statusCode, domain.ServiceResponse{
			Success: false,
			Error:   "Payment processing failed",
			Details: pErr.Details(),
		})
		return
	}

	if svcErr, ok := application.IsServiceError(err); ok {
		logger.Error("request failed",
			"code", svcErr.Code,
			"error", svcErr.Error(),
		)
		resp := domain.ServiceResponse{
			Success: false,
			Error:   svcErr.Message,
		}
		if debug && svcErr.Err != nil {
			resp.Details = svcErr.Err.Error()
		}
		WriteJSON(w, svcErr.HTTPStatus, resp)
		return
	}

	logger.Error("unexpected internal error", "error", err)
	resp := domain.ServiceResponse{
		Success: false,
		Error:   "Internal server error",
	}
	if debug {
		resp.Details = err.Error()
	}
	WriteJSON(w, http.StatusInternalServerError, resp)
}
