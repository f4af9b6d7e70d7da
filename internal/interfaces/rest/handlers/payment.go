package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/caseshop/checkout-gateway/internal/application"
	"github.com/caseshop/checkout-gateway/internal/domain"
	"github.com/caseshop/checkout-gateway/internal/interfaces/rest"
	"github.com/caseshop/checkout-gateway/internal/metrics"
)

func (h *Handlers) HandlePayment(w http.ResponseWriter, r *http.Request) {
	var req domain.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger, h.debug)
		return
	}

	resp, err := h.payments.Process(r.Context(), &req)
	if err != nil {
		metrics.IncPayment(string(req.Method), "failed")
		rest.WriteError(w, err, h.logger, h.debug)
		return
	}

	metrics.IncPayment(string(req.Method), "succeeded")
	rest.WriteJSON(w, http.StatusOK, resp)
}
