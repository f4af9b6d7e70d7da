package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/caseshop/checkout-gateway/internal/application/services"
	"github.com/caseshop/checkout-gateway/internal/config"
	"github.com/caseshop/checkout-gateway/internal/domain"
	"github.com/caseshop/checkout-gateway/internal/infrastructure/processor"
	"github.com/caseshop/checkout-gateway/internal/interfaces/rest/handlers"
	"github.com/caseshop/checkout-gateway/internal/interfaces/rest/middleware"
	"github.com/stretchr/testify/require"
)

// TestGateway is the fully wired gateway running in-process against a
// stubbed processor endpoint.
type TestGateway struct {
	Server    *httptest.Server
	Processor *httptest.Server
}

// NewTestGateway wires the real service stack; processorHandler stands
// in for the external processor's payments API.
func NewTestGateway(t *testing.T, processorHandler http.HandlerFunc) *TestGateway {
	t.Helper()

	processorServer := httptest.NewServer(processorHandler)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	paymentsCfg := config.PaymentsConfig{
		ExchangeRateHKDToEUR: 0.11,
		MinExpiryYear:        2024,
		ReferencePrefix:      "test_cko_lp",
		RedirectBaseURL:      "https://ideal-simulator.com/payment",
		PublicBaseURL:        "http://localhost:3001",
	}

	processorClient := processor.NewProcessorClient(config.ProcessorConfig{
		BaseURL:             processorServer.URL,
		SecretKey:           "sk_sbox_test",
		ProcessingChannelID: "pc_test_channel",
		Timeout:             5 * time.Second,
	})

	paymentService := services.NewPaymentService(processorClient, paymentsCfg, logger)
	h := handlers.NewHandlers(paymentService, logger, false)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	handler := middleware.Recovery(logger, false)(mux)
	handler = middleware.Logging(logger)(handler)

	gatewayServer := httptest.NewServer(handler)

	t.Cleanup(func() {
		gatewayServer.Close()
		processorServer.Close()
	})

	return &TestGateway{
		Server:    gatewayServer,
		Processor: processorServer,
	}
}

// SubmitPayment posts a payment and decodes the response envelope.
func (g *TestGateway) SubmitPayment(t *testing.T, payload map[string]any) (int, *domain.ServiceResponse) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(g.Server.URL+"/api/payment", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var serviceResp domain.ServiceResponse
	require.NoError(t, json.Unmarshal(respBody, &serviceResp))

	return resp.StatusCode, &serviceResp
}
