package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/caseshop/checkout-gateway/internal/domain"
	"github.com/caseshop/checkout-gateway/internal/infrastructure/processor"
)

type mockPaymentService struct {
	processFn func(ctx context.Context, req *domain.PaymentRequest) (*domain.ServiceResponse, error)
}

func (m *mockPaymentService) Process(ctx context.Context, req *domain.PaymentRequest) (*domain.ServiceResponse, error) {
	return m.processFn(ctx, req)
}

func newTestHandlers(svc PaymentService) *Handlers {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewHandlers(svc, logger, false)
}

func postPayment(t *testing.T, h *Handlers, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/payment", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.HandlePayment(rr, req)
	return rr
}

func TestHandlePayment_Success(t *testing.T) {
	approved := true
	mock := &mockPaymentService{
		processFn: func(ctx context.Context, req *domain.PaymentRequest) (*domain.ServiceResponse, error) {
			if req.Method != domain.MethodCard {
				t.Errorf("expected method card, got %s", req.Method)
			}
			return &domain.ServiceResponse{
				Success:                 true,
				PaymentID:               "pay_123",
				PaymentAccountReference: "par_456",
				Status:                  "Authorized",
				Approved:                &approved,
			}, nil
		},
	}
	h := newTestHandlers(mock)

	rr := postPayment(t, h, `{"method":"card","number":"4242 4242 4242 4242","expiry":"12/26","cvv":"100","amount":"10"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var resp domain.ServiceResponse
	json.Unmarshal(rr.Body.Bytes(), &resp)

	if !resp.Success {
		t.Errorf("expected success true, got false")
	}
	if resp.PaymentID != "pay_123" {
		t.Errorf("expected paymentId pay_123, got %s", resp.PaymentID)
	}
	if resp.Status != "Authorized" {
		t.Errorf("expected status Authorized, got %s", resp.Status)
	}
}

func TestHandlePayment_ValidationError(t *testing.T) {
	mock := &mockPaymentService{
		processFn: func(ctx context.Context, req *domain.PaymentRequest) (*domain.ServiceResponse, error) {
			return nil, domain.NewInvalidAmountError()
		},
	}
	h := newTestHandlers(mock)

	rr := postPayment(t, h, `{"method":"card","number":"4242","expiry":"12/26","cvv":"100","amount":"-5"}`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}

	var resp domain.ServiceResponse
	json.Unmarshal(rr.Body.Bytes(), &resp)

	if resp.Success {
		t.Errorf("expected success false")
	}
	if resp.Error != "Invalid amount provided" {
		t.Errorf("unexpected error message: %s", resp.Error)
	}
}

func TestHandlePayment_ProcessorErrorKeepsStatus(t *testing.T) {
	mock := &mockPaymentService{
		processFn: func(ctx context.Context, req *domain.PaymentRequest) (*domain.ServiceResponse, error) {
			return nil, &processor.ProcessorError{
				StatusCode: http.StatusPaymentRequired,
				Payload:    map[string]any{"message": "card declined"},
			}
		},
	}
	h := newTestHandlers(mock)

	rr := postPayment(t, h, `{"method":"card","number":"4242","expiry":"12/26","cvv":"100","amount":"10"}`)

	if rr.Code != http.StatusPaymentRequired {
		t.Fatalf("expected status 402, got %d", rr.Code)
	}

	var resp struct {
		Success bool           `json:"success"`
		Error   string         `json:"error"`
		Details map[string]any `json:"details"`
	}
	json.Unmarshal(rr.Body.Bytes(), &resp)

	if resp.Success {
		t.Errorf("expected success false")
	}
	if resp.Error != "Payment processing failed" {
		t.Errorf("unexpected error message: %s", resp.Error)
	}
	if resp.Details["message"] != "card declined" {
		t.Errorf("expected declined detail, got %v", resp.Details)
	}
}

func TestHandlePayment_InternalFaultIsGeneric(t *testing.T) {
	mock := &mockPaymentService{
		processFn: func(ctx context.Context, req *domain.PaymentRequest) (*domain.ServiceResponse, error) {
			return nil, errors.New("pipeline exploded: secret detail")
		},
	}
	h := newTestHandlers(mock)

	rr := postPayment(t, h, `{"method":"card"}`)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "secret detail") {
		t.Errorf("internal detail leaked without debug flag: %s", rr.Body.String())
	}
}

func TestHandlePayment_InternalFaultDetailUnderDebug(t *testing.T) {
	mock := &mockPaymentService{
		processFn: func(ctx context.Context, req *domain.PaymentRequest) (*domain.ServiceResponse, error) {
			return nil, errors.New("pipeline exploded")
		},
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	h := NewHandlers(mock, logger, true)

	rr := postPayment(t, h, `{"method":"card"}`)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "pipeline exploded") {
		t.Errorf("expected detail under debug, got %s", rr.Body.String())
	}
}

func TestHandlePayment_MalformedBody(t *testing.T) {
	mock := &mockPaymentService{
		processFn: func(ctx context.Context, req *domain.PaymentRequest) (*domain.ServiceResponse, error) {
			t.Fatal("service must not be called for malformed JSON")
			return nil, nil
		},
	}
	h := newTestHandlers(mock)

	rr := postPayment(t, h, `{"method": `)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	h := newTestHandlers(&mockPaymentService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	h.HandleHealth(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var resp map[string]string
	json.Unmarshal(rr.Body.Bytes(), &resp)

	if resp["status"] != "OK" {
		t.Errorf("expected status OK, got %s", resp["status"])
	}
	if resp["timestamp"] == "" {
		t.Errorf("expected timestamp to be set")
	}
}
