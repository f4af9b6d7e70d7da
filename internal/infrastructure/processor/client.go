// Package processor implements the HTTP client for the external payment
// processor's sandbox API.
package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/caseshop/checkout-gateway/internal/application"
	"github.com/caseshop/checkout-gateway/internal/config"
)

type HTTPProcessorClient struct {
	baseURL     string
	secretKey   string
	channelID   string
	metadataTag string
	httpClient  *http.Client
}

func NewProcessorClient(cfg config.ProcessorConfig) application.ProcessorClient {
	return &HTTPProcessorClient{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		secretKey:   cfg.SecretKey,
		channelID:   cfg.ProcessingChannelID,
		metadataTag: cfg.MetadataTag,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Authorize submits a single authorization attempt: capture disabled,
// 3DS disabled, the configured processing channel attached. The call
// runs to completion or network failure; there is no retry.
func (c *HTTPProcessorClient) Authorize(ctx context.Context, req application.AuthorizationRequest) (*application.AuthorizationResult, error) {
	cvv, err := strconv.Atoi(strings.TrimSpace(req.CVV))
	if err != nil {
		return nil, fmt.Errorf("cvv is not numeric: %w", err)
	}

	wireReq := paymentRequest{
		Source: cardSource{
			Type:        "card",
			Number:      req.CardNumber,
			ExpiryMonth: req.ExpiryMonth,
			ExpiryYear:  req.ExpiryYear,
			CVV:         cvv,
		},
		Amount:    req.AmountMinorUnits,
		Currency:  req.Currency,
		Reference: req.Reference,
		Capture:   false,
		ThreeDS: threeDS{
			Enabled:    false,
			AttemptN3D: false,
		},
		ProcessingChannelID: c.channelID,
	}
	if c.metadataTag != "" {
		wireReq.Metadata = map[string]string{"udf4": c.metadataTag}
	}

	jsonData, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("error marshalling json: %w", err)
	}

	url := fmt.Sprintf("%s/payments", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &ProcessorError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		procErr := &ProcessorError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
		var payload any
		if json.Unmarshal(body, &payload) == nil {
			procErr.Payload = payload
		}
		return nil, procErr
	}

	var wireResp paymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &application.AuthorizationResult{
		ID:                      wireResp.ID,
		Status:                  wireResp.Status,
		Approved:                wireResp.Approved,
		Reference:               wireResp.Reference,
		PaymentAccountReference: wireResp.Source.PaymentAccountReference,
	}, nil
}
