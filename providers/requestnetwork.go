package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RequestNetworkProvider implements PayoutProvider against the Request
// Network payouts API.
type RequestNetworkProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewRequestNetworkProvider creates a provider client for the given API base
// URL and key.
func NewRequestNetworkProvider(baseURL, apiKey string) *RequestNetworkProvider {
	return &RequestNetworkProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// CreatePayout posts the payout request and returns the provider's calldata
// and correlation id. A non-2xx response becomes an *UpstreamError carrying
// the provider's status code and raw body.
func (p *RequestNetworkProvider) CreatePayout(ctx context.Context, payout PayoutRequest) (*PayoutResponse, error) {
	body, err := json.Marshal(payout)
	if err != nil {
		return nil, fmt.Errorf("marshal payout request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/payouts", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(respBytes)}
	}

	var out PayoutResponse
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if out.RequestID == "" {
		return nil, fmt.Errorf("provider response missing requestId")
	}
	return &out, nil
}
