// Package client is an HTTP client for the payout service API, usable by
// wallet-holding processes that execute calldata and report progress.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"payout-service/models"
	"payout-service/services"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreatePayment requests a new payment and returns the persisted record plus
// the calldata to execute.
func (c *Client) CreatePayment(ctx context.Context, req services.CreatePaymentRequest) (*services.CreatePaymentResult, error) {
	var result services.CreatePaymentResult
	if err := c.doRequest(ctx, http.MethodPost, "/payments", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateStatus patches a payment's status.
func (c *Client) UpdateStatus(ctx context.Context, paymentID uint, status models.Status) (*models.Payment, error) {
	body := map[string]string{"status": string(status)}
	var result struct {
		Payment *models.Payment `json:"payment"`
	}
	path := fmt.Sprintf("/payments/%d", paymentID)
	if err := c.doRequest(ctx, http.MethodPatch, path, body, &result); err != nil {
		return nil, err
	}
	return result.Payment, nil
}

// ListPayments fetches all payments in storage order.
func (c *Client) ListPayments(ctx context.Context) ([]models.Payment, error) {
	var result struct {
		Payments []models.Payment `json:"payments"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/payments", nil, &result); err != nil {
		return nil, err
	}
	return result.Payments, nil
}

// ReportStatus implements sequencer.StatusReporter.
func (c *Client) ReportStatus(ctx context.Context, paymentID uint, status models.Status) error {
	_, err := c.UpdateStatus(ctx, paymentID, status)
	return err
}

func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("payout service error (status %d): %s", resp.StatusCode, string(respBytes))
	}

	if out != nil {
		if err := json.Unmarshal(respBytes, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
