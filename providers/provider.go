package providers

import (
	"context"
	"encoding/json"
	"fmt"

	"payout-service/models"
)

// PayoutRequest carries the four fields the provider needs to build a payout.
type PayoutRequest struct {
	Payee           string `json:"payee"`
	Amount          string `json:"amount"`
	InvoiceCurrency string `json:"invoiceCurrency"`
	PaymentCurrency string `json:"paymentCurrency"`
}

// PayoutResponse is the provider's answer: a correlation id plus the
// calldata the caller must execute on-chain.
type PayoutResponse struct {
	RequestID    string               `json:"requestId"`
	Transactions []models.Transaction `json:"transactions"`
	Metadata     json.RawMessage      `json:"metadata"`
}

// UpstreamError carries the provider's rejection verbatim so handlers can
// mirror the status code and body instead of masking them.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("provider API error (status %d): %s", e.StatusCode, e.Body)
}

// PayoutProvider is the interface all payout-provider integrations implement.
type PayoutProvider interface {
	// CreatePayout asks the provider to construct an executable payout.
	CreatePayout(ctx context.Context, req PayoutRequest) (*PayoutResponse, error)
}
