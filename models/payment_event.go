package models

import "time"

// PaymentEvent is the lifecycle event published to Kafka whenever a payment
// changes state. Downstream consumers key on RequestID.
type PaymentEvent struct {
	EventID   string    `json:"event_id"` // uuid, unique per publication
	Type      string    `json:"type"`     // "payment.pending", "payment.confirmed", "payment.failed"
	PaymentID uint      `json:"payment_id"`
	RequestID string    `json:"request_id"`
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"` // UTC event time
}
