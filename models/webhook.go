package models

// WebhookEvent is a provider webhook event name. Only the values below are
// interpreted; anything else is accepted and ignored so new provider events
// cannot break the endpoint.
type WebhookEvent string

const (
	// EventPaymentConfirmed is the settlement confirmation. It is the only
	// event that moves a payment to confirmed.
	EventPaymentConfirmed WebhookEvent = "payment.confirmed"
)

// Recognized reports whether this service interprets the event.
func (e WebhookEvent) Recognized() bool {
	return e == EventPaymentConfirmed
}

// WebhookPayload is the provider callback body. requestId correlates the
// event to a payment.
type WebhookPayload struct {
	RequestID string       `json:"requestId"`
	Event     WebhookEvent `json:"event"`
}
