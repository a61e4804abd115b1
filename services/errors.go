package services

import "fmt"

// ValidationError reports missing or malformed caller input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports an unknown payment id.
type NotFoundError struct {
	PaymentID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("payment %d not found", e.PaymentID)
}

// ConfigurationError reports a missing piece of configuration that makes an
// operation impossible, like an unset webhook secret.
type ConfigurationError struct {
	Missing string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Missing)
}

// SignatureError reports a webhook whose signature did not verify. The event
// is never applied.
type SignatureError struct{}

func (e *SignatureError) Error() string { return "invalid webhook signature" }
