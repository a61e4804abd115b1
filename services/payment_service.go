package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"payout-service/models"
	"payout-service/providers"
	"payout-service/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventPublisher publishes lifecycle events for downstream consumers.
type EventPublisher interface {
	SendPaymentEvent(event models.PaymentEvent) error
}

// CreatePaymentRequest is the caller input for a new payment. All four
// fields are required.
type CreatePaymentRequest struct {
	Payee           string `json:"payee"`
	Amount          string `json:"amount"`
	InvoiceCurrency string `json:"invoiceCurrency"`
	PaymentCurrency string `json:"paymentCurrency"`
}

// CreatePaymentResult pairs the persisted payment with the provider calldata
// the caller must execute. The calldata is returned exactly once and never
// stored.
type CreatePaymentResult struct {
	Payment  *models.Payment  `json:"payment"`
	Calldata *models.Calldata `json:"calldata"`
}

// PaymentService owns the payment lifecycle: creation against the provider,
// trusted status updates from the executing client, and verified webhook
// confirmations.
type PaymentService interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*CreatePaymentResult, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*models.Payment, error)
	HandleWebhook(ctx context.Context, rawBody []byte, signature string) error
	ListPayments(ctx context.Context) ([]models.Payment, error)
}

type paymentServiceImpl struct {
	repo      repository.PaymentRepository
	provider  providers.PayoutProvider
	verifier  *WebhookVerifier
	publisher EventPublisher // nil when event publication is disabled
	logger    *zap.Logger
}

func NewPaymentService(
	repo repository.PaymentRepository,
	provider providers.PayoutProvider,
	verifier *WebhookVerifier,
	publisher EventPublisher,
	logger *zap.Logger,
) PaymentService {
	return &paymentServiceImpl{
		repo:      repo,
		provider:  provider,
		verifier:  verifier,
		publisher: publisher,
		logger:    logger,
	}
}

// CreatePayment validates the request, asks the provider for calldata, and
// persists a pending payment keyed by the provider's requestId.
func (s *paymentServiceImpl) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*CreatePaymentResult, error) {
	if req.Payee == "" || req.Amount == "" || req.InvoiceCurrency == "" || req.PaymentCurrency == "" {
		return nil, &ValidationError{Message: "Missing required fields: payee, amount, invoiceCurrency, paymentCurrency"}
	}

	resp, err := s.provider.CreatePayout(ctx, providers.PayoutRequest{
		Payee:           req.Payee,
		Amount:          req.Amount,
		InvoiceCurrency: req.InvoiceCurrency,
		PaymentCurrency: req.PaymentCurrency,
	})
	if err != nil {
		var upstream *providers.UpstreamError
		if errors.As(err, &upstream) {
			s.logger.Error("Provider rejected payout creation",
				zap.Int("status", upstream.StatusCode),
				zap.String("body", upstream.Body),
			)
		} else {
			s.logger.Error("Payout creation failed", zap.Error(err))
		}
		return nil, err
	}

	payment := &models.Payment{
		RequestID: resp.RequestID,
		Status:    models.StatusPending,
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		s.logger.Error("Failed to save payment",
			zap.String("request_id", resp.RequestID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Payment created",
		zap.Uint("payment_id", payment.ID),
		zap.String("request_id", payment.RequestID),
	)
	s.publishEvent(payment)

	return &CreatePaymentResult{
		Payment: payment,
		Calldata: &models.Calldata{
			Transactions: resp.Transactions,
			Metadata:     resp.Metadata,
		},
	}, nil
}

// UpdateStatus writes the given status unconditionally. This is the trusted
// path used by the transaction sequencer; it checks that the status is one
// of the recognized literals but deliberately performs no transition-table
// validation, matching the lifecycle contract where the caller sequences
// states by construction.
func (s *paymentServiceImpl) UpdateStatus(ctx context.Context, id uint, status string) (*models.Payment, error) {
	if status == "" {
		return nil, &ValidationError{Message: "Status is required"}
	}
	parsed, err := models.ParseStatus(status)
	if err != nil {
		return nil, &ValidationError{Message: "Unknown status: " + status}
	}

	rows, err := s.repo.UpdateStatusByID(ctx, id, parsed)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, &NotFoundError{PaymentID: id}
	}

	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payment status updated",
		zap.Uint("payment_id", payment.ID),
		zap.String("status", string(payment.Status)),
	)
	// in-progress is re-sent after every transaction; only terminal states
	// are worth fanning out.
	if parsed.Terminal() {
		s.publishEvent(payment)
	}
	return payment, nil
}

// HandleWebhook authenticates a provider callback against the raw body bytes
// and applies the event. Unrecognized events and unknown request ids are
// logged and ignored; only a verified payment.confirmed changes state.
func (s *paymentServiceImpl) HandleWebhook(ctx context.Context, rawBody []byte, signature string) error {
	if !s.verifier.Configured() {
		s.logger.Error("Webhook secret is not configured")
		return &ConfigurationError{Missing: "webhook secret"}
	}
	if !s.verifier.Verify(rawBody, signature) {
		s.logger.Warn("Invalid webhook signature")
		return &SignatureError{}
	}

	var payload models.WebhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		s.logger.Warn("Malformed webhook payload", zap.Error(err))
		return &ValidationError{Message: "Malformed webhook payload"}
	}

	s.logger.Info("Webhook received",
		zap.String("event", string(payload.Event)),
		zap.String("request_id", payload.RequestID),
	)

	switch payload.Event {
	case models.EventPaymentConfirmed:
		return s.applyConfirmed(ctx, payload.RequestID)
	default:
		// Forward compatibility: provider events this service does not yet
		// interpret are acknowledged without a state change.
		s.logger.Info("Ignoring unrecognized webhook event",
			zap.String("event", string(payload.Event)),
			zap.String("request_id", payload.RequestID),
		)
		return nil
	}
}

func (s *paymentServiceImpl) applyConfirmed(ctx context.Context, requestID string) error {
	rows, err := s.repo.UpdateStatusByRequestID(ctx, requestID, models.StatusConfirmed)
	if err != nil {
		s.logger.Error("Failed to confirm payment",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return err
	}
	if rows == 0 {
		// The provider knows about requests this service did not create;
		// an unmatched confirmation is not an error.
		s.logger.Warn("Confirmed webhook for unknown request",
			zap.String("request_id", requestID),
		)
		return nil
	}

	s.logger.Info("Payment confirmed", zap.String("request_id", requestID))
	if s.publisher != nil {
		if payment, err := s.repo.FindByRequestID(ctx, requestID); err == nil {
			s.publishEvent(payment)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Failed to load confirmed payment for event publication",
				zap.String("request_id", requestID),
				zap.Error(err),
			)
		}
	}
	return nil
}

// ListPayments returns every payment in storage order.
func (s *paymentServiceImpl) ListPayments(ctx context.Context) ([]models.Payment, error) {
	return s.repo.List(ctx)
}

// publishEvent emits a lifecycle event, best effort. Publication failures
// never fail the operation that triggered them.
func (s *paymentServiceImpl) publishEvent(payment *models.Payment) {
	if s.publisher == nil {
		return
	}
	event := models.PaymentEvent{
		EventID:   uuid.NewString(),
		Type:      "payment." + string(payment.Status),
		PaymentID: payment.ID,
		RequestID: payment.RequestID,
		Status:    payment.Status,
		Timestamp: time.Now().UTC(),
	}
	if err := s.publisher.SendPaymentEvent(event); err != nil {
		s.logger.Error("Failed to publish payment event",
			zap.String("event_type", event.Type),
			zap.String("request_id", event.RequestID),
			zap.Error(err),
		)
	}
}
