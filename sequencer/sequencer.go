// Package sequencer submits a payment's transactions to a wallet in order
// and reports lifecycle progress back to the payout service.
package sequencer

import (
	"context"
	"errors"
	"fmt"

	"payout-service/models"

	"go.uber.org/zap"
)

// ErrNoWallet is returned when execution is attempted without an active
// wallet connection. No transactions are submitted in that case.
var ErrNoWallet = errors.New("no active wallet connection")

// Wallet is the chain connection transactions are submitted through.
type Wallet interface {
	Connected() bool
	// SendTransaction submits one transaction and blocks until the wallet
	// accepts it, returning the transaction hash.
	SendTransaction(ctx context.Context, tx models.Transaction) (string, error)
}

// StatusReporter delivers status updates to the payout service. The service
// API client implements this; tests use an in-process fake.
type StatusReporter interface {
	ReportStatus(ctx context.Context, paymentID uint, status models.Status) error
}

type Sequencer struct {
	wallet   Wallet
	reporter StatusReporter
	logger   *zap.Logger
}

func New(wallet Wallet, reporter StatusReporter, logger *zap.Logger) *Sequencer {
	return &Sequencer{wallet: wallet, reporter: reporter, logger: logger}
}

// Execute submits the transactions strictly in order, one at a time. After
// each successful submission the payment is marked in-progress again, so a
// crash mid-sequence still leaves it correctly marked. The first submission
// failure stops the sequence, marks the payment failed and returns the
// error. Full success returns nil without touching the status further:
// confirmed is reserved for the provider's settlement webhook, because a
// locally accepted transaction is not a settled one.
func (s *Sequencer) Execute(ctx context.Context, paymentID uint, txs []models.Transaction) error {
	if !s.wallet.Connected() {
		return ErrNoWallet
	}

	for i, tx := range txs {
		txHash, err := s.wallet.SendTransaction(ctx, tx)
		if err != nil {
			s.logger.Error("Transaction submission failed",
				zap.Uint("payment_id", paymentID),
				zap.Int("index", i),
				zap.Error(err),
			)
			if reportErr := s.reporter.ReportStatus(ctx, paymentID, models.StatusFailed); reportErr != nil {
				s.logger.Error("Failed to report failed status",
					zap.Uint("payment_id", paymentID),
					zap.Error(reportErr),
				)
			}
			return fmt.Errorf("transaction %d/%d: %w", i+1, len(txs), err)
		}

		if err := s.reporter.ReportStatus(ctx, paymentID, models.StatusInProgress); err != nil {
			s.logger.Warn("Failed to report in-progress status",
				zap.Uint("payment_id", paymentID),
				zap.Error(err),
			)
		}

		s.logger.Info("Transaction sent",
			zap.Uint("payment_id", paymentID),
			zap.Int("index", i),
			zap.String("tx_hash", txHash),
		)
	}

	return nil
}
