package sequencer_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"payout-service/models"
	"payout-service/sequencer"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeWallet fails the submission at index failAt (0-based); -1 never fails.
type fakeWallet struct {
	connected bool
	failAt    int
	sent      []models.Transaction
}

func (w *fakeWallet) Connected() bool { return w.connected }

func (w *fakeWallet) SendTransaction(_ context.Context, tx models.Transaction) (string, error) {
	if w.failAt >= 0 && len(w.sent) == w.failAt {
		return "", errors.New("wallet rejected transaction")
	}
	w.sent = append(w.sent, tx)
	return fmt.Sprintf("0xhash%d", len(w.sent)), nil
}

type recordingReporter struct {
	statuses []models.Status
	err      error
}

func (r *recordingReporter) ReportStatus(_ context.Context, _ uint, status models.Status) error {
	r.statuses = append(r.statuses, status)
	return r.err
}

func txs(n int) []models.Transaction {
	out := make([]models.Transaction, n)
	for i := range out {
		out[i] = models.Transaction{To: fmt.Sprintf("0xto%d", i), Data: "0x", Value: models.TxValue{Hex: "0x0"}}
	}
	return out
}

func TestExecute_NoWallet(t *testing.T) {
	wallet := &fakeWallet{connected: false, failAt: -1}
	reporter := &recordingReporter{}
	s := sequencer.New(wallet, reporter, zap.NewNop())

	err := s.Execute(context.Background(), 1, txs(3))

	assert.ErrorIs(t, err, sequencer.ErrNoWallet)
	assert.Empty(t, wallet.sent, "no submissions without a wallet")
	assert.Empty(t, reporter.statuses)
}

func TestExecute_AllSucceed(t *testing.T) {
	wallet := &fakeWallet{connected: true, failAt: -1}
	reporter := &recordingReporter{}
	s := sequencer.New(wallet, reporter, zap.NewNop())

	err := s.Execute(context.Background(), 1, txs(3))

	assert.NoError(t, err)
	assert.Len(t, wallet.sent, 3)
	// in-progress after every submission, and never confirmed: settlement
	// confirmation belongs to the webhook path.
	assert.Equal(t, []models.Status{
		models.StatusInProgress,
		models.StatusInProgress,
		models.StatusInProgress,
	}, reporter.statuses)
}

func TestExecute_OrderPreserved(t *testing.T) {
	wallet := &fakeWallet{connected: true, failAt: -1}
	s := sequencer.New(wallet, &recordingReporter{}, zap.NewNop())
	sequence := txs(4)

	err := s.Execute(context.Background(), 1, sequence)

	assert.NoError(t, err)
	assert.Equal(t, sequence, wallet.sent)
}

func TestExecute_FailureStopsSequence(t *testing.T) {
	// Submission k fails (1-based): exactly k-1 in-progress signals, no
	// later submissions, and a final failed report.
	for _, k := range []int{1, 2, 3} {
		wallet := &fakeWallet{connected: true, failAt: k - 1}
		reporter := &recordingReporter{}
		s := sequencer.New(wallet, reporter, zap.NewNop())

		err := s.Execute(context.Background(), 1, txs(3))

		assert.Error(t, err, "k=%d", k)
		assert.NotErrorIs(t, err, sequencer.ErrNoWallet, "k=%d", k)
		assert.Len(t, wallet.sent, k-1, "k=%d: submissions stop at the failure", k)

		expected := make([]models.Status, 0, k)
		for i := 0; i < k-1; i++ {
			expected = append(expected, models.StatusInProgress)
		}
		expected = append(expected, models.StatusFailed)
		assert.Equal(t, expected, reporter.statuses, "k=%d", k)
	}
}

func TestExecute_ReporterFailureDoesNotStopSequence(t *testing.T) {
	wallet := &fakeWallet{connected: true, failAt: -1}
	reporter := &recordingReporter{err: errors.New("service unreachable")}
	s := sequencer.New(wallet, reporter, zap.NewNop())

	err := s.Execute(context.Background(), 1, txs(2))

	assert.NoError(t, err, "a failed progress report must not abort execution")
	assert.Len(t, wallet.sent, 2)
}

func TestExecute_EmptySequence(t *testing.T) {
	wallet := &fakeWallet{connected: true, failAt: -1}
	reporter := &recordingReporter{}
	s := sequencer.New(wallet, reporter, zap.NewNop())

	err := s.Execute(context.Background(), 1, nil)

	assert.NoError(t, err)
	assert.Empty(t, reporter.statuses)
}
