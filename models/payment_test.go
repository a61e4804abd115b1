package models_test

import (
	"testing"

	"payout-service/models"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "in-progress", "confirmed", "failed"} {
		parsed, err := models.ParseStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, s, string(parsed))
		assert.True(t, parsed.Valid())
	}

	_, err := models.ParseStatus("settled")
	assert.Error(t, err)
	assert.False(t, models.Status("settled").Valid())
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, models.StatusPending.Terminal())
	assert.False(t, models.StatusInProgress.Terminal())
	assert.True(t, models.StatusConfirmed.Terminal())
	assert.True(t, models.StatusFailed.Terminal())
}

func TestWebhookEventRecognized(t *testing.T) {
	assert.True(t, models.EventPaymentConfirmed.Recognized())
	assert.False(t, models.WebhookEvent("payment.processing").Recognized())
}
