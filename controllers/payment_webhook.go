package controllers

import (
	"context"
	"errors"
	"net/http"

	"payout-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SignatureHeader carries the provider's HMAC signature over the raw body.
const SignatureHeader = "X-Request-Network-Signature"

// Webhook handles POST /webhooks. The raw body bytes are handed to the
// service untouched — signature verification must see exactly what the
// provider signed, never a re-encoded structure.
func (pc *PaymentController) Webhook(c *gin.Context) {
	rawBody, err := c.GetRawData()
	if err != nil {
		pc.Logger.Error("Failed to read webhook body", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	signature := c.GetHeader(SignatureHeader)

	// Detached context: a verified event is applied fully even if the
	// provider hangs up before reading the response.
	if err := pc.Service.HandleWebhook(context.Background(), rawBody, signature); err != nil {
		var config *services.ConfigurationError
		var sig *services.SignatureError
		switch {
		case errors.As(err, &config):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret not configured"})
		case errors.As(err, &sig):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		default:
			pc.Logger.Error("Webhook processing failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	// Acknowledged whether or not the event was recognized.
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "Webhook received"})
}
