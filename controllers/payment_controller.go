package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"payout-service/providers"
	"payout-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentController struct {
	Service services.PaymentService
	Logger  *zap.Logger
}

func NewPaymentController(service services.PaymentService, logger *zap.Logger) *PaymentController {
	return &PaymentController{Service: service, Logger: logger}
}

// CreatePayment handles POST /payments: creates a payout with the provider
// and returns the pending payment plus its calldata.
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var req services.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// Detached context: once accepted, creation runs to completion so the
	// store never holds a half-applied payment after a client disconnect.
	result, err := pc.Service.CreatePayment(context.Background(), req)
	if err != nil {
		var validation *services.ValidationError
		var upstream *providers.UpstreamError
		switch {
		case errors.As(err, &validation):
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
		case errors.As(err, &upstream):
			// Mirror the provider's status code and body rather than
			// collapsing it into a generic 502.
			c.JSON(upstream.StatusCode, gin.H{
				"error":   "Failed to create payment with provider API",
				"details": upstream.Body,
			})
		default:
			pc.Logger.Error("Error creating payment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal server error",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateStatus handles PATCH /payments/:id, the trusted status-update path
// used by the executing client.
func (pc *PaymentController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment id"})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	payment, err := pc.Service.UpdateStatus(context.Background(), uint(id), req.Status)
	if err != nil {
		var validation *services.ValidationError
		var notFound *services.NotFoundError
		switch {
		case errors.As(err, &validation):
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		default:
			pc.Logger.Error("Error updating payment status",
				zap.Uint64("payment_id", id),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal server error",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment": payment})
}

// ListPayments handles GET /payments.
func (pc *PaymentController) ListPayments(c *gin.Context) {
	payments, err := pc.Service.ListPayments(c.Request.Context())
	if err != nil {
		pc.Logger.Error("Error fetching payments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch payments",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": payments})
}
