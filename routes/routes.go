package routes

import (
	"net/http"

	"payout-service/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPaymentRoutes(r *gin.Engine, pc *controllers.PaymentController) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello World!"})
	})

	r.POST("/payments", pc.CreatePayment)
	r.GET("/payments", pc.ListPayments)
	r.PATCH("/payments/:id", pc.UpdateStatus)

	// Provider webhook (authenticated by signature, not by middleware)
	r.POST("/webhooks", pc.Webhook)
}
