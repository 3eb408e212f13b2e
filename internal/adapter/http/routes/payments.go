package routes

import (
	"construtora_xpto/internal/adapter/http/handlers"
	"construtora_xpto/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, gate *middleware.AccessGate, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quotation_id", gate.CustomerOnly(), paymentHandler.CreatePaymentByQuotationID)
		payments.GET("/:quotation_id", gate.Authenticated(), paymentHandler.GetPaymentByQuotationID)
	}
}
