package routes

import (
	"construtora_xpto/internal/adapter/http/handlers"
	"construtora_xpto/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/quotations"
)

func addQuotationRoutes(rg *gin.RouterGroup, gate *middleware.AccessGate, quotationHandler *handlers.QuotationHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", gate.AdminOnly(), quotationHandler.CreateQuotation)
		quotations.GET("/:id", gate.Authenticated(), quotationHandler.GetQuotation)
		quotations.PUT("/:id", gate.AdminOnly(), quotationHandler.UpdateQuotation)
		quotations.DELETE("/:id", gate.AdminOnly(), quotationHandler.DeleteQuotation)

		// Approval decisions belong to the customer or the project supervisor.
		quotations.PATCH("/:id/approve", gate.CustomerOrSupervisor(), quotationHandler.ApproveQuotation)
		quotations.PATCH("/:id/reject", gate.CustomerOrSupervisor(), quotationHandler.RejectQuotation)
	}
}
