package routes

import (
	"aquaops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathEstimates = "/estimates"

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, depositHandler *handlers.DepositPaymentHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.Create)
		estimates.GET("", estimateHandler.List)
		estimates.GET("/:id", estimateHandler.GetByID)
		estimates.PATCH("/:id", estimateHandler.Update)
		estimates.PATCH("/:id/status", estimateHandler.ChangeStatus)
		estimates.GET("/:id/export/pdf", estimateHandler.ExportPDF)
		estimates.DELETE("/:id", estimateHandler.Delete)

		// Deposits hang off the estimate they secure. Gin requires the same
		// param name across the group, so the deposit routes reuse :id and the
		// handler reads it as the estimate id.
		estimates.POST("/:id/payments", depositHandler.CollectDeposit)
		estimates.GET("/:id/payments", depositHandler.GetLatestByEstimateID)
	}
}
