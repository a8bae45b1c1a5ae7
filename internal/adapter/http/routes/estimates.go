package routes

import (
	"hospital_billing/internal/adapter/http/handlers"
	"hospital_billing/internal/adapter/http/middleware"
	"hospital_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const PathEstimates = "/estimates"

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, tokens interfaces.ITokenService) {
	estimates := rg.Group(PathEstimates)
	estimates.Use(middleware.Auth(tokens))
	{
		estimates.POST("/compute", estimateHandler.ComputeEstimate)
		estimates.POST("", estimateHandler.SaveEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
	}
}
