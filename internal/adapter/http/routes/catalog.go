package routes

import (
	"hospital_billing/internal/adapter/http/handlers"
	"hospital_billing/internal/adapter/http/middleware"
	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const (
	PathServices   = "/services"
	PathCategories = "/categories"
	PathDiscounts  = "/discounts"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, tokens interfaces.ITokenService) {
	// Reads are open to every approved account; the estimate form needs them.
	categories := rg.Group(PathCategories)
	categories.Use(middleware.Auth(tokens))
	{
		categories.GET("/services", catalogHandler.ListServiceCategories)
		categories.GET("/patients", catalogHandler.ListPatientCategories)
	}

	services := rg.Group(PathServices)
	services.Use(middleware.Auth(tokens))
	{
		services.GET("", catalogHandler.ListServices)
	}

	// Catalog administration is open to admins and managers alike.
	manageServices := rg.Group(PathServices)
	manageServices.Use(middleware.Auth(tokens, entities.RoleAdmin, entities.RoleManager))
	{
		manageServices.POST("", catalogHandler.CreateService)
		manageServices.PUT("/:id", catalogHandler.UpdateService)
		manageServices.DELETE("/:id", catalogHandler.DeleteService)
		manageServices.POST("/import", catalogHandler.ImportServicesCSV)
		manageServices.GET("/import/template", catalogHandler.ServicesCSVTemplate)
	}

	discounts := rg.Group(PathDiscounts)
	discounts.Use(middleware.Auth(tokens, entities.RoleAdmin, entities.RoleManager))
	{
		discounts.GET("", catalogHandler.ListDiscounts)
		discounts.POST("", catalogHandler.CreateDiscount)
		discounts.PUT("/:id", catalogHandler.UpdateDiscount)
		discounts.DELETE("/:id", catalogHandler.DeleteDiscount)
		discounts.POST("/import", catalogHandler.ImportDiscountsCSV)
		discounts.GET("/import/template", catalogHandler.DiscountsCSVTemplate)
	}
}
