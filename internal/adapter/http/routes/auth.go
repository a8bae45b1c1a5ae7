package routes

import (
	"hospital_billing/internal/adapter/http/handlers"
	"hospital_billing/internal/adapter/http/middleware"
	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const PathAuth = "/auth"

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, tokens interfaces.ITokenService) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.Auth(tokens), authHandler.Me)
	}

	users := rg.Group("/users")
	users.Use(middleware.Auth(tokens, entities.RoleAdmin))
	{
		users.GET("/pending", authHandler.ListPendingUsers)
		users.POST("/:id/approve", authHandler.ApproveUser)
		users.POST("/:id/reject", authHandler.RejectUser)
	}
}
