package routes

import (
	"construtora_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth = "/auth"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authGroup := rg.Group(PathAuth)
	{
		// Public: the gate itself is bootstrapped from these logins.
		authGroup.POST("/admin/login", authHandler.AdminLogin)
		authGroup.POST("/user/login", authHandler.UserLogin)
		authGroup.POST("/supervisor/login", authHandler.SupervisorLogin)
	}
}
