package routes

import (
	"construtora_xpto/internal/adapter/http/handlers"
	"construtora_xpto/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathUsers       = "/users"
	PathSupervisors = "/supervisors"
)

func addAccountRoutes(rg *gin.RouterGroup, gate *middleware.AccessGate, userHandler *handlers.UserHandler, supervisorHandler *handlers.SupervisorHandler) {
	users := rg.Group(PathUsers, gate.AdminOnly())
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	supervisors := rg.Group(PathSupervisors, gate.AdminOnly())
	{
		supervisors.POST("", supervisorHandler.CreateSupervisor)
		supervisors.GET("", supervisorHandler.ListSupervisors)
		supervisors.GET("/:id", supervisorHandler.GetSupervisor)
		supervisors.PUT("/:id", supervisorHandler.UpdateSupervisor)
		supervisors.DELETE("/:id", supervisorHandler.DeleteSupervisor)
	}
}
