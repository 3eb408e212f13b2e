package routes

import (
	"construtora_xpto/internal/adapter/http/handlers"
	"construtora_xpto/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects = "/projects"
)

func addProjectRoutes(rg *gin.RouterGroup, gate *middleware.AccessGate, projectHandler *handlers.ProjectHandler, quotationHandler *handlers.QuotationHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", gate.AdminOnly(), projectHandler.CreateProject)
		projects.GET("", gate.Authenticated(), projectHandler.ListProjects)
		projects.GET("/:project_id", gate.Authenticated(), projectHandler.GetProject)
		projects.PUT("/:project_id", gate.AdminOrSupervisor(), projectHandler.UpdateProject)
		projects.DELETE("/:project_id", gate.AdminOnly(), projectHandler.DeleteProject)

		projects.GET("/:project_id/quotations", gate.Authenticated(), quotationHandler.ListQuotationsByProject)
	}
}
