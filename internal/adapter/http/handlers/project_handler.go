package handlers

import (
	"errors"
	"net/http"

	request "construtora_xpto/internal/adapter/http/dto/request"
	response "construtora_xpto/internal/adapter/http/dto/response"
	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase"
	"construtora_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)

// ProjectHandler handles HTTP requests for construction projects.

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), usecase.CreateProjectInput{
		Name:         payload.Name,
		Description:  payload.Description,
		Location:     payload.Location,
		CustomerID:   payload.CustomerID,
		SupervisorID: payload.SupervisorID,
		StartDate:    payload.StartDate,
		EndDate:      payload.EndDate,
	})
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(p))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	ps, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjects(ps))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var payload request.UpdateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	var status *entities.ProjectStatus
	if payload.Status != nil {
		s := entities.ProjectStatus(*payload.Status)
		status = &s
	}

	p, err := h.usecase.Update(c.Request.Context(), c.Param("project_id"), usecase.UpdateProjectInput{
		Name:         payload.Name,
		Description:  payload.Description,
		Location:     payload.Location,
		SupervisorID: payload.SupervisorID,
		Status:       status,
		StartDate:    payload.StartDate,
		EndDate:      payload.EndDate,
	})
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("project_id")); err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted"})
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidProjectInput),
		errors.Is(err, usecase.ErrInvalidProjectStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
