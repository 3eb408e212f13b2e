package handlers

import (
	"errors"
	"net/http"

	request "construtora_xpto/internal/adapter/http/dto/request"
	response "construtora_xpto/internal/adapter/http/dto/response"
	"construtora_xpto/internal/usecase"
	"construtora_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSupervisorPayload = pkg.NewDomainErrorSimple("INVALID_SUPERVISOR_INPUT", "Invalid supervisor payload", http.StatusBadRequest)

// SupervisorHandler handles admin management of supervisor accounts.

type SupervisorHandler struct {
	usecase usecase.ISupervisorUseCase
}

func NewSupervisorHandler(uc usecase.ISupervisorUseCase) *SupervisorHandler {
	return &SupervisorHandler{usecase: uc}
}

func (h *SupervisorHandler) CreateSupervisor(c *gin.Context) {
	var payload request.CreateSupervisorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSupervisorPayload.HTTPStatus, errInvalidSupervisorPayload.ToHTTPError())
		return
	}

	sup, err := h.usecase.Create(c.Request.Context(), usecase.CreateSupervisorInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
		Phone:    payload.Phone,
	})
	if err != nil {
		appErr := mapSupervisorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSupervisor(sup))
}

func (h *SupervisorHandler) GetSupervisor(c *gin.Context) {
	sup, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSupervisorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSupervisor(sup))
}

func (h *SupervisorHandler) ListSupervisors(c *gin.Context) {
	sups, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapSupervisorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSupervisors(sups))
}

func (h *SupervisorHandler) UpdateSupervisor(c *gin.Context) {
	var payload request.UpdateSupervisorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSupervisorPayload.HTTPStatus, errInvalidSupervisorPayload.ToHTTPError())
		return
	}

	sup, err := h.usecase.Update(c.Request.Context(), c.Param("id"), usecase.UpdateSupervisorInput{
		Name:       payload.Name,
		Phone:      payload.Phone,
		Password:   payload.Password,
		ProjectIDs: payload.ProjectIDs,
	})
	if err != nil {
		appErr := mapSupervisorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSupervisor(sup))
}

func (h *SupervisorHandler) DeleteSupervisor(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapSupervisorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Supervisor deleted"})
}

func mapSupervisorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSupervisorID), errors.Is(err, usecase.ErrInvalidSupervisorInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "Email already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrSupervisorNotFound):
		return pkg.NewDomainErrorSimple("SUPERVISOR_NOT_FOUND", "Supervisor not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
