package handlers

import (
	"context"
	"errors"
	"net/http"

	request "construtora_xpto/internal/adapter/http/dto/request"
	response "construtora_xpto/internal/adapter/http/dto/response"
	"construtora_xpto/internal/adapter/http/middleware"
	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase"
	"construtora_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
	errMissingIdentity         = pkg.NewDomainErrorSimple("MISSING_IDENTITY", "Authenticated user id is required", http.StatusUnauthorized)
)

// QuotationHandler handles HTTP requests for quotations, including the
// approve/reject lifecycle transitions.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Create(c.Request.Context(), usecase.CreateQuotationInput{
		ProjectID:   payload.ProjectID,
		TotalAmount: payload.TotalAmount,
		LineItems:   request.ToLineItems(payload.LineItems),
		Date:        payload.Date,
		FileName:    payload.FileName,
		FileType:    payload.FileType,
		FileURL:     payload.FileURL,
	})
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotation(q))
}

func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) ListQuotationsByProject(c *gin.Context) {
	qs, err := h.usecase.ListByProjectID(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotations(qs))
}

// ApproveQuotation transitions pending -> approved on behalf of the resolved
// caller. The acting identity must carry a store-backed user id.
func (h *QuotationHandler) ApproveQuotation(c *gin.Context) {
	h.transition(c, h.usecase.Approve)
}

func (h *QuotationHandler) RejectQuotation(c *gin.Context) {
	h.transition(c, h.usecase.Reject)
}

func (h *QuotationHandler) transition(
	c *gin.Context,
	updater func(ctx context.Context, id, actingUserID string) (entities.Quotation, error),
) {
	identity, ok := middleware.GetIdentity(c)
	if !ok || identity.UserID == "" {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	q, err := updater(c.Request.Context(), c.Param("id"), identity.UserID)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) UpdateQuotation(c *gin.Context) {
	var payload request.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	var status *entities.QuotationStatus
	if payload.Status != nil {
		s := entities.QuotationStatus(*payload.Status)
		status = &s
	}

	q, err := h.usecase.Update(c.Request.Context(), c.Param("id"), usecase.UpdateQuotationInput{
		TotalAmount: payload.TotalAmount,
		Status:      status,
		LineItems:   request.ToLineItems(payload.LineItems),
		Date:        payload.Date,
		FileName:    payload.FileName,
		FileType:    payload.FileType,
		FileURL:     payload.FileURL,
	})
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) DeleteQuotation(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Quotation deleted"})
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidActingUser), errors.Is(err, usecase.ErrInvalidQuotationStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLineItem):
		return pkg.NewDomainErrorSimple("INVALID_LINE_ITEM", "Each line item needs a description and a positive amount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationAlreadyApproved):
		return pkg.NewDomainErrorSimple("QUOTATION_ALREADY_APPROVED", "Quotation is already approved", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationAlreadyRejected):
		return pkg.NewDomainErrorSimple("QUOTATION_ALREADY_REJECTED", "Quotation is already rejected", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCannotApproveRejected):
		return pkg.NewDomainErrorSimple("CANNOT_APPROVE_REJECTED", "A rejected quotation cannot be approved", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCannotRejectApproved):
		return pkg.NewDomainErrorSimple("CANNOT_REJECT_APPROVED", "An approved quotation cannot be rejected", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationLocked):
		return pkg.NewDomainErrorSimple("QUOTATION_LOCKED", "Quotation is locked", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOnlyPendingCanBeApproved):
		return pkg.NewDomainErrorSimple("ONLY_PENDING_CAN_BE_APPROVED", "Only pending quotations can be approved", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOnlyPendingCanBeRejected):
		return pkg.NewDomainErrorSimple("ONLY_PENDING_CAN_BE_REJECTED", "Only pending quotations can be rejected", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
