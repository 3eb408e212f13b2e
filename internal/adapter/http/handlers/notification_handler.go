package handlers

import (
	"errors"
	"net/http"

	response "construtora_xpto/internal/adapter/http/dto/response"
	"construtora_xpto/internal/adapter/http/middleware"
	"construtora_xpto/internal/usecase"
	"construtora_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the calling admin's in-app notifications.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// ListMyNotifications returns notifications for the resolved caller. The
// identity must carry a store-backed user id; email-only bootstrap admins
// have no notification inbox yet.
func (h *NotificationHandler) ListMyNotifications(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok || identity.UserID == "" {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	ns, err := h.usecase.ListByRecipientID(c.Request.Context(), identity.UserID)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotifications(ns))
}

func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	n, err := h.usecase.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotification(n))
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotificationID), errors.Is(err, usecase.ErrInvalidRecipientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
