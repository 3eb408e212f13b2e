package routes

import (
	"construtora_xpto/internal/adapter/http/handlers"
	"construtora_xpto/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathNotifications = "/notifications"
)

func addNotificationRoutes(rg *gin.RouterGroup, gate *middleware.AccessGate, notificationHandler *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications, gate.AdminOnly())
	{
		notifications.GET("", notificationHandler.ListMyNotifications)
		notifications.PATCH("/:id/read", notificationHandler.MarkNotificationRead)
	}
}
