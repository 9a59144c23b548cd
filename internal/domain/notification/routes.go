package notification

import "github.com/gin-gonic/gin"

// RegisterRoutes registers all notification-related routes
func RegisterRoutes(protected *gin.RouterGroup, handler *Handler) {
	notifGroup := protected.Group("/notifications")
	{
		notifGroup.GET("", handler.GetNotifications)
		notifGroup.GET("/unread-count", handler.GetUnreadCount)
		notifGroup.POST("/:id/read", handler.MarkAsRead)
		// PUT: gin rejects a static sibling of :id within one method tree.
		notifGroup.PUT("/read-all", handler.MarkAllAsRead)
		notifGroup.POST("/:id/actions/:actionID", handler.ExecuteAction)
		notifGroup.DELETE("/:id", handler.DeleteNotification)
	}
}

// RegisterInternalRoutes registers the token-guarded broadcast endpoint
func RegisterInternalRoutes(internal *gin.RouterGroup, handler *Handler) {
	internal.POST("/notifications/broadcast", handler.Broadcast)
}
