package notification

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartconnect/internal/pkg/response"
	"smartconnect/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetNotifications returns the caller's full notification set, newest-first,
// together with the unread count. The panel refetches this on every 30s tick.
func (h *Handler) GetNotifications(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	notifications, unread, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get notifications")
		return
	}

	items := make([]*NotificationResponse, len(notifications))
	for i := range notifications {
		items[i] = NotificationResponseFromEntity(&notifications[i])
	}

	response.Success(c, http.StatusOK, NotificationListResponse{
		Notifications: items,
		UnreadCount:   unread,
	})
}

func (h *Handler) GetUnreadCount(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	unread, err := h.service.GetUnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get unread count")
		return
	}

	response.Success(c, http.StatusOK, UnreadCountResponse{UnreadCount: unread})
}

// MarkAsRead is idempotent: repeating it for an already-read notification
// answers 200 again.
func (h *Handler) MarkAsRead(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	id := c.Param("id")
	if id == "" {
		response.CustomError(c, http.StatusBadRequest, "INVALID_ID", "Invalid notification ID")
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to mark as read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "read"})
}

func (h *Handler) MarkAllAsRead(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	if err := h.service.MarkAllAsRead(c.Request.Context(), userID); err != nil {
		response.CustomError(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to mark as read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "all_read"})
}

// ExecuteAction runs one of the actions attached to a notification and
// returns a human-readable confirmation for the toast layer.
func (h *Handler) ExecuteAction(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	id := c.Param("id")
	actionID := c.Param("actionID")
	if id == "" || actionID == "" {
		response.CustomError(c, http.StatusBadRequest, "INVALID_ID", "Invalid notification or action ID")
		return
	}

	result, err := h.service.ExecuteAction(c.Request.Context(), id, userID, actionID)
	if err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
			return
		}
		if errors.Is(err, ErrUnknownAction) {
			response.CustomError(c, http.StatusBadRequest, "UNKNOWN_ACTION", "Action is not available for this notification")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "ACTION_FAILED", "Failed to execute action")
		return
	}

	response.Success(c, http.StatusOK, ActionResultResponse{Result: result})
}

func (h *Handler) DeleteNotification(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	id := c.Param("id")
	if id == "" {
		response.CustomError(c, http.StatusBadRequest, "INVALID_ID", "Invalid notification ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete notification")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "deleted"})
}

// Broadcast is the internal entry point for city-wide system alerts.
func (h *Handler) Broadcast(c *gin.Context) {
	var req BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	delivered, err := h.service.Broadcast(
		c.Request.Context(),
		Type(req.Type),
		Priority(req.Priority),
		req.Title,
		req.Message,
	)
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "BROADCAST_FAILED", "Failed to broadcast alert")
		return
	}

	response.Success(c, http.StatusOK, BroadcastResponse{Delivered: delivered})
}
