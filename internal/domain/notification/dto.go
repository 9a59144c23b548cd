package notification

import "time"

// NotificationResponse for API responses
type NotificationResponse struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Priority  string   `json:"priority"`
	Title     string   `json:"title"`
	Message   string   `json:"message"`
	IsRead    bool     `json:"is_read"`
	ReadAt    *string  `json:"read_at,omitempty"`
	Actions   []Action `json:"actions,omitempty"`
	RelatedID *string  `json:"related_id,omitempty"`
	CreatedAt string   `json:"created_at"`
}

// NotificationResponseFromEntity converts entity to response DTO
func NotificationResponseFromEntity(n *Notification) *NotificationResponse {
	resp := &NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Priority:  string(n.Priority),
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		Actions:   n.Actions,
		RelatedID: n.RelatedID,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}

	if n.ReadAt != nil {
		readAt := n.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &readAt
	}

	return resp
}

// NotificationListResponse for list endpoint
type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	UnreadCount   int64                   `json:"unread_count"`
}

// UnreadCountResponse for unread count endpoint
type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

// ActionResultResponse carries the confirmation text for a executed action.
type ActionResultResponse struct {
	Result string `json:"result"`
}

// BroadcastRequest for the internal broadcast endpoint
type BroadcastRequest struct {
	Type     string `json:"type" validate:"required,oneof=system_alert emergency"`
	Priority string `json:"priority" validate:"required,oneof=low medium high urgent"`
	Title    string `json:"title" validate:"required,max=255"`
	Message  string `json:"message" validate:"required"`
}

// BroadcastResponse reports how many users the alert reached.
type BroadcastResponse struct {
	Delivered int `json:"delivered"`
}
