package notification

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Type classifies the event a notification describes.
type Type string

const (
	TypeComplaintUpdate   Type = "complaint_update"
	TypeStatusChange      Type = "status_change"
	TypeCommunityActivity Type = "community_activity"
	TypeSystemAlert       Type = "system_alert"
	TypeEmergency         Type = "emergency"
)

// Priority is ordered by severity, low to urgent.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var severityRank = map[Priority]int{
	PriorityLow:    0,
	PriorityMedium: 1,
	PriorityHigh:   2,
	PriorityUrgent: 3,
}

// Severity returns the numeric rank of the priority (-1 for unknown values).
func (p Priority) Severity() int {
	if rank, ok := severityRank[p]; ok {
		return rank
	}
	return -1
}

// Action is a user-invokable command attached to a notification.
// The id is opaque to this service beyond existence checks.
type Action struct {
	Label   string `json:"label"`
	ID      string `json:"action"`
	Variant string `json:"variant"`
}

// Actions is stored as a JSON column. The list is immutable after creation.
type Actions []Action

func (a Actions) Value() (driver.Value, error) {
	if len(a) == 0 {
		return nil, nil
	}
	return json.Marshal(a)
}

func (a *Actions) Scan(value any) error {
	if value == nil {
		*a = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("unsupported actions column type %T", value)
	}
}

// Notification is one event record shown to a citizen or official.
type Notification struct {
	ID        string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID    int64      `json:"user_id" gorm:"not null;index:idx_notifications_user_unread"`
	Type      Type       `json:"type" gorm:"type:varchar(32);not null"`
	Priority  Priority   `json:"priority" gorm:"type:varchar(16);not null;default:'medium'"`
	Title     string     `json:"title" gorm:"not null"`
	Message   string     `json:"message"`
	IsRead    bool       `json:"is_read" gorm:"index:idx_notifications_user_unread"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	Actions   Actions    `json:"actions,omitempty" gorm:"type:text"`
	RelatedID *string    `json:"related_id,omitempty" gorm:"type:varchar(64)"`
	CreatedAt time.Time  `json:"created_at" gorm:"index:idx_notifications_user_created"`
}

func (Notification) TableName() string {
	return "notifications"
}

func (n *Notification) BeforeCreate(_ *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// MarkAsRead flips the read flag. The transition only ever goes false→true.
func (n *Notification) MarkAsRead() {
	if n.IsRead {
		return
	}
	n.IsRead = true
	now := time.Now()
	n.ReadAt = &now
}

// ActionByID finds an attached action by its opaque identifier.
func (n *Notification) ActionByID(id string) (Action, bool) {
	for _, a := range n.Actions {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}
