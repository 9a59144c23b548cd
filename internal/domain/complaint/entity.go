package complaint

import "time"

type Category string

const (
	CategoryWaterSupply Category = "water_supply"
	CategoryRoads       Category = "roads"
	CategoryElectricity Category = "electricity"
	CategorySanitation  Category = "sanitation"
	CategoryStreetlight Category = "streetlight"
	CategoryOther       Category = "other"
)

type Status string

const (
	StatusSubmitted    Status = "submitted"
	StatusAcknowledged Status = "acknowledged"
	StatusInProgress   Status = "in_progress"
	StatusResolved     Status = "resolved"
	StatusRejected     Status = "rejected"
)

// legal status transitions; resolved and rejected are terminal
var transitions = map[Status][]Status{
	StatusSubmitted:    {StatusAcknowledged, StatusRejected},
	StatusAcknowledged: {StatusInProgress, StatusRejected},
	StatusInProgress:   {StatusResolved, StatusRejected},
}

// CanTransition reports whether a complaint may move from to next.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Complaint is a citizen-filed municipal issue report.
type Complaint struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	CitizenID   int64     `json:"citizen_id" gorm:"not null;index"`
	Category    Category  `json:"category" gorm:"type:varchar(32);not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Ward        string    `json:"ward" gorm:"index"`
	Status      Status    `json:"status" gorm:"type:varchar(16);not null;default:'submitted';index"`
	Remark      string    `json:"remark,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Complaint) TableName() string {
	return "complaints"
}
