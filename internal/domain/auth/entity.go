package auth

import "time"

type UserRole string

const (
	RoleCitizen  UserRole = "citizen"
	RoleOfficial UserRole = "official"
)

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"type:varchar(16);not null;default:'citizen'"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Ward         string    `json:"ward,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
