package rewards

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartconnect/internal/domain/auth"
)

const (
	TransactionTypeEarn   = "EARN"
	TransactionTypeRedeem = "REDEEM"
)

// RewardAccount stores a citizen's points balance.
type RewardAccount struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID  int64     `json:"user_id" gorm:"not null;uniqueIndex;index"`
	Balance int64     `json:"balance" gorm:"not null;default:0"`

	User *auth.User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (RewardAccount) TableName() string {
	return "reward_accounts"
}

func (a *RewardAccount) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// RewardTransaction records point operations.
type RewardTransaction struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `json:"account_id" gorm:"type:uuid;not null;index"`
	Points    int64     `json:"points" gorm:"not null"`
	Type      string    `json:"type" gorm:"type:varchar(16);not null;index;check:type IN ('EARN','REDEEM')"`
	Reason    string    `json:"reason" gorm:"type:varchar(64)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Account *RewardAccount `json:"account,omitempty" gorm:"foreignKey:AccountID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (RewardTransaction) TableName() string {
	return "reward_transactions"
}

func (t *RewardTransaction) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
