package rewards

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidPoints      = errors.New("points must be positive")
	ErrInsufficientPoints = errors.New("insufficient points")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) GetOrCreateAccount(ctx context.Context, userID int64) (*RewardAccount, error) {
	account, err := s.getAccountByUserID(ctx, userID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	account = &RewardAccount{UserID: userID, Balance: 0}
	if err := s.db.WithContext(ctx).Create(account).Error; err != nil {
		if isUniqueConstraintError(err) {
			return s.getAccountByUserID(ctx, userID)
		}
		return nil, err
	}
	return account, nil
}

func (s *Service) Earn(ctx context.Context, userID int64, points int64, reason string) (*RewardAccount, *RewardTransaction, error) {
	if points <= 0 {
		return nil, nil, ErrInvalidPoints
	}

	var account RewardAccount
	var txn RewardTransaction

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := getOrCreateAccountForUpdate(tx, userID, &account); err != nil {
			return err
		}

		account.Balance += points
		if err := tx.Model(&RewardAccount{}).Where("id = ?", account.ID).Update("balance", account.Balance).Error; err != nil {
			return err
		}

		txn = RewardTransaction{AccountID: account.ID, Points: points, Type: TransactionTypeEarn, Reason: reason}
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &account, &txn, nil
}

// Award is the error-only form used by other domains when crediting points.
func (s *Service) Award(ctx context.Context, userID int64, points int64, reason string) error {
	_, _, err := s.Earn(ctx, userID, points, reason)
	return err
}

func (s *Service) Redeem(ctx context.Context, userID int64, points int64, reason string) (*RewardAccount, *RewardTransaction, error) {
	if points <= 0 {
		return nil, nil, ErrInvalidPoints
	}

	var account RewardAccount
	var txn RewardTransaction

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := getOrCreateAccountForUpdate(tx, userID, &account); err != nil {
			return err
		}

		if account.Balance < points {
			return ErrInsufficientPoints
		}

		account.Balance -= points
		if err := tx.Model(&RewardAccount{}).Where("id = ?", account.ID).Update("balance", account.Balance).Error; err != nil {
			return err
		}

		txn = RewardTransaction{AccountID: account.ID, Points: points, Type: TransactionTypeRedeem, Reason: reason}
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &account, &txn, nil
}

func (s *Service) ListTransactions(ctx context.Context, userID int64) ([]RewardTransaction, error) {
	account, err := s.GetOrCreateAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	var txns []RewardTransaction
	err = s.db.WithContext(ctx).
		Where("account_id = ?", account.ID).
		Order("created_at DESC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}

func (s *Service) getAccountByUserID(ctx context.Context, userID int64) (*RewardAccount, error) {
	var account RewardAccount
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func getOrCreateAccountForUpdate(tx *gorm.DB, userID int64, account *RewardAccount) error {
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("user_id = ?", userID).First(account).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		*account = RewardAccount{UserID: userID, Balance: 0}
		if err := tx.Create(account).Error; err != nil {
			if isUniqueConstraintError(err) {
				return tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("user_id = ?", userID).First(account).Error
			}
			return err
		}
	}
	return nil
}

func isUniqueConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique failed")
}
