package complaint

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, c *Complaint) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Complaint, error) {
	var c Complaint
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repository) ListByCitizen(ctx context.Context, citizenID int64) ([]Complaint, error) {
	var out []Complaint
	err := r.db.WithContext(ctx).
		Where("citizen_id = ?", citizenID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// ListRecent backs the community feed.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]Complaint, error) {
	var out []Complaint
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ListByStatus backs the officials review queue; empty status means all open.
func (r *Repository) ListByStatus(ctx context.Context, status Status) ([]Complaint, error) {
	q := r.db.WithContext(ctx).Order("created_at ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	} else {
		q = q.Where("status NOT IN ?", []Status{StatusResolved, StatusRejected})
	}
	var out []Complaint
	err := q.Find(&out).Error
	return out, err
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status Status, remark string) error {
	res := r.db.WithContext(ctx).
		Model(&Complaint{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "remark": remark})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrComplaintNotFound
	}
	return nil
}
