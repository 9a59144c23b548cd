package complaint

import (
	"context"
	"strconv"

	"go.uber.org/zap"
)

const (
	pointsComplaintFiled    = 10
	pointsComplaintResolved = 25
	feedLimit               = 50
)

// notifier delivers complaint lifecycle notifications to the filer.
type notifier interface {
	NotifyComplaintFiled(ctx context.Context, userID int64, complaintID, title string) error
	NotifyStatusChange(ctx context.Context, userID int64, complaintID, title, status string) error
}

// rewarder credits points to a citizen's reward account.
type rewarder interface {
	Award(ctx context.Context, userID int64, points int64, reason string) error
}

type Service struct {
	repo     *Repository
	notifier notifier
	rewards  rewarder
	log      *zap.Logger
}

func NewService(repo *Repository, notifier notifier, rewards rewarder, log *zap.Logger) *Service {
	return &Service{repo: repo, notifier: notifier, rewards: rewards, log: log}
}

// Create files a new complaint, credits filing points and notifies the
// citizen. Notification or reward failures do not fail the filing.
func (s *Service) Create(ctx context.Context, citizenID int64, req CreateComplaintRequest) (*Complaint, error) {
	c := &Complaint{
		CitizenID:   citizenID,
		Category:    Category(req.Category),
		Title:       req.Title,
		Description: req.Description,
		Ward:        req.Ward,
		Status:      StatusSubmitted,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	if err := s.rewards.Award(ctx, citizenID, pointsComplaintFiled, "complaint_filed"); err != nil {
		s.log.Warn("reward credit failed", zap.Int64("complaint_id", c.ID), zap.Error(err))
	}

	if err := s.notifier.NotifyComplaintFiled(ctx, citizenID, strconv.FormatInt(c.ID, 10), c.Title); err != nil {
		s.log.Warn("filing notification failed", zap.Int64("complaint_id", c.ID), zap.Error(err))
	}

	return c, nil
}

func (s *Service) ListByCitizen(ctx context.Context, citizenID int64) ([]Complaint, error) {
	return s.repo.ListByCitizen(ctx, citizenID)
}

// Get returns one complaint. Citizens see only their own; officials see all.
func (s *Service) Get(ctx context.Context, id, userID int64, role string) (*Complaint, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != "official" && c.CitizenID != userID {
		return nil, ErrNotComplaintOwner
	}
	return c, nil
}

// CommunityFeed lists recent complaints across the city, anonymized.
func (s *Service) CommunityFeed(ctx context.Context) ([]FeedItem, error) {
	list, err := s.repo.ListRecent(ctx, feedLimit)
	if err != nil {
		return nil, err
	}

	items := make([]FeedItem, len(list))
	for i, c := range list {
		items[i] = FeedItem{
			ID:        c.ID,
			Category:  string(c.Category),
			Title:     c.Title,
			Ward:      c.Ward,
			Status:    string(c.Status),
			CreatedAt: c.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	return items, nil
}

func (s *Service) ListForReview(ctx context.Context, status Status) ([]Complaint, error) {
	return s.repo.ListByStatus(ctx, status)
}

// UpdateStatus moves a complaint along its lifecycle and notifies the
// filer. Resolution credits bonus points.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req UpdateStatusRequest) (*Complaint, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := Status(req.Status)
	if !CanTransition(c.Status, next) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, next, req.Remark); err != nil {
		return nil, err
	}
	c.Status = next
	c.Remark = req.Remark

	if next == StatusResolved {
		if err := s.rewards.Award(ctx, c.CitizenID, pointsComplaintResolved, "complaint_resolved"); err != nil {
			s.log.Warn("resolution bonus failed", zap.Int64("complaint_id", c.ID), zap.Error(err))
		}
	}

	if err := s.notifier.NotifyStatusChange(ctx, c.CitizenID, strconv.FormatInt(c.ID, 10), c.Title, string(next)); err != nil {
		s.log.Warn("status notification failed", zap.Int64("complaint_id", c.ID), zap.Error(err))
	}

	return c, nil
}
