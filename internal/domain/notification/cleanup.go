package notification

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// CleanupService purges read notifications past the retention window.
// Scheduled from cmd/api with cron.
type CleanupService struct {
	repo *Repository
	log  *zap.Logger
}

func NewCleanupService(repo *Repository, log *zap.Logger) *CleanupService {
	return &CleanupService{repo: repo, log: log}
}

func (c *CleanupService) CleanupOldNotifications(ctx context.Context, daysToKeep int) error {
	startTime := time.Now()

	deleted, err := c.repo.DeleteReadOlderThan(ctx, time.Duration(daysToKeep)*24*time.Hour)
	if err != nil {
		c.log.Error("notification cleanup failed", zap.Error(err))
		return err
	}

	c.log.Info("notification cleanup completed",
		zap.Int64("deleted", deleted),
		zap.Duration("took", time.Since(startTime)),
	)
	return nil
}
