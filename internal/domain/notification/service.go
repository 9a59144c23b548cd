package notification

import (
	"context"
	"fmt"
	"strings"
)

// publisher pushes realtime hints about new notifications. The polling
// endpoint remains the source of truth; a nil publisher is fine.
type publisher interface {
	PushNotification(userID int64, n *Notification)
}

// userLister supplies the broadcast fan-out targets.
type userLister interface {
	ListIDs(ctx context.Context) ([]int64, error)
}

type Service struct {
	repo  *Repository
	users userLister
	pub   publisher
}

func NewService(repo *Repository, users userLister, pub publisher) *Service {
	return &Service{repo: repo, users: users, pub: pub}
}

func (s *Service) Create(ctx context.Context, n *Notification) error {
	if n.Priority == "" {
		n.Priority = PriorityMedium
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}
	if s.pub != nil {
		s.pub.PushNotification(n.UserID, n)
	}
	return nil
}

// List returns the user's full notification set newest-first together with
// the unread count. No pagination: the panel refetches the whole set.
func (s *Service) List(ctx context.Context, userID int64) ([]Notification, int64, error) {
	list, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}

func (s *Service) GetUnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *Service) MarkAsRead(ctx context.Context, id string, userID int64) error {
	return s.repo.MarkAsRead(ctx, id, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, id string, userID int64) error {
	return s.repo.Delete(ctx, id, userID)
}

// ExecuteAction runs a named action attached to a notification. The id is
// opaque; execution here means confirming it exists, marking the
// notification read and returning a human-readable confirmation built from
// the identifier ("view_complaint" → "view complaint").
func (s *Service) ExecuteAction(ctx context.Context, id string, userID int64, actionID string) (string, error) {
	n, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		return "", err
	}

	action, ok := n.ActionByID(actionID)
	if !ok {
		return "", ErrUnknownAction
	}

	if err := s.repo.MarkAsRead(ctx, id, userID); err != nil {
		return "", err
	}

	return fmt.Sprintf("Action executed: %s", humanizeActionID(action.ID)), nil
}

func humanizeActionID(id string) string {
	return strings.NewReplacer("_", " ", "-", " ").Replace(id)
}

// Broadcast delivers a system alert to every registered user.
func (s *Service) Broadcast(ctx context.Context, t Type, priority Priority, title, message string) (int, error) {
	ids, err := s.users.ListIDs(ctx)
	if err != nil {
		return 0, err
	}

	ns := make([]*Notification, 0, len(ids))
	for _, id := range ids {
		ns = append(ns, &Notification{
			UserID:   id,
			Type:     t,
			Priority: priority,
			Title:    title,
			Message:  message,
		})
	}

	if err := s.repo.CreateBatch(ctx, ns); err != nil {
		return 0, err
	}

	if s.pub != nil {
		for _, n := range ns {
			s.pub.PushNotification(n.UserID, n)
		}
	}

	return len(ns), nil
}

// NotifyComplaintFiled tells the filer their complaint was received.
func (s *Service) NotifyComplaintFiled(ctx context.Context, userID int64, complaintID, title string) error {
	return s.Create(ctx, &Notification{
		UserID:    userID,
		Type:      TypeComplaintUpdate,
		Priority:  PriorityMedium,
		Title:     "Complaint received",
		Message:   fmt.Sprintf("Your complaint %q has been registered and assigned for review", title),
		RelatedID: &complaintID,
		Actions: Actions{
			{Label: "View Complaint", ID: "view_complaint", Variant: "default"},
		},
	})
}

// NotifyStatusChange tells the filer a complaint moved to a new status.
// Rejections are urgent, resolutions high, everything else medium.
func (s *Service) NotifyStatusChange(ctx context.Context, userID int64, complaintID, title, status string) error {
	priority := PriorityMedium
	switch status {
	case "rejected":
		priority = PriorityUrgent
	case "resolved":
		priority = PriorityHigh
	}

	return s.Create(ctx, &Notification{
		UserID:    userID,
		Type:      TypeStatusChange,
		Priority:  priority,
		Title:     "Complaint status updated",
		Message:   fmt.Sprintf("Complaint %q is now %s", title, strings.ReplaceAll(status, "_", " ")),
		RelatedID: &complaintID,
		Actions: Actions{
			{Label: "View Complaint", ID: "view_complaint", Variant: "default"},
			{Label: "Contact Team", ID: "contact_team", Variant: "outline"},
		},
	})
}

// NotifyCommunityActivity fans a community event out to the given users.
func (s *Service) NotifyCommunityActivity(ctx context.Context, userIDs []int64, title, message string) error {
	ns := make([]*Notification, 0, len(userIDs))
	for _, id := range userIDs {
		ns = append(ns, &Notification{
			UserID:   id,
			Type:     TypeCommunityActivity,
			Priority: PriorityLow,
			Title:    title,
			Message:  message,
		})
	}
	if err := s.repo.CreateBatch(ctx, ns); err != nil {
		return err
	}
	if s.pub != nil {
		for _, n := range ns {
			s.pub.PushNotification(n.UserID, n)
		}
	}
	return nil
}
