package notification

import (
	"context"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/notification"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/realtime"
)

// listLimit caps how many notifications a single listing returns
const listLimit = 50

type NotificationServiceImpl struct {
	notificationRepo notification.Repository
	emitter          *realtime.Emitter
}

func NewNotificationService(notificationRepo notification.Repository, emitter *realtime.Emitter) notification.Service {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		emitter:          emitter,
	}
}

// Notify implements notification.Service.
func (s *NotificationServiceImpl) Notify(ctx context.Context, req notification.CreateRequest) error {
	n := &notification.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
		Link:    req.Link,
	}

	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return err
	}

	// Push only after the row exists; an offline recipient reads it later
	s.emitter.EmitToUser(n.UserID, realtime.EventNotificationNew, toResponse(n))

	return nil
}

func toResponse(n *notification.Notification) notification.NotificationResponse {
	return notification.NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		IsRead:    n.IsRead,
		Link:      n.Link,
		CreatedAt: n.CreatedAt,
	}
}

// List implements notification.Service.
func (s *NotificationServiceImpl) List(ctx context.Context, userID string) ([]notification.NotificationResponse, error) {
	notifications, err := s.notificationRepo.ListByUserID(ctx, userID, listLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]notification.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, toResponse(n))
	}

	return responses, nil
}

// UnreadCount implements notification.Service.
func (s *NotificationServiceImpl) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.notificationRepo.UnreadCount(ctx, userID)
}

// MarkAsRead implements notification.Service. The user ID scopes the update
// so one user cannot read-mark another's notifications.
func (s *NotificationServiceImpl) MarkAsRead(ctx context.Context, userID, notificationID string) error {
	return s.notificationRepo.MarkAsRead(ctx, notificationID, userID)
}

// MarkAllAsRead implements notification.Service.
func (s *NotificationServiceImpl) MarkAllAsRead(ctx context.Context, userID string) error {
	return s.notificationRepo.MarkAllAsRead(ctx, userID)
}
