package notification

import "context"

type Service interface {
	// Notify persists the notification and pushes notification:new to the
	// recipient's live sessions. Delivery is best-effort; persistence is not.
	Notify(ctx context.Context, req CreateRequest) error
	List(ctx context.Context, userID string) ([]NotificationResponse, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) error
	MarkAllAsRead(ctx context.Context, userID string) error
}
