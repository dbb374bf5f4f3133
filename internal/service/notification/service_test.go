package notification

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/notification"
	"github.com/dayflow-hq/hrms-backend-go/internal/pkg/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockNotificationRepo struct {
	notifications []*notification.Notification
	nextID        int
	createErr     error
	lastListLimit int
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	n.ID = fmt.Sprintf("notif-%d", m.nextID)
	n.CreatedAt = time.Now()
	copied := *n
	m.notifications = append(m.notifications, &copied)
	return nil
}

func (m *mockNotificationRepo) ListByUserID(ctx context.Context, userID string, limit int) ([]*notification.Notification, error) {
	m.lastListLimit = limit
	var out []*notification.Notification
	for _, n := range m.notifications {
		if n.UserID == userID && len(out) < limit {
			copied := *n
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockNotificationRepo) UnreadCount(ctx context.Context, userID string) (int, error) {
	count := 0
	for _, n := range m.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (m *mockNotificationRepo) MarkAsRead(ctx context.Context, id, userID string) error {
	for _, n := range m.notifications {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return nil
		}
	}
	return notification.ErrNotificationNotFound
}

func (m *mockNotificationRepo) MarkAllAsRead(ctx context.Context, userID string) error {
	for _, n := range m.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func TestNotifyPersistsAndPushes(t *testing.T) {
	repo := &mockNotificationRepo{}
	registry := realtime.NewRegistry(8)
	svc := NewNotificationService(repo, realtime.NewEmitter(registry))

	conn, cleanup := registry.Register("user-1", "employee")
	defer cleanup()
	other, cleanupOther := registry.Register("user-2", "employee")
	defer cleanupOther()

	err := svc.Notify(context.Background(), notification.CreateRequest{
		UserID:  "user-1",
		Title:   "New Leave Request",
		Message: "Priya Sharma applied for 3 day(s) of paid leave",
		Type:    notification.TypeLeave,
	})
	require.NoError(t, err)
	require.Len(t, repo.notifications, 1)

	ev := <-conn.Events()
	assert.Equal(t, realtime.EventNotificationNew, ev.Name)
	payload, ok := ev.Payload.(notification.NotificationResponse)
	require.True(t, ok)
	assert.Equal(t, "New Leave Request", payload.Title)
	assert.False(t, payload.IsRead)

	assert.Empty(t, other.Events(), "only the recipient is pushed to")
}

func TestNotifyOfflineRecipientStillPersists(t *testing.T) {
	repo := &mockNotificationRepo{}
	registry := realtime.NewRegistry(8)
	svc := NewNotificationService(repo, realtime.NewEmitter(registry))

	err := svc.Notify(context.Background(), notification.CreateRequest{
		UserID:  "offline-user",
		Title:   "Leave Request Approved",
		Message: "Your paid leave request has been approved",
		Type:    notification.TypeLeave,
	})
	require.NoError(t, err)
	assert.Len(t, repo.notifications, 1)
}

func TestNotifyFailsWhenPersistenceFails(t *testing.T) {
	repo := &mockNotificationRepo{createErr: fmt.Errorf("insert failed")}
	registry := realtime.NewRegistry(8)
	svc := NewNotificationService(repo, realtime.NewEmitter(registry))

	conn, cleanup := registry.Register("user-1", "employee")
	defer cleanup()

	err := svc.Notify(context.Background(), notification.CreateRequest{
		UserID: "user-1",
		Title:  "anything",
	})
	assert.Error(t, err)
	assert.Empty(t, conn.Events(), "nothing is pushed when the row was not written")
}

func TestListCapsAtLatestFifty(t *testing.T) {
	repo := &mockNotificationRepo{}
	registry := realtime.NewRegistry(8)
	svc := NewNotificationService(repo, realtime.NewEmitter(registry))

	for i := 0; i < 55; i++ {
		require.NoError(t, svc.Notify(context.Background(), notification.CreateRequest{
			UserID: "user-1",
			Title:  fmt.Sprintf("notification %d", i),
		}))
	}

	listed, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, listed, 50)
	assert.Equal(t, 50, repo.lastListLimit)
}

func TestMarkAsReadIsScopedToOwner(t *testing.T) {
	repo := &mockNotificationRepo{}
	registry := realtime.NewRegistry(8)
	svc := NewNotificationService(repo, realtime.NewEmitter(registry))

	require.NoError(t, svc.Notify(context.Background(), notification.CreateRequest{
		UserID: "user-1",
		Title:  "hello",
	}))
	id := repo.notifications[0].ID

	err := svc.MarkAsRead(context.Background(), "user-2", id)
	assert.ErrorIs(t, err, notification.ErrNotificationNotFound)

	require.NoError(t, svc.MarkAsRead(context.Background(), "user-1", id))
	count, err := svc.UnreadCount(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMarkAllAsRead(t *testing.T) {
	repo := &mockNotificationRepo{}
	registry := realtime.NewRegistry(8)
	svc := NewNotificationService(repo, realtime.NewEmitter(registry))

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Notify(context.Background(), notification.CreateRequest{
			UserID: "user-1",
			Title:  fmt.Sprintf("notification %d", i),
		}))
	}

	count, err := svc.UnreadCount(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, svc.MarkAllAsRead(context.Background(), "user-1"))
	count, err = svc.UnreadCount(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
