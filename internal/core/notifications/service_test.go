package notifications

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing

type mockNotificationRepo struct {
	notifications map[int64]*Notification
	nextID        int64
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{notifications: make(map[int64]*Notification), nextID: 1}
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *Notification) (*Notification, error) {
	cp := *n
	cp.ID = m.nextID
	cp.CreatedAt = time.Now()
	cp.Read = false
	m.nextID++
	m.notifications[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *mockNotificationRepo) ListByUser(ctx context.Context, userID int64) ([]*Notification, error) {
	var result []*Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			cp := *n
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (m *mockNotificationRepo) ListUnreadByUser(ctx context.Context, userID int64) ([]*Notification, error) {
	var result []*Notification
	for _, n := range m.notifications {
		if n.UserID == userID && !n.Read {
			cp := *n
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (m *mockNotificationRepo) CountUnread(ctx context.Context, userID int64) (int, error) {
	count := 0
	for _, n := range m.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, id int64) (*Notification, error) {
	n, ok := m.notifications[id]
	if !ok {
		return nil, ErrNotificationNotFound
	}
	n.Read = true
	cp := *n
	return &cp, nil
}

func (m *mockNotificationRepo) MarkAllRead(ctx context.Context, userID int64) error {
	for _, n := range m.notifications {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

func (m *mockNotificationRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.notifications[id]; !ok {
		return ErrNotificationNotFound
	}
	delete(m.notifications, id)
	return nil
}

func TestNotificationService_Notify_AppendsUnread(t *testing.T) {
	service := NewService(newMockNotificationRepo(), nil)

	link := "/posts/7"
	n, err := service.Notify(context.Background(), 10, "Your post was approved", TypePostApproved, &link)
	require.NoError(t, err)
	assert.False(t, n.Read)
	assert.Equal(t, TypePostApproved, n.Type)
	require.NotNil(t, n.Link)
	assert.Equal(t, "/posts/7", *n.Link)

	count, err := service.UnreadCount(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNotificationService_Notify_Validation(t *testing.T) {
	service := NewService(newMockNotificationRepo(), nil)
	ctx := context.Background()

	_, err := service.Notify(ctx, 10, "   ", TypeSystem, nil)
	assert.ErrorIs(t, err, ErrMessageEmpty)

	_, err = service.Notify(ctx, 10, strings.Repeat("x", 501), TypeSystem, nil)
	assert.ErrorIs(t, err, ErrMessageTooLong)

	_, err = service.Notify(ctx, 10, "hello", "CARRIER_PIGEON", nil)
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestNotificationService_MarkRead_DropsFromUnread(t *testing.T) {
	service := NewService(newMockNotificationRepo(), nil)
	ctx := context.Background()

	n, err := service.Notify(ctx, 10, "first", TypeSystem, nil)
	require.NoError(t, err)
	_, err = service.Notify(ctx, 10, "second", TypeSystem, nil)
	require.NoError(t, err)

	marked, err := service.MarkRead(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, marked.Read)

	unread, err := service.ListUnread(ctx, 10)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "second", unread[0].Message)

	// Full list still has both
	all, err := service.ListForUser(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestNotificationService_MarkAllRead_ScopedToUser(t *testing.T) {
	service := NewService(newMockNotificationRepo(), nil)
	ctx := context.Background()

	_, err := service.Notify(ctx, 10, "for ten", TypeSystem, nil)
	require.NoError(t, err)
	_, err = service.Notify(ctx, 11, "for eleven", TypeSystem, nil)
	require.NoError(t, err)

	require.NoError(t, service.MarkAllRead(ctx, 10))

	count, err := service.UnreadCount(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	count, err = service.UnreadCount(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNotificationService_MarkRead_Unknown(t *testing.T) {
	service := NewService(newMockNotificationRepo(), nil)

	_, err := service.MarkRead(context.Background(), 404)
	assert.True(t, IsNotFound(err))
}

func TestNotificationService_Delete(t *testing.T) {
	service := NewService(newMockNotificationRepo(), nil)
	ctx := context.Background()

	n, err := service.Notify(ctx, 10, "temporary", TypeSystem, nil)
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, n.ID))

	all, err := service.ListForUser(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, all)
}
