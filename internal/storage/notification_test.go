package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
)

func TestIsLegacyAdminMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{
			name:    "error report",
			message: "Khách hàng Nguyen Van A báo lỗi tủ A-1: cửa kẹt",
			want:    true,
		},
		{
			name:    "hold action",
			message: "Khách hàng Tran Thi B đã giữ hàng tại tủ B-2",
			want:    true,
		},
		{
			name:    "logout event",
			message: "Khách hàng đã đăng xuất",
			want:    true,
		},
		{
			name:    "profile update",
			message: "Khách hàng đã cập nhật thông tin",
			want:    true,
		},
		{
			name:    "customer deposit confirmation stays private",
			message: "Bạn đã gửi hàng vào tủ A-1",
			want:    false,
		},
		{
			name:    "customer hold confirmation stays private",
			message: "Bạn đã giữ hàng tại tủ B-2",
			want:    false,
		},
		{
			name:    "unrelated message",
			message: "Đơn hàng ord-1 đã được lấy tại tủ A-1",
			want:    false,
		},
		{
			name:    "empty message",
			message: "",
			want:    false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, IsLegacyAdminMessage(tc.message))
		})
	}
}

func TestSaveNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty message before touching the database", func(t *testing.T) {
		s, _ := newTestStorage(t)

		err := s.SaveNotification(ctx, &repository.Notification{})

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("persists notification and outbox event together", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.notifs.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, n *repository.Notification) error {
				assert.NotEmpty(t, n.ID)
				assert.False(t, n.CreatedAt.IsZero())
				return nil
			})
		m.outbox.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, task *repository.OutboxTask) error {
				assert.Equal(t, EventsTopic, task.Topic)
				assert.NotEmpty(t, task.Payload)
				return nil
			})
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		err := s.SaveNotification(ctx, &repository.Notification{
			Type:    repository.NotificationTypeInfo,
			Message: "Bạn đã gửi hàng vào tủ A-1",
		})

		assert.NoError(t, err)
	})

	t.Run("failed insert rolls back, outbox task is never written", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.notifs.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
			Return(errors.New("constraint violation"))
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		err := s.SaveNotification(ctx, &repository.Notification{
			Type:    repository.NotificationTypeInfo,
			Message: "Bạn đã gửi hàng vào tủ A-1",
		})

		assert.Error(t, err)
	})
}

func TestMigrateLegacyNotifications(t *testing.T) {
	ctx := context.Background()

	t.Run("moves admin-relevant records, skips private and unrelated ones", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.notifs.EXPECT().ListWithCustomer(gomock.Any()).Return([]*repository.Notification{
			{ID: "n-1", Message: "Khách hàng Nguyen Van A báo lỗi tủ A-1: cửa kẹt"},
			{ID: "n-2", Message: "Bạn đã gửi hàng vào tủ A-1", Private: true},
			{ID: "n-3", Message: "Khách hàng Tran Thi B đã giữ hàng tại tủ B-2", Private: true},
			{ID: "n-4", Message: "Đơn hàng ord-1 đã được lấy tại tủ A-1"},
			{ID: "n-5", Message: "Khách hàng đã đăng xuất"},
		}, nil)
		m.notifs.EXPECT().ClearCustomer(gomock.Any(), "n-1").Return(true, nil)
		m.notifs.EXPECT().ClearCustomer(gomock.Any(), "n-5").Return(true, nil)

		migrated, err := s.MigrateLegacyNotifications(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, migrated)
	})

	t.Run("repeated sweep is a no-op", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.notifs.EXPECT().ListWithCustomer(gomock.Any()).
			Return([]*repository.Notification{}, nil)

		migrated, err := s.MigrateLegacyNotifications(ctx)

		require.NoError(t, err)
		assert.Zero(t, migrated)
	})

	t.Run("a failed record does not abort the sweep", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.notifs.EXPECT().ListWithCustomer(gomock.Any()).Return([]*repository.Notification{
			{ID: "n-1", Message: "Khách hàng đã đăng xuất"},
			{ID: "n-2", Message: "Khách hàng đã cập nhật thông tin"},
		}, nil)
		m.notifs.EXPECT().ClearCustomer(gomock.Any(), "n-1").
			Return(false, errors.New("connection reset"))
		m.notifs.EXPECT().ClearCustomer(gomock.Any(), "n-2").Return(true, nil)

		migrated, err := s.MigrateLegacyNotifications(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, migrated)
	})
}
