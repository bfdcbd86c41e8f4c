package storage

import (
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/cache"
	mock_database "gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/db/mocks"
	mock_storage "gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/storage/mocks"
)

type storageMocks struct {
	db       *mock_database.MockDB
	tx       *mock_database.MockTx
	lockers  *mock_storage.MockLockerRepository
	orders   *mock_storage.MockOrderRepository
	delivery *mock_storage.MockDeliveryInfoRepository
	reports  *mock_storage.MockErrorReportRepository
	notifs   *mock_storage.MockNotificationRepository
	users    *mock_storage.MockUserRepository
	outbox   *mock_storage.MockOutboxTaskRepository
	cache    *cache.LockerCache
}

func newTestStorage(t *testing.T) (*PostgresStorage, *storageMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &storageMocks{
		db:       mock_database.NewMockDB(ctrl),
		tx:       mock_database.NewMockTx(ctrl),
		lockers:  mock_storage.NewMockLockerRepository(ctrl),
		orders:   mock_storage.NewMockOrderRepository(ctrl),
		delivery: mock_storage.NewMockDeliveryInfoRepository(ctrl),
		reports:  mock_storage.NewMockErrorReportRepository(ctrl),
		notifs:   mock_storage.NewMockNotificationRepository(ctrl),
		users:    mock_storage.NewMockUserRepository(ctrl),
		outbox:   mock_storage.NewMockOutboxTaskRepository(ctrl),
	}

	m.cache = cache.NewLockerCache(m.lockers, zap.NewNop())
	s := NewPostgresStorage(m.db, m.lockers, m.orders, m.delivery, m.reports,
		m.notifs, m.users, m.outbox, m.cache, zap.NewNop())
	return s, m
}

// expectSavedNotification wires the two-phase persist: open a transaction,
// insert the notification and its outbox task, commit.
func (m *storageMocks) expectSavedNotification() {
	m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
	m.notifs.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
	m.outbox.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
	m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
}

func strPtr(s string) *string {
	return &s
}
