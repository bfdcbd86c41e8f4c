//go:generate mockgen -source ./types.go -destination=./mocks/storage.go -package=mock_storage
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/cache"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
)

// ErrValidation marks malformed or missing input, rejected before any
// mutation.
var ErrValidation = errors.New("validation failed")

type LockerRepository interface {
	Create(ctx context.Context, locker *repository.Locker) error
	GetByID(ctx context.Context, id string) (*repository.Locker, error)
	GetByNumber(ctx context.Context, number string) (*repository.Locker, error)
	GetAll(ctx context.Context) ([]*repository.Locker, error)
	Update(ctx context.Context, locker *repository.Locker) error
	Delete(ctx context.Context, id string) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *repository.Order) error
	GetByID(ctx context.Context, id string) (*repository.Order, error)
	MarkPickedUp(ctx context.Context, id string, at time.Time) error
	GetBySender(ctx context.Context, senderID string, limit int) ([]*repository.Order, error)
	GetActiveByLocker(ctx context.Context, lockerID string) ([]*repository.Order, error)
}

type DeliveryInfoRepository interface {
	Create(ctx context.Context, info *repository.DeliveryInfo) error
	GetByID(ctx context.Context, id string) (*repository.DeliveryInfo, error)
	Update(ctx context.Context, info *repository.DeliveryInfo) error
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]*repository.DeliveryInfo, error)
}

type ErrorReportRepository interface {
	Create(ctx context.Context, report *repository.ErrorReport) error
	GetByID(ctx context.Context, id string) (*repository.ErrorReport, error)
	List(ctx context.Context) ([]*repository.ErrorReport, error)
	ListByLocker(ctx context.Context, lockerID string) ([]*repository.ErrorReport, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*repository.ErrorReport, error)
	UpdateIfStatus(ctx context.Context, report *repository.ErrorReport, expectedStatus string) error
	UpdateIfStatusAndNotStage(ctx context.Context, report *repository.ErrorReport, expectedStatus, forbiddenStage string) error
	UpdateIfStage(ctx context.Context, report *repository.ErrorReport, expectedStage string) error
}

type NotificationRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, n *repository.Notification) error
	GetByID(ctx context.Context, id string) (*repository.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllAdminRead(ctx context.Context) error
	ListAdmin(ctx context.Context) ([]*repository.Notification, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*repository.Notification, error)
	ListUnreadPickups(ctx context.Context) ([]*repository.Notification, error)
	ListWithCustomer(ctx context.Context) ([]*repository.Notification, error)
	ClearCustomer(ctx context.Context, id string) (bool, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*repository.User, error)
	GetCustomers(ctx context.Context) ([]*repository.User, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasks(ctx context.Context, db db.DB, limit int) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, db db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}

// PickupResult is the structured outcome of the hardware pickup bridge, so
// the HTTP boundary and the notification watcher can react uniformly without
// unwrapping errors.
type PickupResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type PostgresStorage struct {
	db           db.DB
	lockerRepo   LockerRepository
	orderRepo    OrderRepository
	deliveryRepo DeliveryInfoRepository
	reportRepo   ErrorReportRepository
	notifRepo    NotificationRepository
	userRepo     UserRepository
	outboxRepo   OutboxTaskRepository
	lockerCache  *cache.LockerCache
	logger       *zap.Logger
}

func NewPostgresStorage(
	database db.DB,
	lockerRepo LockerRepository,
	orderRepo OrderRepository,
	deliveryRepo DeliveryInfoRepository,
	reportRepo ErrorReportRepository,
	notifRepo NotificationRepository,
	userRepo UserRepository,
	outboxRepo OutboxTaskRepository,
	lockerCache *cache.LockerCache,
	logger *zap.Logger,
) *PostgresStorage {
	return &PostgresStorage{
		db:           database,
		lockerRepo:   lockerRepo,
		orderRepo:    orderRepo,
		deliveryRepo: deliveryRepo,
		reportRepo:   reportRepo,
		notifRepo:    notifRepo,
		userRepo:     userRepo,
		outboxRepo:   outboxRepo,
		lockerCache:  lockerCache,
		logger:       logger,
	}
}
