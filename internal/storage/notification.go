package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
)

const (
	// EventsTopic receives one event per persisted notification.
	EventsTopic = "locker_events"
	// AuditTopic receives admin HTTP request audit entries.
	AuditTopic = "audit_logs"
)

// SaveNotification persists a notification together with its outbox event in
// one transaction, so the kafka publisher never sees an event whose
// notification is missing.
func (s *PostgresStorage) SaveNotification(ctx context.Context, n *repository.Notification) error {
	if n.Message == "" {
		return fmt.Errorf("%w: missing notification message", ErrValidation)
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(eventPayload(n))
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	err = db.WithinTransaction(ctx, s.db, func(tx db.Tx) error {
		if err := s.notifRepo.CreateTx(ctx, tx, n); err != nil {
			return fmt.Errorf("failed to insert notification: %w", err)
		}
		task := &repository.OutboxTask{Topic: EventsTopic, Payload: payload}
		return s.outboxRepo.CreateTx(ctx, tx, task)
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("save_notification").Inc()
		return err
	}

	metrics.NotificationsSavedTotal.Inc()
	return nil
}

// saveBestEffort is the side-effect variant: the caller's mutation already
// committed, so a failed notification is logged and dropped.
func (s *PostgresStorage) saveBestEffort(ctx context.Context, n *repository.Notification) {
	if err := s.SaveNotification(ctx, n); err != nil {
		s.logger.Error("best-effort notification dropped",
			zap.String("type", n.Type),
			zap.String("message", n.Message),
			zap.Error(err))
	}
}

func eventPayload(n *repository.Notification) repository.LockerEventPayload {
	p := repository.LockerEventPayload{
		Timestamp:      n.CreatedAt,
		NotificationID: n.ID,
		Type:           n.Type,
		Message:        n.Message,
	}
	if n.LockerID != nil {
		p.LockerID = *n.LockerID
	}
	if n.OrderID != nil {
		p.OrderID = *n.OrderID
	}
	if n.CustomerID != nil {
		p.CustomerID = *n.CustomerID
	}
	if n.ErrorReportID != nil {
		p.ErrorReportID = *n.ErrorReportID
	}
	return p
}

// EnqueueAudit writes an audit payload to the outbox outside any request
// transaction; the audit middleware calls it after the response is written.
func (s *PostgresStorage) EnqueueAudit(ctx context.Context, payload repository.AuditLogPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return db.WithinTransaction(ctx, s.db, func(tx db.Tx) error {
		return s.outboxRepo.CreateTx(ctx, tx, &repository.OutboxTask{Topic: AuditTopic, Payload: raw})
	})
}

func (s *PostgresStorage) MarkNotificationAsRead(ctx context.Context, id string) error {
	return s.notifRepo.MarkRead(ctx, id)
}

func (s *PostgresStorage) MarkAllAdminNotificationsAsRead(ctx context.Context) error {
	return s.notifRepo.MarkAllAdminRead(ctx)
}

func (s *PostgresStorage) ListAdminNotifications(ctx context.Context) ([]*repository.Notification, error) {
	return s.notifRepo.ListAdmin(ctx)
}

func (s *PostgresStorage) ListCustomerNotifications(ctx context.Context, customerID string) ([]*repository.Notification, error) {
	return s.notifRepo.ListByCustomer(ctx, customerID)
}

// ListUnreadPickupNotifications feeds the pickup watcher: unread pickup
// events that carry an order reference.
func (s *PostgresStorage) ListUnreadPickupNotifications(ctx context.Context) ([]*repository.Notification, error) {
	return s.notifRepo.ListUnreadPickups(ctx)
}

// Legacy records were written with a customer reference even though their
// message belongs in the admin feed. The patterns are matched against the
// original Vietnamese UI strings.
var legacyAdminPatterns = []string{
	"báo lỗi",             // error report
	"giữ hàng",            // hold
	"đăng xuất",           // logout
	"cập nhật thông tin", // profile update
}

var customerPrivatePrefixes = []string{
	"Bạn đã gửi hàng",
	"Bạn đã giữ hàng",
}

// IsLegacyAdminMessage reports whether a customer-referenced message should
// be migrated into the admin feed: it matches an admin-relevant pattern and
// is not one of the customer-private confirmations.
func IsLegacyAdminMessage(message string) bool {
	for _, prefix := range customerPrivatePrefixes {
		if strings.HasPrefix(message, prefix) {
			return false
		}
	}
	for _, pattern := range legacyAdminPatterns {
		if strings.Contains(message, pattern) {
			return true
		}
	}
	return false
}

// MigrateLegacyNotifications clears the customer reference on legacy
// admin-relevant records. The repository guard (customer_id IS NOT NULL)
// makes a repeated sweep a no-op: a migrated record no longer matches the
// candidate query at all.
func (s *PostgresStorage) MigrateLegacyNotifications(ctx context.Context) (int, error) {
	candidates, err := s.notifRepo.ListWithCustomer(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list migration candidates: %w", err)
	}

	migrated := 0
	for _, n := range candidates {
		if n.Private || !IsLegacyAdminMessage(n.Message) {
			continue
		}
		changed, err := s.notifRepo.ClearCustomer(ctx, n.ID)
		if err != nil {
			s.logger.Error("failed to migrate legacy notification",
				zap.String("id", n.ID), zap.Error(err))
			continue
		}
		if changed {
			migrated++
		}
	}

	if migrated > 0 {
		s.logger.Info("migrated legacy notifications to admin feed", zap.Int("migrated", migrated))
	}
	return migrated, nil
}

// Notification builders. Each action maps to one notification shape; the
// customer reference decides which feed it lands in.

func NewDepositNotification(order *repository.Order, lockerNumber string) *repository.Notification {
	customerID := order.SenderID
	return &repository.Notification{
		Type:       repository.NotificationTypeInfo,
		Message:    fmt.Sprintf("Bạn đã gửi hàng vào tủ %s", lockerNumber),
		LockerID:   order.LockerID,
		OrderID:    &order.ID,
		CustomerID: &customerID,
		Private:    true,
	}
}

func NewHoldNotification(order *repository.Order, lockerNumber string) *repository.Notification {
	customerID := order.SenderID
	return &repository.Notification{
		Type:       repository.NotificationTypeInfo,
		Message:    fmt.Sprintf("Bạn đã giữ hàng tại tủ %s", lockerNumber),
		LockerID:   order.LockerID,
		OrderID:    &order.ID,
		CustomerID: &customerID,
		Private:    true,
	}
}

func NewDepositAdminNotification(order *repository.Order, lockerNumber string) *repository.Notification {
	action := "gửi hàng"
	if order.TransactionType == "hold" {
		action = "giữ hàng"
	}
	return &repository.Notification{
		Type:     repository.NotificationTypeCustomerAction,
		Message:  fmt.Sprintf("Khách hàng %s đã %s tại tủ %s", order.SenderName, action, lockerNumber),
		LockerID: order.LockerID,
		OrderID:  &order.ID,
	}
}

func NewPickupNotification(orderID, lockerNumber, message string) *repository.Notification {
	if message == "" {
		message = fmt.Sprintf("Đơn hàng %s đã được lấy tại tủ %s", orderID, lockerNumber)
	}
	return &repository.Notification{
		Type:    repository.NotificationTypePickup,
		Message: message,
		OrderID: &orderID,
	}
}

func NewErrorReportNotification(report *repository.ErrorReport) *repository.Notification {
	locker := "không xác định"
	if report.LockerID != nil {
		locker = *report.LockerID
	}
	return &repository.Notification{
		Type:          repository.NotificationTypeError,
		Message:       fmt.Sprintf("Khách hàng %s báo lỗi tủ %s: %s", report.CustomerName, locker, report.Description),
		LockerID:      report.LockerID,
		ErrorReportID: &report.ID,
	}
}

func NewReportResolvedNotification(report *repository.ErrorReport, customerID string) *repository.Notification {
	return &repository.Notification{
		Type:          repository.NotificationTypeInfo,
		Message:       fmt.Sprintf("Sự cố bạn báo cáo đã được xử lý (mã %s)", report.ID),
		LockerID:      report.LockerID,
		CustomerID:    &customerID,
		ErrorReportID: &report.ID,
	}
}

func NewAccountLockNotification(user *repository.User) *repository.Notification {
	return &repository.Notification{
		Type:    repository.NotificationTypeWarning,
		Message: fmt.Sprintf("Tài khoản %s đã bị khóa do không hoạt động", user.Email),
	}
}
