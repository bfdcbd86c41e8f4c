package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
)

type NotificationRepo struct {
	db db.DB
}

func NewNotificationRepo(db db.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

const insertNotification = `
        INSERT INTO notifications (
            id, type, message, locker_id, order_id, customer_id,
            error_report_id, private, read, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

func (r *NotificationRepo) Create(ctx context.Context, n *repository.Notification) error {
	_, err := r.db.Exec(ctx, insertNotification,
		n.ID, n.Type, n.Message, n.LockerID, n.OrderID, n.CustomerID,
		n.ErrorReportID, n.Private, n.Read, n.CreatedAt)
	return err
}

func (r *NotificationRepo) CreateTx(ctx context.Context, tx db.Tx, n *repository.Notification) error {
	_, err := tx.Exec(ctx, insertNotification,
		n.ID, n.Type, n.Message, n.LockerID, n.OrderID, n.CustomerID,
		n.ErrorReportID, n.Private, n.Read, n.CreatedAt)
	return err
}

func (r *NotificationRepo) GetByID(ctx context.Context, id string) (*repository.Notification, error) {
	var n repository.Notification
	err := r.db.Get(ctx, &n, "SELECT * FROM notifications WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "UPDATE notifications SET read = true WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *NotificationRepo) MarkAllAdminRead(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
        UPDATE notifications
        SET read = true
        WHERE customer_id IS NULL AND private = false AND read = false
    `)
	return err
}

func (r *NotificationRepo) ListAdmin(ctx context.Context) ([]*repository.Notification, error) {
	var ns []*repository.Notification
	err := r.db.Select(ctx, &ns, `
        SELECT * FROM notifications
        WHERE customer_id IS NULL AND private = false
        ORDER BY created_at DESC
    `)
	return ns, err
}

func (r *NotificationRepo) ListByCustomer(ctx context.Context, customerID string) ([]*repository.Notification, error) {
	var ns []*repository.Notification
	err := r.db.Select(ctx, &ns, `
        SELECT * FROM notifications
        WHERE customer_id = $1
        ORDER BY created_at DESC
    `, customerID)
	return ns, err
}

// ListUnreadPickups feeds the pickup watcher: hardware that cannot call the
// HTTP bridge reports a pickup by writing a pickup-typed notification with an
// order reference.
func (r *NotificationRepo) ListUnreadPickups(ctx context.Context) ([]*repository.Notification, error) {
	var ns []*repository.Notification
	err := r.db.Select(ctx, &ns, `
        SELECT * FROM notifications
        WHERE type = $1 AND read = false AND order_id IS NOT NULL
        ORDER BY created_at ASC
    `, repository.NotificationTypePickup)
	return ns, err
}

// ListWithCustomer returns legacy-migration candidates.
func (r *NotificationRepo) ListWithCustomer(ctx context.Context) ([]*repository.Notification, error) {
	var ns []*repository.Notification
	err := r.db.Select(ctx, &ns, `
        SELECT * FROM notifications
        WHERE customer_id IS NOT NULL
        ORDER BY created_at ASC
    `)
	return ns, err
}

// ClearCustomer detaches a notification from its customer so it joins the
// admin feed. The customer_id guard makes repeated sweeps no-ops.
func (r *NotificationRepo) ClearCustomer(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE notifications
        SET customer_id = NULL
        WHERE id = $1 AND customer_id IS NOT NULL
    `, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
