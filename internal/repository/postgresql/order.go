package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
)

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) Create(ctx context.Context, order *repository.Order) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO orders (
            id, sender_id, sender_name, sender_phone, sender_type,
            receiver_name, receiver_phone, order_code, locker_id, status,
            pickup_code, transaction_type, created_at, delivered_at, picked_up_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    `, order.ID, order.SenderID, order.SenderName, order.SenderPhone, order.SenderType,
		order.ReceiverName, order.ReceiverPhone, order.OrderCode, order.LockerID, order.Status,
		order.PickupCode, order.TransactionType, order.CreatedAt, order.DeliveredAt, order.PickedUpAt)
	return err
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*repository.Order, error) {
	var order repository.Order
	err := r.db.Get(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

// MarkPickedUp flips the order to picked_up exactly once. A second call
// affects zero rows and reports ErrInvalidTransition, which the pickup
// bridge turns into its "already picked up" result.
func (r *OrderRepo) MarkPickedUp(ctx context.Context, id string, at time.Time) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE orders
        SET status = $2, picked_up_at = $3
        WHERE id = $1 AND status <> $2
    `, id, repository.OrderStatusPickedUp, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrInvalidTransition
	}
	return nil
}

func (r *OrderRepo) GetBySender(ctx context.Context, senderID string, limit int) ([]*repository.Order, error) {
	query := "SELECT * FROM orders WHERE sender_id = $1 ORDER BY created_at DESC"
	args := []interface{}{senderID}

	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	var orders []*repository.Order
	err := r.db.Select(ctx, &orders, query, args...)
	return orders, err
}

func (r *OrderRepo) GetActiveByLocker(ctx context.Context, lockerID string) ([]*repository.Order, error) {
	var orders []*repository.Order
	err := r.db.Select(ctx, &orders, `
        SELECT * FROM orders
        WHERE locker_id = $1 AND status NOT IN ($2, $3)
        ORDER BY created_at ASC
    `, lockerID, repository.OrderStatusPickedUp, repository.OrderStatusExpired)
	if err != nil {
		return nil, fmt.Errorf("failed to get active orders for locker %s: %w", lockerID, err)
	}
	return orders, nil
}
