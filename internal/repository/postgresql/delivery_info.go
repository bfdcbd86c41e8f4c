package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
)

type DeliveryInfoRepo struct {
	db db.DB
}

func NewDeliveryInfoRepo(db db.DB) *DeliveryInfoRepo {
	return &DeliveryInfoRepo{db: db}
}

func (r *DeliveryInfoRepo) Create(ctx context.Context, info *repository.DeliveryInfo) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO delivery_infos (
            id, delivery_type, locker_id, sender_id, fingerprint,
            fingerprint_verified, received, order_id, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, info.ID, info.DeliveryType, info.LockerID, info.SenderID, info.Fingerprint,
		info.FingerprintVerified, info.Received, info.OrderID, info.CreatedAt)
	return err
}

func (r *DeliveryInfoRepo) GetByID(ctx context.Context, id string) (*repository.DeliveryInfo, error) {
	var info repository.DeliveryInfo
	err := r.db.Get(ctx, &info, "SELECT * FROM delivery_infos WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &info, nil
}

func (r *DeliveryInfoRepo) Update(ctx context.Context, info *repository.DeliveryInfo) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE delivery_infos
        SET
            delivery_type = $1,
            locker_id = $2,
            sender_id = $3,
            fingerprint = $4,
            fingerprint_verified = $5,
            received = $6,
            order_id = $7
        WHERE id = $8
    `, info.DeliveryType, info.LockerID, info.SenderID, info.Fingerprint,
		info.FingerprintVerified, info.Received, info.OrderID, info.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// Delete reports ErrObjectNotFound for an already-deleted record; the cleanup
// watcher treats that as success.
func (r *DeliveryInfoRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM delivery_infos WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *DeliveryInfoRepo) GetAll(ctx context.Context) ([]*repository.DeliveryInfo, error) {
	var infos []*repository.DeliveryInfo
	err := r.db.Select(ctx, &infos, "SELECT * FROM delivery_infos ORDER BY created_at ASC")
	return infos, err
}
