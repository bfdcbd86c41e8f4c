package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
)

type LockerRepo struct {
	db db.DB
}

func NewLockerRepo(db db.DB) *LockerRepo {
	return &LockerRepo{db: db}
}

func (r *LockerRepo) Create(ctx context.Context, locker *repository.Locker) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO lockers (
            id, number, size, status, door_state, current_order_id, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, locker.ID, locker.Number, locker.Size, locker.Status, locker.DoorState, locker.CurrentOrderID, locker.UpdatedAt)
	return err
}

func (r *LockerRepo) GetByID(ctx context.Context, id string) (*repository.Locker, error) {
	var locker repository.Locker
	err := r.db.Get(ctx, &locker, "SELECT * FROM lockers WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &locker, nil
}

// GetByNumber resolves a locker by its normalized number. When duplicate
// records exist the one whose id equals the number wins, matching the
// canonical-record rule of the dedup job.
func (r *LockerRepo) GetByNumber(ctx context.Context, number string) (*repository.Locker, error) {
	var locker repository.Locker
	err := r.db.Get(ctx, &locker, `
        SELECT * FROM lockers
        WHERE number = $1
        ORDER BY (CASE WHEN id = number THEN 0 ELSE 1 END), updated_at ASC
        LIMIT 1
    `, number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &locker, nil
}

func (r *LockerRepo) GetAll(ctx context.Context) ([]*repository.Locker, error) {
	var lockers []*repository.Locker
	err := r.db.Select(ctx, &lockers, "SELECT * FROM lockers ORDER BY number ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to get lockers: %w", err)
	}
	return lockers, nil
}

func (r *LockerRepo) Update(ctx context.Context, locker *repository.Locker) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE lockers
        SET
            number = $1,
            size = $2,
            status = $3,
            door_state = $4,
            current_order_id = $5,
            updated_at = $6
        WHERE id = $7
    `, locker.Number, locker.Size, locker.Status, locker.DoorState, locker.CurrentOrderID, locker.UpdatedAt, locker.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *LockerRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM lockers WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
