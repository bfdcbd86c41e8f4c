package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
)

type ErrorReportRepo struct {
	db db.DB
}

func NewErrorReportRepo(db db.DB) *ErrorReportRepo {
	return &ErrorReportRepo{db: db}
}

func (r *ErrorReportRepo) Create(ctx context.Context, report *repository.ErrorReport) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO error_reports (
            id, customer_id, customer_name, locker_id, description, status, stage,
            admin_notes, created_at, received_at, processing_started_at,
            resolved_at, customer_notified_at, closed_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
    `, report.ID, report.CustomerID, report.CustomerName, report.LockerID, report.Description,
		report.Status, report.Stage, report.AdminNotes, report.CreatedAt, report.ReceivedAt,
		report.ProcessingStartedAt, report.ResolvedAt, report.CustomerNotifiedAt, report.ClosedAt)
	return err
}

func (r *ErrorReportRepo) GetByID(ctx context.Context, id string) (*repository.ErrorReport, error) {
	var report repository.ErrorReport
	err := r.db.Get(ctx, &report, "SELECT * FROM error_reports WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *ErrorReportRepo) List(ctx context.Context) ([]*repository.ErrorReport, error) {
	var reports []*repository.ErrorReport
	err := r.db.Select(ctx, &reports, "SELECT * FROM error_reports ORDER BY created_at DESC")
	return reports, err
}

func (r *ErrorReportRepo) ListByLocker(ctx context.Context, lockerID string) ([]*repository.ErrorReport, error) {
	var reports []*repository.ErrorReport
	err := r.db.Select(ctx, &reports,
		"SELECT * FROM error_reports WHERE locker_id = $1 ORDER BY created_at DESC", lockerID)
	return reports, err
}

func (r *ErrorReportRepo) ListByCustomer(ctx context.Context, customerID string) ([]*repository.ErrorReport, error) {
	var reports []*repository.ErrorReport
	err := r.db.Select(ctx, &reports,
		"SELECT * FROM error_reports WHERE customer_id = $1 ORDER BY created_at DESC", customerID)
	return reports, err
}

const updateReportSet = `
        UPDATE error_reports
        SET
            status = $1,
            stage = $2,
            admin_notes = $3,
            received_at = $4,
            processing_started_at = $5,
            resolved_at = $6,
            customer_notified_at = $7,
            closed_at = $8
`

// UpdateIfStatus writes the full transition result, guarded by the status the
// caller read before deciding the transition was legal. Zero rows affected
// means another writer got there first (or the precondition never held) and
// surfaces as ErrInvalidTransition.
func (r *ErrorReportRepo) UpdateIfStatus(ctx context.Context, report *repository.ErrorReport, expectedStatus string) error {
	tag, err := r.db.Exec(ctx, updateReportSet+`
        WHERE id = $9 AND status = $10
    `, report.Status, report.Stage, report.AdminNotes, report.ReceivedAt,
		report.ProcessingStartedAt, report.ResolvedAt, report.CustomerNotifiedAt, report.ClosedAt,
		report.ID, expectedStatus)
	if err != nil {
		return fmt.Errorf("failed to update error report %s: %w", report.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrInvalidTransition
	}
	return nil
}

// UpdateIfStatusAndNotStage is the notify-customer guard: status must match
// and the stage must not already be the target one.
func (r *ErrorReportRepo) UpdateIfStatusAndNotStage(ctx context.Context, report *repository.ErrorReport, expectedStatus, forbiddenStage string) error {
	tag, err := r.db.Exec(ctx, updateReportSet+`
        WHERE id = $9 AND status = $10 AND stage <> $11
    `, report.Status, report.Stage, report.AdminNotes, report.ReceivedAt,
		report.ProcessingStartedAt, report.ResolvedAt, report.CustomerNotifiedAt, report.ClosedAt,
		report.ID, expectedStatus, forbiddenStage)
	if err != nil {
		return fmt.Errorf("failed to update error report %s: %w", report.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrInvalidTransition
	}
	return nil
}

// UpdateIfStage guards the close transition, which keys on stage rather than
// status.
func (r *ErrorReportRepo) UpdateIfStage(ctx context.Context, report *repository.ErrorReport, expectedStage string) error {
	tag, err := r.db.Exec(ctx, updateReportSet+`
        WHERE id = $9 AND stage = $10 AND status <> $1
    `, report.Status, report.Stage, report.AdminNotes, report.ReceivedAt,
		report.ProcessingStartedAt, report.ResolvedAt, report.CustomerNotifiedAt, report.ClosedAt,
		report.ID, expectedStage)
	if err != nil {
		return fmt.Errorf("failed to update error report %s: %w", report.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrInvalidTransition
	}
	return nil
}
