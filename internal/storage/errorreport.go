package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
)

// ReportAction is one of the five forward transitions an admin can apply to
// an error report.
type ReportAction string

const (
	ActionReceive         ReportAction = "receive"
	ActionStartProcessing ReportAction = "start_processing"
	ActionResolve         ReportAction = "resolve"
	ActionNotifyCustomer  ReportAction = "notify_customer"
	ActionClose           ReportAction = "close"
)

// NextActions derives the legal next actions from the report's current
// {status, stage}. The admin UI and the transition handlers both consult
// this single function; there is no duplicated legality rule.
func NextActions(status, stage string) []ReportAction {
	switch {
	case status == repository.ReportStatusPending:
		return []ReportAction{ActionReceive}
	case status == repository.ReportStatusReceived:
		return []ReportAction{ActionStartProcessing}
	case status == repository.ReportStatusProcessing:
		return []ReportAction{ActionResolve}
	case status == repository.ReportStatusResolved && stage != repository.ReportStageNotified:
		return []ReportAction{ActionNotifyCustomer}
	case stage == repository.ReportStageNotified && status != repository.ReportStatusClosed:
		return []ReportAction{ActionClose}
	}
	return nil
}

func actionAllowed(report *repository.ErrorReport, action ReportAction) bool {
	for _, a := range NextActions(report.Status, report.Stage) {
		if a == action {
			return true
		}
	}
	return false
}

type CreateErrorReportInput struct {
	CustomerID   string
	CustomerName string
	LockerID     *string
	Description  string
}

func (s *PostgresStorage) CreateErrorReport(ctx context.Context, in CreateErrorReportInput) (string, error) {
	if in.CustomerID == "" {
		return "", fmt.Errorf("%w: missing customer id", ErrValidation)
	}
	if in.Description == "" {
		return "", fmt.Errorf("%w: missing description", ErrValidation)
	}

	report := &repository.ErrorReport{
		ID:           uuid.NewString(),
		CustomerID:   in.CustomerID,
		CustomerName: in.CustomerName,
		LockerID:     in.LockerID,
		Description:  in.Description,
		Status:       repository.ReportStatusPending,
		Stage:        repository.ReportStageReported,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_error_report").Inc()
		return "", fmt.Errorf("failed to create error report: %w", err)
	}

	s.saveBestEffort(ctx, NewErrorReportNotification(report))

	return report.ID, nil
}

// ReceiveErrorReport moves pending -> received.
func (s *PostgresStorage) ReceiveErrorReport(ctx context.Context, reportID, note string) error {
	return s.transition(ctx, reportID, ActionReceive, note, func(report *repository.ErrorReport, now time.Time) error {
		report.Status = repository.ReportStatusReceived
		report.Stage = repository.ReportStageReceived
		report.ReceivedAt = &now
		return s.reportRepo.UpdateIfStatus(ctx, report, repository.ReportStatusPending)
	})
}

// StartProcessingError moves received -> processing.
func (s *PostgresStorage) StartProcessingError(ctx context.Context, reportID, note string) error {
	return s.transition(ctx, reportID, ActionStartProcessing, note, func(report *repository.ErrorReport, now time.Time) error {
		report.Status = repository.ReportStatusProcessing
		report.Stage = repository.ReportStageProcessing
		report.ProcessingStartedAt = &now
		return s.reportRepo.UpdateIfStatus(ctx, report, repository.ReportStatusReceived)
	})
}

// ResolveErrorReport moves processing -> resolved.
func (s *PostgresStorage) ResolveErrorReport(ctx context.Context, reportID, note string) error {
	return s.transition(ctx, reportID, ActionResolve, note, func(report *repository.ErrorReport, now time.Time) error {
		report.Status = repository.ReportStatusResolved
		report.Stage = repository.ReportStageResolved
		report.ResolvedAt = &now
		return s.reportRepo.UpdateIfStatus(ctx, report, repository.ReportStatusProcessing)
	})
}

// NotifyCustomerAboutErrorResolution stamps the notified stage and fans a
// customer-visible notification out. The notification is attempted only
// after the transition commits; its failure is logged, never propagated.
func (s *PostgresStorage) NotifyCustomerAboutErrorResolution(ctx context.Context, reportID, customerID string) error {
	var notified *repository.ErrorReport
	err := s.transition(ctx, reportID, ActionNotifyCustomer, "", func(report *repository.ErrorReport, now time.Time) error {
		report.Stage = repository.ReportStageNotified
		report.CustomerNotifiedAt = &now
		if err := s.reportRepo.UpdateIfStatusAndNotStage(ctx, report,
			repository.ReportStatusResolved, repository.ReportStageNotified); err != nil {
			return err
		}
		notified = report
		return nil
	})
	if err != nil {
		return err
	}

	if customerID == "" {
		customerID = notified.CustomerID
	}
	s.saveBestEffort(ctx, NewReportResolvedNotification(notified, customerID))
	return nil
}

// CloseErrorReport moves notified -> closed, the terminal state.
func (s *PostgresStorage) CloseErrorReport(ctx context.Context, reportID string) error {
	return s.transition(ctx, reportID, ActionClose, "", func(report *repository.ErrorReport, now time.Time) error {
		report.Status = repository.ReportStatusClosed
		report.ClosedAt = &now
		return s.reportRepo.UpdateIfStage(ctx, report, repository.ReportStageNotified)
	})
}

// transition reads the report, checks the action against NextActions, applies
// the mutation through a conditional update, and normalizes the failure
// modes. The read-then-conditional-write keeps a racing second admin from
// double-applying: whoever loses the conditional update gets
// ErrInvalidTransition.
func (s *PostgresStorage) transition(ctx context.Context, reportID string, action ReportAction, note string, apply func(*repository.ErrorReport, time.Time) error) error {
	report, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return fmt.Errorf("error report %s: %w", reportID, repository.ErrObjectNotFound)
		}
		return fmt.Errorf("failed to get error report %s: %w", reportID, err)
	}

	if !actionAllowed(report, action) {
		return fmt.Errorf("%w: %s not allowed for report %s (status=%s, stage=%s)",
			repository.ErrInvalidTransition, action, reportID, report.Status, report.Stage)
	}

	if note != "" {
		report.AdminNotes = appendNote(report.AdminNotes, note)
	}

	if err := apply(report, time.Now().UTC()); err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			return fmt.Errorf("%w: %s lost to a concurrent update on report %s",
				repository.ErrInvalidTransition, action, reportID)
		}
		metrics.OperationErrorsTotal.WithLabelValues("report_transition").Inc()
		return err
	}

	metrics.ReportTransitionsTotal.WithLabelValues(string(action)).Inc()
	s.logger.Info("error report transition applied",
		zap.String("report_id", reportID),
		zap.String("action", string(action)),
		zap.String("status", report.Status),
		zap.String("stage", report.Stage))
	return nil
}

func appendNote(existing *string, note string) *string {
	if existing == nil || *existing == "" {
		return &note
	}
	combined := *existing + "\n" + note
	return &combined
}

func (s *PostgresStorage) GetErrorReport(ctx context.Context, reportID string) (*repository.ErrorReport, error) {
	return s.reportRepo.GetByID(ctx, reportID)
}

func (s *PostgresStorage) ListErrorReports(ctx context.Context) ([]*repository.ErrorReport, error) {
	return s.reportRepo.List(ctx)
}

func (s *PostgresStorage) ListErrorReportsByLocker(ctx context.Context, lockerID string) ([]*repository.ErrorReport, error) {
	return s.reportRepo.ListByLocker(ctx, lockerID)
}

func (s *PostgresStorage) ListErrorReportsByCustomer(ctx context.Context, customerID string) ([]*repository.ErrorReport, error) {
	return s.reportRepo.ListByCustomer(ctx, customerID)
}
