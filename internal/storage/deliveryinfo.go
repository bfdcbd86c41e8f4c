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

// CleanupAction is the outcome of evaluating the staging-record cleanup
// rules against one delivery info.
type CleanupAction int

const (
	CleanupNone CleanupAction = iota
	// CleanupDelete removes the staging record; the order it produced is
	// intact and its locker untouched.
	CleanupDelete
	// CleanupDeleteAndReset removes the staging record of a failed
	// fingerprint capture and frees its locker.
	CleanupDeleteAndReset
)

func (a CleanupAction) String() string {
	switch a {
	case CleanupDelete:
		return "delete"
	case CleanupDeleteAndReset:
		return "delete_and_reset"
	}
	return "none"
}

// CleanupDecision applies the staging-record rules. A record is only ever
// touched once its order reference exists: until then every record waits,
// whatever its verification flag says.
func CleanupDecision(info *repository.DeliveryInfo) CleanupAction {
	hasOrder := info.OrderID != nil && *info.OrderID != ""

	switch info.DeliveryType {
	case repository.DeliveryTypeFingerprint:
		hasFingerprint := info.Fingerprint != nil && *info.Fingerprint != ""
		if !hasFingerprint || !hasOrder {
			return CleanupNone
		}
		if repository.ParseFlag(info.FingerprintVerified) {
			return CleanupDelete
		}
		return CleanupDeleteAndReset

	case repository.DeliveryTypeCode:
		if repository.ParseFlag(info.Received) && hasOrder {
			return CleanupDelete
		}
	}
	return CleanupNone
}

type DeliveryInfoInput struct {
	DeliveryType string
	LockerID     *string
	SenderID     *string
	Fingerprint  *string
}

func (s *PostgresStorage) RecordDeliveryInfo(ctx context.Context, in DeliveryInfoInput) (string, error) {
	switch in.DeliveryType {
	case repository.DeliveryTypeCode, repository.DeliveryTypeFingerprint:
	default:
		return "", fmt.Errorf("%w: unknown delivery type %q", ErrValidation, in.DeliveryType)
	}

	info := &repository.DeliveryInfo{
		ID:           uuid.NewString(),
		DeliveryType: in.DeliveryType,
		LockerID:     in.LockerID,
		SenderID:     in.SenderID,
		Fingerprint:  in.Fingerprint,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.deliveryRepo.Create(ctx, info); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("record_delivery_info").Inc()
		return "", fmt.Errorf("failed to record delivery info: %w", err)
	}
	return info.ID, nil
}

// DeliveryInfoPatch carries the fields the kiosk updates as the capture
// progresses. Nil means "leave unchanged".
type DeliveryInfoPatch struct {
	Fingerprint         *string
	FingerprintVerified *string
	Received            *string
	OrderID             *string
}

func (s *PostgresStorage) UpdateDeliveryInfo(ctx context.Context, id string, patch DeliveryInfoPatch) error {
	info, err := s.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return fmt.Errorf("delivery info %s: %w", id, repository.ErrObjectNotFound)
		}
		return fmt.Errorf("failed to get delivery info %s: %w", id, err)
	}

	if patch.Fingerprint != nil {
		info.Fingerprint = patch.Fingerprint
	}
	if patch.FingerprintVerified != nil {
		info.FingerprintVerified = patch.FingerprintVerified
	}
	if patch.Received != nil {
		info.Received = patch.Received
	}
	if patch.OrderID != nil {
		info.OrderID = patch.OrderID
	}

	if err := s.deliveryRepo.Update(ctx, info); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_delivery_info").Inc()
		return fmt.Errorf("failed to update delivery info %s: %w", id, err)
	}
	return nil
}

// DeleteDeliveryInfo tolerates an already-deleted record, so redundant
// cleanup dispatches for the same id converge instead of failing.
func (s *PostgresStorage) DeleteDeliveryInfo(ctx context.Context, id string) error {
	err := s.deliveryRepo.Delete(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrObjectNotFound) {
		return fmt.Errorf("failed to delete delivery info %s: %w", id, err)
	}
	return nil
}

func (s *PostgresStorage) ListDeliveryInfos(ctx context.Context) ([]*repository.DeliveryInfo, error) {
	return s.deliveryRepo.GetAll(ctx)
}

// CleanupDeliveryInfo evaluates one staging record and applies whatever the
// decision says: delete, or delete plus locker reset. Both halves are
// individually idempotent.
func (s *PostgresStorage) CleanupDeliveryInfo(ctx context.Context, info *repository.DeliveryInfo) (CleanupAction, error) {
	action := CleanupDecision(info)
	if action == CleanupNone {
		return action, nil
	}

	if err := s.DeleteDeliveryInfo(ctx, info.ID); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("cleanup_delivery_info").Inc()
		return action, err
	}

	if action == CleanupDeleteAndReset && info.LockerID != nil {
		if err := s.resetLocker(ctx, *info.LockerID); err != nil {
			s.logger.Error("delivery info deleted but locker reset failed",
				zap.String("delivery_info_id", info.ID),
				zap.String("locker_id", *info.LockerID),
				zap.Error(err))
			metrics.OperationErrorsTotal.WithLabelValues("cleanup_locker_reset").Inc()
		}
	}

	metrics.DeliveryInfosCleanedTotal.WithLabelValues(action.String()).Inc()
	s.logger.Info("delivery info cleaned up",
		zap.String("id", info.ID),
		zap.String("type", info.DeliveryType),
		zap.String("rule", action.String()))
	return action, nil
}

func (s *PostgresStorage) resetLocker(ctx context.Context, lockerID string) error {
	locker, err := s.lockerRepo.GetByID(ctx, lockerID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	locker.Status = repository.LockerStatusAvailable
	locker.DoorState = repository.DoorClosed
	locker.CurrentOrderID = nil
	locker.UpdatedAt = time.Now().UTC()
	if err := s.lockerRepo.Update(ctx, locker); err != nil {
		return err
	}
	s.lockerCache.Set(locker)
	return nil
}
