package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
)

// HandlePickup marks an order picked up and frees its locker. It is invoked
// by the hardware HTTP endpoint and by the pickup-notification watcher,
// possibly concurrently for the same order; the conditional update in
// MarkPickedUp guarantees the second caller observes "already picked up"
// without mutating anything.
//
// Business failures come back inside PickupResult; the returned error is
// reserved for unexpected storage failures.
func (s *PostgresStorage) HandlePickup(ctx context.Context, orderID, lockerNumber string) (PickupResult, error) {
	if orderID == "" {
		return PickupResult{Message: "missing order id"}, nil
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return PickupResult{Message: fmt.Sprintf("order %s not found", orderID)}, nil
		}
		metrics.OperationErrorsTotal.WithLabelValues("handle_pickup").Inc()
		return PickupResult{Message: "failed to load order"}, err
	}

	if order.Status == repository.OrderStatusPickedUp {
		return PickupResult{Message: fmt.Sprintf("order %s already picked up", orderID)}, nil
	}

	now := time.Now().UTC()
	if err := s.orderRepo.MarkPickedUp(ctx, orderID, now); err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			return PickupResult{Message: fmt.Sprintf("order %s already picked up", orderID)}, nil
		}
		metrics.OperationErrorsTotal.WithLabelValues("handle_pickup").Inc()
		return PickupResult{Message: "failed to update order"}, err
	}
	metrics.PickupsHandledTotal.Inc()

	locker := s.resolvePickupLocker(ctx, order, lockerNumber)
	if locker != nil {
		locker.Status = repository.LockerStatusAvailable
		locker.CurrentOrderID = nil
		locker.UpdatedAt = now
		if err := s.lockerRepo.Update(ctx, locker); err != nil {
			// The pickup itself is committed; a failed locker release is
			// repaired by the reconciliation job, not surfaced to the user.
			s.logger.Error("pickup committed but locker release failed",
				zap.String("order_id", orderID),
				zap.String("locker_id", locker.ID),
				zap.Error(err))
			metrics.OperationErrorsTotal.WithLabelValues("pickup_locker_release").Inc()
		} else {
			s.lockerCache.Set(locker)
		}
	}

	message := fmt.Sprintf("order %s picked up", orderID)
	if locker != nil {
		message = fmt.Sprintf("order %s picked up from locker %s", orderID, locker.Number)
	}
	s.logger.Info("pickup handled", zap.String("order_id", orderID))
	return PickupResult{Success: true, Message: message}, nil
}

func (s *PostgresStorage) resolvePickupLocker(ctx context.Context, order *repository.Order, lockerNumber string) *repository.Locker {
	if order.LockerID != nil && *order.LockerID != "" {
		locker, err := s.lockerRepo.GetByID(ctx, *order.LockerID)
		if err == nil {
			return locker
		}
		if !errors.Is(err, repository.ErrObjectNotFound) {
			s.logger.Warn("failed to load locker referenced by order",
				zap.String("locker_id", *order.LockerID), zap.Error(err))
		}
	}

	normalized := NormalizeLockerNumber(lockerNumber)
	if normalized == "" {
		return nil
	}
	if locker, found := s.lockerCache.GetByNumber(normalized); found {
		return locker
	}
	locker, err := s.lockerRepo.GetByNumber(ctx, normalized)
	if err != nil {
		if !errors.Is(err, repository.ErrObjectNotFound) {
			s.logger.Warn("failed to resolve locker by number",
				zap.String("number", normalized), zap.Error(err))
		}
		return nil
	}
	return locker
}
