package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
)

// NormalizeLockerNumber is the single canonical form used for every lookup
// and write: trimmed, uppercased. Idempotent.
func NormalizeLockerNumber(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}

func validLockerSize(size string) bool {
	switch size {
	case "small", "medium", "large":
		return true
	}
	return false
}

func validLockerStatus(status string) bool {
	switch status {
	case repository.LockerStatusAvailable, repository.LockerStatusOccupied,
		repository.LockerStatusMaintenance, repository.LockerStatusError:
		return true
	}
	return false
}

// CreateLocker registers a locker under its normalized number. The record id
// equals the normalized number, so a second create for the same number fails
// structurally, not just by lookup.
func (s *PostgresStorage) CreateLocker(ctx context.Context, number, size string) (string, error) {
	normalized := NormalizeLockerNumber(number)
	if normalized == "" {
		return "", fmt.Errorf("%w: missing locker number", ErrValidation)
	}
	if !validLockerSize(size) {
		return "", fmt.Errorf("%w: invalid locker size %q", ErrValidation, size)
	}

	existing, err := s.lockerRepo.GetByNumber(ctx, normalized)
	if err != nil && !errors.Is(err, repository.ErrObjectNotFound) {
		return "", fmt.Errorf("failed to check locker number %s: %w", normalized, err)
	}
	if existing != nil {
		return "", fmt.Errorf("%w: %s", repository.ErrDuplicateLocker, normalized)
	}

	locker := &repository.Locker{
		ID:        normalized,
		Number:    normalized,
		Size:      size,
		Status:    repository.LockerStatusAvailable,
		DoorState: repository.DoorClosed,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.lockerRepo.Create(ctx, locker); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_locker").Inc()
		return "", fmt.Errorf("failed to create locker %s: %w", normalized, err)
	}

	s.lockerCache.Set(locker)
	return locker.ID, nil
}

// UpdateLockerStatus applies a status change. An explicit orderID attaches an
// occupying order; moving to available always detaches it. A missing door
// state is back-filled to closed.
func (s *PostgresStorage) UpdateLockerStatus(ctx context.Context, lockerID, status string, orderID, doorState *string) error {
	if !validLockerStatus(status) {
		return fmt.Errorf("%w: invalid locker status %q", ErrValidation, status)
	}

	locker, err := s.lockerRepo.GetByID(ctx, lockerID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return fmt.Errorf("locker %s: %w", lockerID, repository.ErrObjectNotFound)
		}
		return fmt.Errorf("failed to get locker %s: %w", lockerID, err)
	}

	locker.Status = status
	switch {
	case orderID != nil:
		locker.CurrentOrderID = orderID
	case status == repository.LockerStatusAvailable:
		locker.CurrentOrderID = nil
	}
	if doorState != nil {
		locker.DoorState = *doorState
	}
	if locker.DoorState == "" {
		locker.DoorState = repository.DoorClosed
	}
	locker.UpdatedAt = time.Now().UTC()

	if err := s.lockerRepo.Update(ctx, locker); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_locker_status").Inc()
		return fmt.Errorf("failed to update locker %s: %w", lockerID, err)
	}

	s.lockerCache.Set(locker)
	return nil
}

func (s *PostgresStorage) ListLockers(ctx context.Context) ([]*repository.Locker, error) {
	return s.lockerRepo.GetAll(ctx)
}

// DedupeLockers groups every locker record by normalized number and removes
// the non-canonical members of each group. Occupancy held by a duplicate,
// either on the record itself or through an active order still referencing
// it, is re-pointed onto the survivor first. A group of one is never touched.
func (s *PostgresStorage) DedupeLockers(ctx context.Context) (int, error) {
	lockers, err := s.lockerRepo.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list lockers: %w", err)
	}

	groups := make(map[string][]*repository.Locker)
	for _, locker := range lockers {
		n := NormalizeLockerNumber(locker.Number)
		groups[n] = append(groups[n], locker)
	}

	removed := 0
	for number, group := range groups {
		if len(group) < 2 {
			continue
		}

		canonical := pickCanonical(number, group)
		changed := mergeLockerGaps(number, canonical, group)

		for _, dup := range group {
			if dup.ID == canonical.ID || canonical.CurrentOrderID != nil {
				continue
			}
			active, err := s.orderRepo.GetActiveByLocker(ctx, dup.ID)
			if err != nil {
				s.logger.Error("failed to check active orders on duplicate locker",
					zap.String("id", dup.ID), zap.Error(err))
				continue
			}
			if len(active) > 0 {
				canonical.CurrentOrderID = &active[0].ID
				canonical.Status = repository.LockerStatusOccupied
				changed = true
			}
		}

		if changed {
			canonical.UpdatedAt = time.Now().UTC()
			if err := s.lockerRepo.Update(ctx, canonical); err != nil {
				s.logger.Error("failed to update canonical locker during dedup",
					zap.String("number", number), zap.Error(err))
				continue
			}
		}

		for _, dup := range group {
			if dup.ID == canonical.ID {
				continue
			}
			if err := s.lockerRepo.Delete(ctx, dup.ID); err != nil && !errors.Is(err, repository.ErrObjectNotFound) {
				s.logger.Error("failed to delete duplicate locker",
					zap.String("id", dup.ID), zap.String("number", number), zap.Error(err))
				continue
			}
			if dup.Number != canonical.Number {
				s.lockerCache.Delete(dup.Number)
			}
			removed++
			metrics.LockersDedupedTotal.Inc()
		}

		s.lockerCache.Set(canonical)
	}

	if removed > 0 {
		s.logger.Info("locker dedup removed duplicates", zap.Int("removed", removed))
	}
	return removed, nil
}

// pickCanonical prefers the record whose id already equals the normalized
// number, otherwise keeps the first.
func pickCanonical(number string, group []*repository.Locker) *repository.Locker {
	for _, locker := range group {
		if locker.ID == number {
			return locker
		}
	}
	return group[0]
}

// mergeLockerGaps back-fills missing fields on the canonical record from its
// duplicates. Occupancy data on the survivor is preserved, never reset.
func mergeLockerGaps(number string, canonical *repository.Locker, group []*repository.Locker) bool {
	changed := false
	if canonical.Number != number {
		canonical.Number = number
		changed = true
	}
	if canonical.DoorState == "" {
		canonical.DoorState = repository.DoorClosed
		changed = true
	}
	for _, dup := range group {
		if dup.ID == canonical.ID {
			continue
		}
		if canonical.CurrentOrderID == nil && dup.CurrentOrderID != nil {
			canonical.CurrentOrderID = dup.CurrentOrderID
			if canonical.Status == repository.LockerStatusAvailable {
				canonical.Status = dup.Status
			}
			changed = true
		}
		if canonical.Size == "" && dup.Size != "" {
			canonical.Size = dup.Size
			changed = true
		}
	}
	return changed
}
