package storage

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/metrics"
)

// inactivityWindow is how long a customer may go without logging in before
// the account is locked.
const inactivityWindow = 6 // months

var lastLoginLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// IsInactive reports whether a last-login value falls before the cutoff.
// A missing or unparsable timestamp counts as inactive: an account whose
// activity cannot be established is locked rather than kept open.
func IsInactive(lastLogin *string, cutoff time.Time) bool {
	if lastLogin == nil || *lastLogin == "" {
		return true
	}
	for _, layout := range lastLoginLayouts {
		if t, err := time.Parse(layout, *lastLogin); err == nil {
			return t.Before(cutoff)
		}
	}
	return true
}

// SweepInactiveAccounts locks every active customer account with no login in
// the last six months and returns how many were locked. Per-account failures
// are logged and skipped so one bad row does not abort the sweep.
func (s *PostgresStorage) SweepInactiveAccounts(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().AddDate(0, -inactivityWindow, 0)

	customers, err := s.userRepo.GetCustomers(ctx)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("sweep_inactive").Inc()
		return 0, err
	}

	locked := 0
	for _, u := range customers {
		if !u.IsActive || !IsInactive(u.LastLoginAt, cutoff) {
			continue
		}
		if err := s.userRepo.SetActive(ctx, u.ID, false); err != nil {
			s.logger.Error("failed to lock inactive account",
				zap.String("user_id", u.ID), zap.Error(err))
			metrics.OperationErrorsTotal.WithLabelValues("sweep_inactive").Inc()
			continue
		}
		locked++
		metrics.AccountsLockedTotal.Inc()
		s.saveBestEffort(ctx, NewAccountLockNotification(u))
	}

	if locked > 0 {
		s.logger.Info("locked inactive accounts",
			zap.Int("locked", locked),
			zap.Time("cutoff", cutoff))
	}
	return locked, nil
}

// UpdateUserStatus flips a single account on or off by hand.
func (s *PostgresStorage) UpdateUserStatus(ctx context.Context, id string, active bool) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.SetActive(ctx, id, active)
}
