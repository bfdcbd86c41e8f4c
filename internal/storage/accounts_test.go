package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
)

func TestIsInactive(t *testing.T) {
	t.Parallel()

	cutoff := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		lastLogin *string
		want      bool
	}{
		{
			name:      "login before the cutoff",
			lastLogin: strPtr("2025-07-01T10:00:00Z"),
			want:      true,
		},
		{
			name:      "login after the cutoff",
			lastLogin: strPtr("2026-06-15T10:00:00Z"),
			want:      false,
		},
		{
			name:      "legacy space-separated format",
			lastLogin: strPtr("2026-06-15 10:00:00"),
			want:      false,
		},
		{
			name:      "date-only format before cutoff",
			lastLogin: strPtr("2025-01-02"),
			want:      true,
		},
		{
			name:      "missing timestamp",
			lastLogin: nil,
			want:      true,
		},
		{
			name:      "empty timestamp",
			lastLogin: strPtr(""),
			want:      true,
		},
		{
			name:      "unparsable timestamp",
			lastLogin: strPtr("not-a-date"),
			want:      true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, IsInactive(tc.lastLogin, cutoff))
		})
	}
}

func TestSweepInactiveAccounts(t *testing.T) {
	ctx := context.Background()

	recentLogin := time.Now().UTC().AddDate(0, -1, 0).Format(time.RFC3339)
	staleLogin := time.Now().UTC().AddDate(0, -8, 0).Format(time.RFC3339)

	t.Run("locks stale and unparsable accounts, skips the rest", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.users.EXPECT().GetCustomers(gomock.Any()).Return([]*repository.User{
			{ID: "u-recent", Email: "recent@example.com", IsActive: true, LastLoginAt: &recentLogin},
			{ID: "u-stale", Email: "stale@example.com", IsActive: true, LastLoginAt: &staleLogin},
			{ID: "u-locked", Email: "locked@example.com", IsActive: false, LastLoginAt: &staleLogin},
			{ID: "u-garbled", Email: "garbled@example.com", IsActive: true, LastLoginAt: strPtr("corrupt")},
		}, nil)
		m.users.EXPECT().SetActive(gomock.Any(), "u-stale", false).Return(nil)
		m.users.EXPECT().SetActive(gomock.Any(), "u-garbled", false).Return(nil)
		m.expectSavedNotification()
		m.expectSavedNotification()

		locked, err := s.SweepInactiveAccounts(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, locked)
	})

	t.Run("a failed lock is skipped, the sweep continues", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.users.EXPECT().GetCustomers(gomock.Any()).Return([]*repository.User{
			{ID: "u-1", Email: "one@example.com", IsActive: true, LastLoginAt: &staleLogin},
			{ID: "u-2", Email: "two@example.com", IsActive: true, LastLoginAt: &staleLogin},
		}, nil)
		m.users.EXPECT().SetActive(gomock.Any(), "u-1", false).
			Return(errors.New("connection reset"))
		m.users.EXPECT().SetActive(gomock.Any(), "u-2", false).Return(nil)
		m.expectSavedNotification()

		locked, err := s.SweepInactiveAccounts(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, locked)
	})

	t.Run("listing failure aborts the sweep", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.users.EXPECT().GetCustomers(gomock.Any()).
			Return(nil, errors.New("connection reset"))

		_, err := s.SweepInactiveAccounts(ctx)

		assert.Error(t, err)
	})
}

func TestUpdateUserStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("reactivates a known account", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.users.EXPECT().GetByID(gomock.Any(), "u-1").
			Return(&repository.User{ID: "u-1", IsActive: false}, nil)
		m.users.EXPECT().SetActive(gomock.Any(), "u-1", true).Return(nil)

		err := s.UpdateUserStatus(ctx, "u-1", true)

		assert.NoError(t, err)
	})

	t.Run("unknown account", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.users.EXPECT().GetByID(gomock.Any(), "missing").
			Return(nil, repository.ErrObjectNotFound)

		err := s.UpdateUserStatus(ctx, "missing", true)

		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}
