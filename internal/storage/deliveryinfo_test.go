package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
)

func TestCleanupDecision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		info *repository.DeliveryInfo
		want CleanupAction
	}{
		{
			name: "verified fingerprint with order is deleted",
			info: &repository.DeliveryInfo{
				DeliveryType:        repository.DeliveryTypeFingerprint,
				Fingerprint:         strPtr("fp-data"),
				FingerprintVerified: strPtr("true"),
				OrderID:             strPtr("ord-1"),
			},
			want: CleanupDelete,
		},
		{
			name: "unverified fingerprint with order deletes and resets the locker",
			info: &repository.DeliveryInfo{
				DeliveryType:        repository.DeliveryTypeFingerprint,
				Fingerprint:         strPtr("fp-data"),
				FingerprintVerified: strPtr("false"),
				OrderID:             strPtr("ord-1"),
			},
			want: CleanupDeleteAndReset,
		},
		{
			name: "fingerprint without order waits, verified or not",
			info: &repository.DeliveryInfo{
				DeliveryType:        repository.DeliveryTypeFingerprint,
				Fingerprint:         strPtr("fp-data"),
				FingerprintVerified: strPtr("true"),
			},
			want: CleanupNone,
		},
		{
			name: "fingerprint record without captured data waits",
			info: &repository.DeliveryInfo{
				DeliveryType:        repository.DeliveryTypeFingerprint,
				FingerprintVerified: strPtr("true"),
				OrderID:             strPtr("ord-1"),
			},
			want: CleanupNone,
		},
		{
			name: "received code flow with order is deleted",
			info: &repository.DeliveryInfo{
				DeliveryType: repository.DeliveryTypeCode,
				Received:     strPtr("true"),
				OrderID:      strPtr("ord-1"),
			},
			want: CleanupDelete,
		},
		{
			name: "received code flow without order waits",
			info: &repository.DeliveryInfo{
				DeliveryType: repository.DeliveryTypeCode,
				Received:     strPtr("true"),
			},
			want: CleanupNone,
		},
		{
			name: "unreceived code flow waits",
			info: &repository.DeliveryInfo{
				DeliveryType: repository.DeliveryTypeCode,
				Received:     strPtr("false"),
				OrderID:      strPtr("ord-1"),
			},
			want: CleanupNone,
		},
		{
			name: "received flag accepts digit form",
			info: &repository.DeliveryInfo{
				DeliveryType: repository.DeliveryTypeCode,
				Received:     strPtr("1"),
				OrderID:      strPtr("ord-1"),
			},
			want: CleanupDelete,
		},
		{
			name: "empty order id string counts as no order",
			info: &repository.DeliveryInfo{
				DeliveryType: repository.DeliveryTypeCode,
				Received:     strPtr("true"),
				OrderID:      strPtr(""),
			},
			want: CleanupNone,
		},
		{
			name: "unknown delivery type waits",
			info: &repository.DeliveryInfo{
				DeliveryType: "carrier_pigeon",
				Received:     strPtr("true"),
				OrderID:      strPtr("ord-1"),
			},
			want: CleanupNone,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, CleanupDecision(tc.info))
		})
	}
}

func TestRecordDeliveryInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects unknown delivery type", func(t *testing.T) {
		s, _ := newTestStorage(t)

		_, err := s.RecordDeliveryInfo(ctx, DeliveryInfoInput{DeliveryType: "mail"})

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("stores the staging record", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.delivery.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, info *repository.DeliveryInfo) error {
				assert.Equal(t, repository.DeliveryTypeFingerprint, info.DeliveryType)
				assert.NotEmpty(t, info.ID)
				return nil
			})

		id, err := s.RecordDeliveryInfo(ctx, DeliveryInfoInput{
			DeliveryType: repository.DeliveryTypeFingerprint,
			LockerID:     strPtr("A-1"),
			Fingerprint:  strPtr("fp-data"),
		})

		require.NoError(t, err)
		assert.NotEmpty(t, id)
	})
}

func TestCleanupDeliveryInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("waiting record is untouched", func(t *testing.T) {
		s, _ := newTestStorage(t)

		action, err := s.CleanupDeliveryInfo(ctx, &repository.DeliveryInfo{
			ID:           "di-1",
			DeliveryType: repository.DeliveryTypeCode,
			Received:     strPtr("true"),
		})

		require.NoError(t, err)
		assert.Equal(t, CleanupNone, action)
	})

	t.Run("verified capture is just deleted", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.delivery.EXPECT().Delete(gomock.Any(), "di-1").Return(nil)

		action, err := s.CleanupDeliveryInfo(ctx, &repository.DeliveryInfo{
			ID:                  "di-1",
			DeliveryType:        repository.DeliveryTypeFingerprint,
			LockerID:            strPtr("A-1"),
			Fingerprint:         strPtr("fp-data"),
			FingerprintVerified: strPtr("true"),
			OrderID:             strPtr("ord-1"),
		})

		require.NoError(t, err)
		assert.Equal(t, CleanupDelete, action)
	})

	t.Run("failed capture frees its locker", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.delivery.EXPECT().Delete(gomock.Any(), "di-1").Return(nil)
		m.lockers.EXPECT().GetByID(gomock.Any(), "A-1").Return(&repository.Locker{
			ID:             "A-1",
			Number:         "A-1",
			Status:         repository.LockerStatusOccupied,
			DoorState:      repository.DoorOpen,
			CurrentOrderID: strPtr("ord-1"),
		}, nil)
		m.lockers.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, locker *repository.Locker) error {
				assert.Equal(t, repository.LockerStatusAvailable, locker.Status)
				assert.Equal(t, repository.DoorClosed, locker.DoorState)
				assert.Nil(t, locker.CurrentOrderID)
				return nil
			})

		action, err := s.CleanupDeliveryInfo(ctx, &repository.DeliveryInfo{
			ID:                  "di-1",
			DeliveryType:        repository.DeliveryTypeFingerprint,
			LockerID:            strPtr("A-1"),
			Fingerprint:         strPtr("fp-data"),
			FingerprintVerified: strPtr("false"),
			OrderID:             strPtr("ord-1"),
		})

		require.NoError(t, err)
		assert.Equal(t, CleanupDeleteAndReset, action)
	})

	t.Run("already deleted record converges", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.delivery.EXPECT().Delete(gomock.Any(), "di-1").
			Return(repository.ErrObjectNotFound)

		action, err := s.CleanupDeliveryInfo(ctx, &repository.DeliveryInfo{
			ID:           "di-1",
			DeliveryType: repository.DeliveryTypeCode,
			Received:     strPtr("true"),
			OrderID:      strPtr("ord-1"),
		})

		require.NoError(t, err)
		assert.Equal(t, CleanupDelete, action)
	})
}

func TestUpdateDeliveryInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("nil patch fields leave the record unchanged", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.delivery.EXPECT().GetByID(gomock.Any(), "di-1").Return(&repository.DeliveryInfo{
			ID:           "di-1",
			DeliveryType: repository.DeliveryTypeCode,
			Received:     strPtr("false"),
		}, nil)
		m.delivery.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, info *repository.DeliveryInfo) error {
				require.NotNil(t, info.Received)
				assert.Equal(t, "true", *info.Received)
				require.NotNil(t, info.OrderID)
				assert.Equal(t, "ord-1", *info.OrderID)
				return nil
			})

		err := s.UpdateDeliveryInfo(ctx, "di-1", DeliveryInfoPatch{
			Received: strPtr("true"),
			OrderID:  strPtr("ord-1"),
		})

		assert.NoError(t, err)
	})

	t.Run("unknown record", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.delivery.EXPECT().GetByID(gomock.Any(), "missing").
			Return(nil, repository.ErrObjectNotFound)

		err := s.UpdateDeliveryInfo(ctx, "missing", DeliveryInfoPatch{})

		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}
