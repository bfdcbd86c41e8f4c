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

func TestHandlePickup(t *testing.T) {
	ctx := context.Background()

	t.Run("missing order id is a business failure, not an error", func(t *testing.T) {
		s, _ := newTestStorage(t)

		result, err := s.HandlePickup(ctx, "", "A-1")

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "missing order id", result.Message)
	})

	t.Run("unknown order", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").
			Return(nil, repository.ErrObjectNotFound)

		result, err := s.HandlePickup(ctx, "ord-1", "A-1")

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "not found")
	})

	t.Run("repeated pickup converges on already picked up", func(t *testing.T) {
		s, m := newTestStorage(t)

		pickedUpAt := time.Now().UTC()
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(&repository.Order{
			ID:         "ord-1",
			Status:     repository.OrderStatusPickedUp,
			PickedUpAt: &pickedUpAt,
		}, nil)

		result, err := s.HandlePickup(ctx, "ord-1", "A-1")

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "already picked up")
	})

	t.Run("losing the conditional update reads as already picked up", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(&repository.Order{
			ID:     "ord-1",
			Status: repository.OrderStatusDelivered,
		}, nil)
		m.orders.EXPECT().MarkPickedUp(gomock.Any(), "ord-1", gomock.Any()).
			Return(repository.ErrInvalidTransition)

		result, err := s.HandlePickup(ctx, "ord-1", "A-1")

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "already picked up")
	})

	t.Run("storage failure surfaces as an error", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").
			Return(nil, errors.New("connection reset"))

		result, err := s.HandlePickup(ctx, "ord-1", "A-1")

		require.Error(t, err)
		assert.False(t, result.Success)
	})

	t.Run("successful pickup frees the locker", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(&repository.Order{
			ID:       "ord-1",
			Status:   repository.OrderStatusDelivered,
			LockerID: strPtr("A-1"),
		}, nil)
		m.orders.EXPECT().MarkPickedUp(gomock.Any(), "ord-1", gomock.Any()).Return(nil)
		m.lockers.EXPECT().GetByID(gomock.Any(), "A-1").Return(&repository.Locker{
			ID:             "A-1",
			Number:         "A-1",
			Status:         repository.LockerStatusOccupied,
			DoorState:      repository.DoorClosed,
			CurrentOrderID: strPtr("ord-1"),
		}, nil)
		m.lockers.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, locker *repository.Locker) error {
				assert.Equal(t, repository.LockerStatusAvailable, locker.Status)
				assert.Nil(t, locker.CurrentOrderID)
				return nil
			})

		result, err := s.HandlePickup(ctx, "ord-1", "")

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Contains(t, result.Message, "locker A-1")
	})

	t.Run("failed locker release does not undo the pickup", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(&repository.Order{
			ID:       "ord-1",
			Status:   repository.OrderStatusDelivered,
			LockerID: strPtr("A-1"),
		}, nil)
		m.orders.EXPECT().MarkPickedUp(gomock.Any(), "ord-1", gomock.Any()).Return(nil)
		m.lockers.EXPECT().GetByID(gomock.Any(), "A-1").Return(&repository.Locker{
			ID:        "A-1",
			Number:    "A-1",
			Status:    repository.LockerStatusOccupied,
			DoorState: repository.DoorClosed,
		}, nil)
		m.lockers.EXPECT().Update(gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))

		result, err := s.HandlePickup(ctx, "ord-1", "")

		require.NoError(t, err)
		assert.True(t, result.Success)
	})

	t.Run("falls back to the locker number when the order has no locker", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(&repository.Order{
			ID:     "ord-1",
			Status: repository.OrderStatusDelivered,
		}, nil)
		m.orders.EXPECT().MarkPickedUp(gomock.Any(), "ord-1", gomock.Any()).Return(nil)
		m.lockers.EXPECT().GetByNumber(gomock.Any(), "B-2").Return(&repository.Locker{
			ID:        "B-2",
			Number:    "B-2",
			Status:    repository.LockerStatusOccupied,
			DoorState: repository.DoorClosed,
		}, nil)
		m.lockers.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.HandlePickup(ctx, "ord-1", " b-2 ")

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Contains(t, result.Message, "locker B-2")
	})
}
