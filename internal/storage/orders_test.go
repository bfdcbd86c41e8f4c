package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
)

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	availableLocker := func() *repository.Locker {
		return &repository.Locker{
			ID:        "A-1",
			Number:    "A-1",
			Status:    repository.LockerStatusAvailable,
			DoorState: repository.DoorClosed,
		}
	}

	t.Run("deposit gets a pickup code and occupies the locker", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.lockers.EXPECT().GetByNumber(gomock.Any(), "A-1").Return(availableLocker(), nil)

		var created *repository.Order
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *repository.Order) error {
				created = order
				return nil
			})
		m.lockers.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, locker *repository.Locker) error {
				assert.Equal(t, repository.LockerStatusOccupied, locker.Status)
				require.NotNil(t, locker.CurrentOrderID)
				return nil
			})
		// customer confirmation plus the admin feed entry
		m.expectSavedNotification()
		m.expectSavedNotification()

		order, err := s.CreateOrder(ctx, DepositInput{
			SenderID:        "cust-1",
			SenderName:      "Nguyen Van A",
			LockerNumber:    "a-1",
			TransactionType: TransactionDeposit,
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, created.ID, order.ID)
		assert.Equal(t, repository.OrderStatusDelivered, order.Status)
		require.NotNil(t, order.PickupCode)
		assert.Len(t, *order.PickupCode, 6)
		require.NotNil(t, order.LockerID)
		assert.Equal(t, "A-1", *order.LockerID)
	})

	t.Run("hold has no pickup code", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.lockers.EXPECT().GetByNumber(gomock.Any(), "A-1").Return(availableLocker(), nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.lockers.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.expectSavedNotification()
		m.expectSavedNotification()

		order, err := s.CreateOrder(ctx, DepositInput{
			SenderID:        "cust-1",
			SenderName:      "Nguyen Van A",
			LockerNumber:    "A-1",
			TransactionType: TransactionHold,
		})

		require.NoError(t, err)
		assert.Nil(t, order.PickupCode)
	})

	t.Run("staged kiosk record is stamped with the order id", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.lockers.EXPECT().GetByNumber(gomock.Any(), "A-1").Return(availableLocker(), nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.lockers.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.delivery.EXPECT().GetByID(gomock.Any(), "di-1").Return(&repository.DeliveryInfo{
			ID:           "di-1",
			DeliveryType: repository.DeliveryTypeCode,
		}, nil)
		m.delivery.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, info *repository.DeliveryInfo) error {
				require.NotNil(t, info.OrderID)
				assert.NotEmpty(t, *info.OrderID)
				return nil
			})
		m.expectSavedNotification()
		m.expectSavedNotification()

		_, err := s.CreateOrder(ctx, DepositInput{
			SenderID:        "cust-1",
			SenderName:      "Nguyen Van A",
			LockerNumber:    "A-1",
			TransactionType: TransactionDeposit,
			DeliveryInfoID:  strPtr("di-1"),
		})

		assert.NoError(t, err)
	})

	t.Run("occupied locker is rejected", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.lockers.EXPECT().GetByNumber(gomock.Any(), "A-1").Return(&repository.Locker{
			ID:     "A-1",
			Number: "A-1",
			Status: repository.LockerStatusOccupied,
		}, nil)

		_, err := s.CreateOrder(ctx, DepositInput{
			SenderID:        "cust-1",
			SenderName:      "Nguyen Van A",
			LockerNumber:    "A-1",
			TransactionType: TransactionDeposit,
		})

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown locker number", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.lockers.EXPECT().GetByNumber(gomock.Any(), "Z-9").
			Return(nil, repository.ErrObjectNotFound)

		_, err := s.CreateOrder(ctx, DepositInput{
			SenderID:        "cust-1",
			SenderName:      "Nguyen Van A",
			LockerNumber:    "z-9",
			TransactionType: TransactionDeposit,
		})

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("input validation", func(t *testing.T) {
		tests := []struct {
			name string
			in   DepositInput
		}{
			{
				name: "missing sender",
				in:   DepositInput{LockerNumber: "A-1", TransactionType: TransactionDeposit},
			},
			{
				name: "missing locker number",
				in:   DepositInput{SenderID: "cust-1", SenderName: "A", TransactionType: TransactionDeposit},
			},
			{
				name: "unknown transaction type",
				in:   DepositInput{SenderID: "cust-1", SenderName: "A", LockerNumber: "A-1", TransactionType: "loan"},
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				s, _ := newTestStorage(t)

				_, err := s.CreateOrder(ctx, tc.in)

				assert.ErrorIs(t, err, ErrValidation)
			})
		}
	})
}

func TestListOrdersBySender(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStorage(t)

	m.orders.EXPECT().GetBySender(gomock.Any(), "cust-1", 50).
		Return([]*repository.Order{{ID: "ord-1"}}, nil)

	orders, err := s.ListOrdersBySender(ctx, "cust-1", 0)

	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
