package storage

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
)

const (
	TransactionDeposit = "deposit"
	TransactionHold    = "hold"
)

type DepositInput struct {
	SenderID        string
	SenderName      string
	SenderPhone     string
	SenderType      string
	ReceiverName    string
	ReceiverPhone   string
	OrderCode       *string
	LockerNumber    string
	TransactionType string
	DeliveryInfoID  *string
}

func (in DepositInput) validate() error {
	if in.SenderID == "" || in.SenderName == "" {
		return fmt.Errorf("%w: missing sender", ErrValidation)
	}
	if in.LockerNumber == "" {
		return fmt.Errorf("%w: missing locker number", ErrValidation)
	}
	switch in.TransactionType {
	case TransactionDeposit, TransactionHold:
	default:
		return fmt.Errorf("%w: unknown transaction type %q", ErrValidation, in.TransactionType)
	}
	return nil
}

// CreateOrder deposits a parcel into an available locker: it creates the
// order, marks the locker occupied, notifies the sender and the admin feed,
// and, when the kiosk staged a delivery-info record first, stamps that record
// with the new order id so the cleanup watcher can finish it.
func (s *PostgresStorage) CreateOrder(ctx context.Context, in DepositInput) (*repository.Order, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	locker, err := s.lockerForDeposit(ctx, in.LockerNumber)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &repository.Order{
		ID:              uuid.NewString(),
		SenderID:        in.SenderID,
		SenderName:      in.SenderName,
		SenderPhone:     in.SenderPhone,
		SenderType:      in.SenderType,
		ReceiverName:    in.ReceiverName,
		ReceiverPhone:   in.ReceiverPhone,
		OrderCode:       in.OrderCode,
		LockerID:        &locker.ID,
		Status:          repository.OrderStatusDelivered,
		TransactionType: in.TransactionType,
		CreatedAt:       now,
		DeliveredAt:     &now,
	}
	if in.TransactionType == TransactionDeposit {
		code, err := generatePickupCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate pickup code: %w", err)
		}
		order.PickupCode = &code
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_order").Inc()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	locker.Status = repository.LockerStatusOccupied
	locker.DoorState = repository.DoorClosed
	locker.CurrentOrderID = &order.ID
	if err := s.lockerRepo.Update(ctx, locker); err != nil {
		s.logger.Error("deposited order but failed to occupy locker",
			zap.String("order_id", order.ID),
			zap.String("locker_id", locker.ID),
			zap.Error(err))
	} else {
		s.lockerCache.Set(locker)
	}

	if in.DeliveryInfoID != nil {
		s.attachOrderToDeliveryInfo(ctx, *in.DeliveryInfoID, order.ID)
	}

	if in.TransactionType == TransactionHold {
		s.saveBestEffort(ctx, NewHoldNotification(order, locker.Number))
	} else {
		s.saveBestEffort(ctx, NewDepositNotification(order, locker.Number))
	}
	s.saveBestEffort(ctx, NewDepositAdminNotification(order, locker.Number))

	metrics.OrdersDepositedTotal.Inc()
	s.logger.Info("order deposited",
		zap.String("order_id", order.ID),
		zap.String("locker", locker.Number),
		zap.String("transaction_type", in.TransactionType))
	return order, nil
}

func (s *PostgresStorage) lockerForDeposit(ctx context.Context, number string) (*repository.Locker, error) {
	normalized := NormalizeLockerNumber(number)
	locker, ok := s.lockerCache.GetByNumber(normalized)
	if !ok {
		var err error
		locker, err = s.lockerRepo.GetByNumber(ctx, normalized)
		if err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return nil, fmt.Errorf("%w: unknown locker %q", ErrValidation, number)
			}
			return nil, err
		}
	}
	if locker.Status != repository.LockerStatusAvailable {
		return nil, fmt.Errorf("%w: locker %s is %s", ErrValidation, locker.Number, locker.Status)
	}
	return locker, nil
}

// attachOrderToDeliveryInfo stamps the staged kiosk record with the order id.
// Failures are logged only: the staging record then simply survives until the
// next cleanup pass.
func (s *PostgresStorage) attachOrderToDeliveryInfo(ctx context.Context, infoID, orderID string) {
	info, err := s.deliveryRepo.GetByID(ctx, infoID)
	if err != nil {
		s.logger.Warn("delivery info not found for deposited order",
			zap.String("delivery_info_id", infoID),
			zap.String("order_id", orderID),
			zap.Error(err))
		return
	}
	info.OrderID = &orderID
	if err := s.deliveryRepo.Update(ctx, info); err != nil {
		s.logger.Error("failed to attach order to delivery info",
			zap.String("delivery_info_id", infoID),
			zap.String("order_id", orderID),
			zap.Error(err))
	}
}

func (s *PostgresStorage) GetOrder(ctx context.Context, id string) (*repository.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *PostgresStorage) ListOrdersBySender(ctx context.Context, senderID string, limit int) ([]*repository.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.orderRepo.GetBySender(ctx, senderID, limit)
}

func generatePickupCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
