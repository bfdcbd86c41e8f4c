package watcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/storage"
)

type PickupStorage interface {
	ListUnreadPickupNotifications(ctx context.Context) ([]*repository.Notification, error)
	HandlePickup(ctx context.Context, orderID, lockerNumber string) (storage.PickupResult, error)
}

// PickupWatcher bridges pickup notifications to order completion. It never
// marks the notifications read; that stays with the admin UI. Instead it
// remembers which notification ids it has already fed to HandlePickup, and
// HandlePickup itself is idempotent, so a restart that loses the set only
// causes harmless repeat calls.
type PickupWatcher struct {
	storage        PickupStorage
	interval       time.Duration
	logger         *zap.Logger
	mu             sync.Mutex
	processed      map[string]struct{}
	wg             sync.WaitGroup
	shutdownSignal chan struct{}
	stopOnce       sync.Once
}

func NewPickupWatcher(storage PickupStorage, interval time.Duration, logger *zap.Logger) *PickupWatcher {
	return &PickupWatcher{
		storage:        storage,
		interval:       interval,
		logger:         logger,
		processed:      make(map[string]struct{}),
		shutdownSignal: make(chan struct{}),
	}
}

func (w *PickupWatcher) Run(ctx context.Context) {
	w.logger.Info("starting pickup watcher", zap.Duration("interval", w.interval))
	w.wg.Add(1)
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.sweep(ctx)
		case <-w.shutdownSignal:
			w.logger.Info("pickup watcher stopping")
			return
		case <-ctx.Done():
			// Shutdown waits on this goroutine's WaitGroup entry, so it
			// must not be called from here. The owner calls it.
			w.logger.Info("pickup watcher context cancelled")
			return
		}
	}
}

func (w *PickupWatcher) Shutdown() {
	w.stopOnce.Do(func() {
		close(w.shutdownSignal)
		w.wg.Wait()
	})
}

func (w *PickupWatcher) sweep(ctx context.Context) {
	notifications, err := w.storage.ListUnreadPickupNotifications(ctx)
	if err != nil {
		w.logger.Error("pickup watcher failed to list notifications", zap.Error(err))
		return
	}

	for _, n := range notifications {
		select {
		case <-w.shutdownSignal:
			return
		case <-ctx.Done():
			return
		default:
		}

		if n.OrderID == nil || w.alreadyProcessed(n.ID) {
			continue
		}

		lockerNumber := ""
		if n.LockerID != nil {
			lockerNumber = *n.LockerID
		}
		result, err := w.storage.HandlePickup(ctx, *n.OrderID, lockerNumber)
		if err != nil {
			w.logger.Error("pickup watcher failed to handle pickup",
				zap.String("order_id", *n.OrderID), zap.Error(err))
			continue
		}

		w.markProcessed(n.ID)
		if !result.Success {
			w.logger.Debug("pickup already settled",
				zap.String("order_id", *n.OrderID),
				zap.String("reason", result.Message))
		}
	}
}

func (w *PickupWatcher) alreadyProcessed(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.processed[id]
	return ok
}

func (w *PickupWatcher) markProcessed(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.processed[id] = struct{}{}
}
