package watcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/storage"
)

// DeliveryInfoStorage is the slice of the storage layer the cleanup watcher
// needs.
type DeliveryInfoStorage interface {
	ListDeliveryInfos(ctx context.Context) ([]*repository.DeliveryInfo, error)
	CleanupDeliveryInfo(ctx context.Context, info *repository.DeliveryInfo) (storage.CleanupAction, error)
}

// DeliveryInfoWatcher periodically re-reads the full staging set and cleans
// every record whose cleanup rule currently matches. Each pass evaluates
// from scratch: a record skipped on one pass because its order had not
// materialized yet is picked up on a later one.
type DeliveryInfoWatcher struct {
	storage        DeliveryInfoStorage
	interval       time.Duration
	logger         *zap.Logger
	wg             sync.WaitGroup
	shutdownSignal chan struct{}
	stopOnce       sync.Once
}

func NewDeliveryInfoWatcher(storage DeliveryInfoStorage, interval time.Duration, logger *zap.Logger) *DeliveryInfoWatcher {
	return &DeliveryInfoWatcher{
		storage:        storage,
		interval:       interval,
		logger:         logger,
		shutdownSignal: make(chan struct{}),
	}
}

func (w *DeliveryInfoWatcher) Run(ctx context.Context) {
	w.logger.Info("starting delivery info cleanup watcher", zap.Duration("interval", w.interval))
	w.wg.Add(1)
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.sweep(ctx)
		case <-w.shutdownSignal:
			w.logger.Info("delivery info cleanup watcher stopping")
			return
		case <-ctx.Done():
			// Shutdown waits on this goroutine's WaitGroup entry, so it
			// must not be called from here. The owner calls it.
			w.logger.Info("delivery info cleanup watcher context cancelled")
			return
		}
	}
}

func (w *DeliveryInfoWatcher) Shutdown() {
	w.stopOnce.Do(func() {
		close(w.shutdownSignal)
		w.wg.Wait()
	})
}

// Sweep runs one cleanup pass and returns how many records were cleaned.
// Exposed so the admin endpoint can trigger a pass on demand.
func (w *DeliveryInfoWatcher) Sweep(ctx context.Context) int {
	return w.sweep(ctx)
}

func (w *DeliveryInfoWatcher) sweep(ctx context.Context) int {
	infos, err := w.storage.ListDeliveryInfos(ctx)
	if err != nil {
		w.logger.Error("cleanup watcher failed to list delivery infos", zap.Error(err))
		return 0
	}

	cleaned := 0
	for _, info := range infos {
		select {
		case <-w.shutdownSignal:
			return cleaned
		case <-ctx.Done():
			return cleaned
		default:
		}

		action, err := w.storage.CleanupDeliveryInfo(ctx, info)
		if err != nil {
			w.logger.Error("cleanup failed for delivery info",
				zap.String("id", info.ID), zap.Error(err))
			continue
		}
		if action != storage.CleanupNone {
			cleaned++
		}
	}

	if cleaned > 0 {
		w.logger.Info("delivery info cleanup pass complete", zap.Int("cleaned", cleaned))
	}
	return cleaned
}
