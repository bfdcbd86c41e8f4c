package cache

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
)

type LockerRepository interface {
	GetAll(ctx context.Context) ([]*repository.Locker, error)
}

// LockerCache keeps a warm copy of every locker keyed by normalized number,
// so the pickup bridge can resolve number -> locker without a round trip.
type LockerCache struct {
	mu     sync.RWMutex
	cache  map[string]*repository.Locker
	repo   LockerRepository
	logger *zap.Logger
}

func NewLockerCache(repo LockerRepository, logger *zap.Logger) *LockerCache {
	return &LockerCache{
		cache:  make(map[string]*repository.Locker),
		repo:   repo,
		logger: logger,
	}
}

func (c *LockerCache) LoadInitialData(ctx context.Context) error {
	lockers, err := c.repo.GetAll(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, locker := range lockers {
		lockerCopy := *locker
		c.cache[locker.Number] = &lockerCopy
	}
	metrics.LockerCacheItems.Set(float64(len(c.cache)))
	c.logger.Info("loaded lockers into cache", zap.Int("count", len(c.cache)))
	return nil
}

func (c *LockerCache) GetByNumber(number string) (*repository.Locker, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	locker, found := c.cache[number]
	if !found {
		return nil, false
	}
	lockerCopy := *locker
	return &lockerCopy, true
}

func (c *LockerCache) Set(locker *repository.Locker) {
	c.mu.Lock()
	defer c.mu.Unlock()
	lockerCopy := *locker
	c.cache[locker.Number] = &lockerCopy
	metrics.LockerCacheItems.Set(float64(len(c.cache)))
}

func (c *LockerCache) Delete(number string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[number]; found {
		delete(c.cache, number)
		metrics.LockerCacheItems.Set(float64(len(c.cache)))
	}
}
