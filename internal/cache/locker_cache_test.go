package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
)

type stubLockerRepo struct {
	lockers []*repository.Locker
	err     error
}

func (r *stubLockerRepo) GetAll(context.Context) ([]*repository.Locker, error) {
	return r.lockers, r.err
}

func TestLockerCacheLoadInitialData(t *testing.T) {
	repo := &stubLockerRepo{lockers: []*repository.Locker{
		{ID: "A-1", Number: "A-1", Status: repository.LockerStatusAvailable},
		{ID: "B-2", Number: "B-2", Status: repository.LockerStatusOccupied},
	}}
	c := NewLockerCache(repo, zap.NewNop())

	require.NoError(t, c.LoadInitialData(context.Background()))

	locker, found := c.GetByNumber("A-1")
	require.True(t, found)
	assert.Equal(t, repository.LockerStatusAvailable, locker.Status)

	_, found = c.GetByNumber("Z-9")
	assert.False(t, found)
}

func TestLockerCacheLoadFailure(t *testing.T) {
	c := NewLockerCache(&stubLockerRepo{err: errors.New("connection reset")}, zap.NewNop())

	assert.Error(t, c.LoadInitialData(context.Background()))
}

func TestLockerCacheReturnsCopies(t *testing.T) {
	c := NewLockerCache(&stubLockerRepo{}, zap.NewNop())
	c.Set(&repository.Locker{ID: "A-1", Number: "A-1", Status: repository.LockerStatusAvailable})

	first, found := c.GetByNumber("A-1")
	require.True(t, found)
	first.Status = repository.LockerStatusError

	second, found := c.GetByNumber("A-1")
	require.True(t, found)
	assert.Equal(t, repository.LockerStatusAvailable, second.Status,
		"mutating a returned locker must not leak into the cache")
}

func TestLockerCacheDelete(t *testing.T) {
	c := NewLockerCache(&stubLockerRepo{}, zap.NewNop())
	c.Set(&repository.Locker{ID: "A-1", Number: "A-1"})

	c.Delete("A-1")

	_, found := c.GetByNumber("A-1")
	assert.False(t, found)
}
