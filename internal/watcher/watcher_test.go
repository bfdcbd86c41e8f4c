package watcher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/storage"
)

type fakeDeliveryInfoStorage struct {
	infos   []*repository.DeliveryInfo
	actions map[string]storage.CleanupAction
	errs    map[string]error
	cleaned []string
}

func (f *fakeDeliveryInfoStorage) ListDeliveryInfos(context.Context) ([]*repository.DeliveryInfo, error) {
	return f.infos, nil
}

func (f *fakeDeliveryInfoStorage) CleanupDeliveryInfo(_ context.Context, info *repository.DeliveryInfo) (storage.CleanupAction, error) {
	if err := f.errs[info.ID]; err != nil {
		return storage.CleanupNone, err
	}
	action := f.actions[info.ID]
	if action != storage.CleanupNone {
		f.cleaned = append(f.cleaned, info.ID)
	}
	return action, nil
}

func TestDeliveryInfoWatcherSweep(t *testing.T) {
	fake := &fakeDeliveryInfoStorage{
		infos: []*repository.DeliveryInfo{
			{ID: "di-1"},
			{ID: "di-2"},
			{ID: "di-3"},
			{ID: "di-4"},
		},
		actions: map[string]storage.CleanupAction{
			"di-1": storage.CleanupDelete,
			"di-3": storage.CleanupDeleteAndReset,
		},
		errs: map[string]error{
			"di-4": errors.New("connection reset"),
		},
	}
	w := NewDeliveryInfoWatcher(fake, time.Minute, zap.NewNop())

	cleaned := w.Sweep(context.Background())

	assert.Equal(t, 2, cleaned)
	assert.Equal(t, []string{"di-1", "di-3"}, fake.cleaned)
}

type fakePickupStorage struct {
	notifications []*repository.Notification
	calls         []string
}

func (f *fakePickupStorage) ListUnreadPickupNotifications(context.Context) ([]*repository.Notification, error) {
	return f.notifications, nil
}

func (f *fakePickupStorage) HandlePickup(_ context.Context, orderID, _ string) (storage.PickupResult, error) {
	f.calls = append(f.calls, orderID)
	return storage.PickupResult{Success: true}, nil
}

func TestPickupWatcherProcessesEachNotificationOnce(t *testing.T) {
	ctx := context.Background()
	fake := &fakePickupStorage{
		notifications: []*repository.Notification{
			{ID: "n-1", OrderID: ptr("ord-1"), LockerID: ptr("A-1")},
			{ID: "n-2"}, // no order reference, skipped
			{ID: "n-3", OrderID: ptr("ord-3")},
		},
	}
	w := NewPickupWatcher(fake, time.Minute, zap.NewNop())

	w.sweep(ctx)
	assert.Equal(t, []string{"ord-1", "ord-3"}, fake.calls)

	// notifications stay unread, so the next pass sees them again
	w.sweep(ctx)
	assert.Equal(t, []string{"ord-1", "ord-3"}, fake.calls,
		"a processed notification must not be dispatched twice")
}

type failingPickupStorage struct {
	fakePickupStorage
	failOnce bool
}

func (f *failingPickupStorage) HandlePickup(ctx context.Context, orderID, lockerNumber string) (storage.PickupResult, error) {
	if f.failOnce {
		f.failOnce = false
		return storage.PickupResult{}, errors.New("connection reset")
	}
	return f.fakePickupStorage.HandlePickup(ctx, orderID, lockerNumber)
}

func TestPickupWatcherRetriesAfterStorageError(t *testing.T) {
	ctx := context.Background()
	fake := &failingPickupStorage{failOnce: true}
	fake.notifications = []*repository.Notification{
		{ID: "n-1", OrderID: ptr("ord-1")},
	}
	w := NewPickupWatcher(fake, time.Minute, zap.NewNop())

	w.sweep(ctx)
	assert.Empty(t, fake.calls, "failed dispatch must not be marked processed")

	w.sweep(ctx)
	assert.Equal(t, []string{"ord-1"}, fake.calls)
}

func TestDeliveryInfoWatcherShutdownAfterContextCancel(t *testing.T) {
	w := NewDeliveryInfoWatcher(&fakeDeliveryInfoStorage{}, time.Millisecond, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	runDone := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(runDone)
	}()

	cancel()
	select {
	case <-runDone:
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}

	shutdownDone := make(chan struct{})
	go func() {
		w.Shutdown()
		close(shutdownDone)
	}()
	select {
	case <-shutdownDone:
	case <-time.After(3 * time.Second):
		t.Fatal("Shutdown blocked after the run loop had already exited")
	}
}

func TestPickupWatcherShutdownAfterContextCancel(t *testing.T) {
	w := NewPickupWatcher(&fakePickupStorage{}, time.Millisecond, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	runDone := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(runDone)
	}()

	cancel()
	select {
	case <-runDone:
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}

	shutdownDone := make(chan struct{})
	go func() {
		w.Shutdown()
		close(shutdownDone)
	}()
	select {
	case <-shutdownDone:
	case <-time.After(3 * time.Second):
		t.Fatal("Shutdown blocked after the run loop had already exited")
	}
}

func ptr(s string) *string {
	return &s
}
