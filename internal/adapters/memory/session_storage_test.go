package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/boardgamehub/boardgame-ui/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestSessionStorage_SetGetClear(t *testing.T) {
	store := NewSessionStorage(SessionStorageOptions{})
	ctx := context.Background()

	_, err := store.Get(ctx, "tab-1", "userAccountID")
	require.ErrorIs(t, err, ports.ErrNotFound)

	require.NoError(t, store.Set(ctx, "tab-1", "userAccountID", "42"))
	v, err := store.Get(ctx, "tab-1", "userAccountID")
	require.NoError(t, err)
	assert.Equal(t, "42", v)

	require.NoError(t, store.Clear(ctx, "tab-1", "userAccountID"))
	require.NoError(t, store.Clear(ctx, "tab-1", "userAccountID"))
	_, err = store.Get(ctx, "tab-1", "userAccountID")
	require.ErrorIs(t, err, ports.ErrNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestSessionStorage_ScopesAreIsolated(t *testing.T) {
	store := NewSessionStorage(SessionStorageOptions{})
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tab-1", "userAccountID", "1"))
	_, err := store.Get(ctx, "tab-2", "userAccountID")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestSessionStorage_SetValidation(t *testing.T) {
	store := NewSessionStorage(SessionStorageOptions{})
	ctx := context.Background()

	assert.Error(t, store.Set(ctx, "", "k", "v"))
	assert.Error(t, store.Set(ctx, "tab", "", "v"))
}

func TestSessionStorage_IdleExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	store := NewSessionStorage(SessionStorageOptions{IdleTTL: 30 * time.Minute, Now: clock.Now})
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tab-1", "userAccountID", "42"))

	clock.Advance(20 * time.Minute)
	require.NoError(t, store.Set(ctx, "tab-1", "sort:registered", "title:asc"))

	clock.Advance(20 * time.Minute)
	v, err := store.Get(ctx, "tab-1", "userAccountID")
	require.NoError(t, err, "write should refresh the idle window")
	assert.Equal(t, "42", v)

	clock.Advance(31 * time.Minute)
	_, err = store.Get(ctx, "tab-1", "userAccountID")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestSessionStorage_ReadsKeepActiveTabAlive(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	store := NewSessionStorage(SessionStorageOptions{IdleTTL: 12 * time.Hour, Now: clock.Now})
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tab-1", "userAccountID", "42"))
	for hour := 1; hour <= 24; hour++ {
		clock.Advance(time.Hour)
		v, err := store.Get(ctx, "tab-1", "userAccountID")
		require.NoError(t, err, "hour %d", hour)
		assert.Equal(t, "42", v)
	}

	clock.Advance(12 * time.Hour)
	assert.Equal(t, 1, store.Sweep())
}

func TestSessionStorage_Drop(t *testing.T) {
	store := NewSessionStorage(SessionStorageOptions{})
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tab-1", "userAccountID", "42"))
	require.NoError(t, store.Set(ctx, "tab-1", "sort:registered", "title:asc"))
	require.NoError(t, store.Set(ctx, "tab-2", "userAccountID", "7"))

	require.NoError(t, store.Drop(ctx, "tab-1"))
	require.NoError(t, store.Drop(ctx, "missing"))

	_, err := store.Get(ctx, "tab-1", "sort:registered")
	assert.ErrorIs(t, err, ports.ErrNotFound)
	v, err := store.Get(ctx, "tab-2", "userAccountID")
	require.NoError(t, err)
	assert.Equal(t, "7", v)
}

func TestSessionStorage_Sweep(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	store := NewSessionStorage(SessionStorageOptions{IdleTTL: time.Hour, Now: clock.Now})
	ctx := context.Background()

	for i := range 3 {
		require.NoError(t, store.Set(ctx, fmt.Sprintf("old-%d", i), "k", "v"))
	}
	clock.Advance(90 * time.Minute)
	require.NoError(t, store.Set(ctx, "fresh", "k", "v"))

	assert.Equal(t, 3, store.Sweep())
	assert.Equal(t, 1, store.Len())
}

func TestSessionStorage_SweepWithoutTTL(t *testing.T) {
	store := NewSessionStorage(SessionStorageOptions{})
	require.NoError(t, store.Set(context.Background(), "tab", "k", "v"))
	assert.Equal(t, 0, store.Sweep())
	assert.Equal(t, 1, store.Len())
}

func TestSessionStorage_ConcurrentAccess(t *testing.T) {
	store := NewSessionStorage(SessionStorageOptions{})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			scope := fmt.Sprintf("tab-%d", i%5)
			_ = store.Set(ctx, scope, "k", fmt.Sprint(i))
			_, _ = store.Get(ctx, scope, "k")
			if i%7 == 0 {
				_ = store.Clear(ctx, scope, "k")
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, store.Len(), 5)
}

func TestSessionStorage_RunStopsOnCancel(t *testing.T) {
	store := NewSessionStorage(SessionStorageOptions{IdleTTL: time.Minute})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		store.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
