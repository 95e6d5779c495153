package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/boardgamehub/boardgame-ui/internal/adapters/memory"
	"github.com/boardgamehub/boardgame-ui/internal/domain/model"
	"github.com/boardgamehub/boardgame-ui/internal/mocks"
)

type failingCache struct{ err error }

func (f failingCache) Set(context.Context, string, []byte, time.Duration) error { return f.err }
func (f failingCache) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingCache) Delete(context.Context, string) (bool, error) { return false, f.err }
func (f failingCache) Health(context.Context) error { return f.err }

func TestCachedGameAPI_ListHitsBackendOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	games := mocks.NewMockGameAPI(ctrl)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := memory.NewCache(func() time.Time { return now })
	api := NewCachedGameAPI(CachedGameAPIOptions{Games: games, Cache: cache, TTL: time.Minute})
	ctx := context.Background()

	games.EXPECT().List(ctx).Return([]model.Game{{Title: "Catan", Category: "Strategy"}}, nil).Times(2)

	for range 3 {
		got, err := api.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Game{{Title: "Catan", Category: "Strategy"}}, got)
	}

	now = now.Add(2 * time.Minute)
	_, err := api.List(ctx)
	require.NoError(t, err)
}

func TestCachedGameAPI_BackendErrorIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	games := mocks.NewMockGameAPI(ctrl)
	api := NewCachedGameAPI(CachedGameAPIOptions{Games: games, Cache: memory.NewCache(nil)})
	ctx := context.Background()

	gomock.InOrder(
		games.EXPECT().List(ctx).Return(nil, errors.New("down")),
		games.EXPECT().List(ctx).Return([]model.Game{{Title: "Risk"}}, nil),
	)

	_, err := api.List(ctx)
	require.Error(t, err)
	got, err := api.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCachedGameAPI_CacheFailureFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	games := mocks.NewMockGameAPI(ctrl)
	api := NewCachedGameAPI(CachedGameAPIOptions{Games: games, Cache: failingCache{err: errors.New("redis down")}})
	ctx := context.Background()

	games.EXPECT().List(ctx).Return([]model.Game{{Title: "Risk"}}, nil)
	games.EXPECT().Get(ctx, "Risk").Return(&model.Game{Title: "Risk"}, nil)

	got, err := api.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	g, err := api.Get(ctx, "Risk")
	require.NoError(t, err)
	assert.Equal(t, "Risk", g.Title)
}

func TestNewCachedGameAPI_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	games := mocks.NewMockGameAPI(ctrl)
	assert.Same(t, games, NewCachedGameAPI(CachedGameAPIOptions{Games: games}))
}
