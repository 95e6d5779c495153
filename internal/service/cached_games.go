package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/boardgamehub/boardgame-ui/internal/core"
	"github.com/boardgamehub/boardgame-ui/internal/domain/model"
)

const (
	gameListCacheKey        = "catalog:games"
	defaultGameListCacheTTL = 5 * time.Minute
)

// CachedGameAPIOptions groups dependencies for CachedGameAPI.
type CachedGameAPIOptions struct {
	Games  core.GameAPI
	Cache  core.CacheRepository
	TTL    time.Duration
	Logger *slog.Logger
}

// CachedGameAPI serves the shared game list from a cache. The catalog is
// read on every page view and changes rarely. Cache failures fall through
// to the backend.
type CachedGameAPI struct {
	games  core.GameAPI
	cache  core.CacheRepository
	ttl    time.Duration
	logger *slog.Logger
}

var _ core.GameAPI = (*CachedGameAPI)(nil)

// NewCachedGameAPI wraps games with cache. A nil cache returns games unchanged.
//
//nolint:ireturn // callers only need the port.
func NewCachedGameAPI(opts CachedGameAPIOptions) core.GameAPI {
	if opts.Games == nil {
		panic("GameAPI is required")
	}
	if opts.Cache == nil {
		return opts.Games
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultGameListCacheTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedGameAPI{games: opts.Games, cache: opts.Cache, ttl: ttl, logger: logger}
}

// List returns the cached game list, refreshing it from the backend on a miss.
func (c *CachedGameAPI) List(ctx context.Context) ([]model.Game, error) {
	if raw, err := c.cache.Get(ctx, gameListCacheKey); err != nil {
		c.logger.WarnContext(ctx, "game cache read failed", "error", err)
	} else if raw != nil {
		var games []model.Game
		if err := json.Unmarshal(raw, &games); err == nil {
			return games, nil
		}
		c.logger.WarnContext(ctx, "discarding corrupt game cache entry")
	}

	games, err := c.games.List(ctx)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(games); err == nil {
		if err := c.cache.Set(ctx, gameListCacheKey, raw, c.ttl); err != nil {
			c.logger.WarnContext(ctx, "game cache write failed", "error", err)
		}
	}
	return games, nil
}

// Get is not cached.
func (c *CachedGameAPI) Get(ctx context.Context, title string) (*model.Game, error) {
	return c.games.Get(ctx, title)
}
