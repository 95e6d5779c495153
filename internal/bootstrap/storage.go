package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"github.com/boardgamehub/boardgame-ui/config"
	"github.com/boardgamehub/boardgame-ui/internal/adapters/memory"
	redisadapter "github.com/boardgamehub/boardgame-ui/internal/adapters/redis"
	"github.com/boardgamehub/boardgame-ui/internal/core"
	"github.com/boardgamehub/boardgame-ui/internal/ports"
	"github.com/redis/go-redis/v9"
)

// Storage holds the session storage and catalog cache chosen by configuration.
type Storage struct {
	Sessions ports.SessionStorage
	// Cache is nil when catalog caching is disabled.
	Cache core.CacheRepository

	// sweeper is set for the in-memory session store.
	sweeper *memory.SessionStorage
}

// StorageDeps groups dependencies for NewStorage.
type StorageDeps struct {
	Config *config.AppConfig
	// Redis is required when the session store or cache uses Redis.
	Redis  redis.UniversalClient
	Logger *slog.Logger
}

// NewStorage builds the configured session storage and cache.
func NewStorage(deps StorageDeps) (Storage, error) {
	if deps.Config == nil {
		return Storage{}, errors.New("storage config is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	var st Storage
	switch cfg.Session.Store {
	case config.StoreRedis:
		if deps.Redis == nil {
			return Storage{}, errors.New("redis session store requires a redis client")
		}
		st.Sessions = redisadapter.NewSessionStorage(deps.Redis, redisadapter.SessionStorageOptions{
			Prefix:  cfg.Session.KeyPrefix,
			IdleTTL: cfg.Session.IdleTTL,
		})
	default:
		mem := memory.NewSessionStorage(memory.SessionStorageOptions{IdleTTL: cfg.Session.IdleTTL})
		st.Sessions = mem
		st.sweeper = mem
	}

	if cfg.Cache.Enabled {
		switch cfg.Cache.Store {
		case config.StoreRedis:
			if deps.Redis == nil {
				return Storage{}, errors.New("redis cache requires a redis client")
			}
			st.Cache = redisadapter.NewCache(deps.Redis, cfg.Cache.Prefix)
		default:
			st.Cache = memory.NewCache(nil)
		}
	}

	logger.Info("storage configured",
		"session_store", cfg.Session.Store,
		"session_idle_ttl", cfg.Session.IdleTTL,
		"cache_enabled", st.Cache != nil,
		"cache_store", cfg.Cache.Store,
	)
	return st, nil
}

// RunSweeper evicts idle in-memory tab scopes until ctx is cancelled.
// It returns immediately for Redis storage, which expires scopes itself.
func (s Storage) RunSweeper(ctx context.Context, cfg config.SessionConfig) error {
	if s.sweeper == nil {
		return nil
	}
	s.sweeper.Run(ctx, cfg.SweepInterval)
	return nil
}
