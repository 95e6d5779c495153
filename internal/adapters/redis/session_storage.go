// Package redis provides Redis-based adapters for tab-scoped session storage.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/boardgamehub/boardgame-ui/internal/ports"
	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "bgsession:"

// SessionStorageOptions configures a SessionStorage.
type SessionStorageOptions struct {
	// Prefix is prepended to every key. Defaults to "bgsession:".
	Prefix string
	// IdleTTL expires a scope's values after this long without reads or writes.
	// Zero keeps values until cleared.
	IdleTTL time.Duration
}

// SessionStorage keeps each tab scope in a Redis hash keyed by prefix+scope.
// Every access refreshes the hash's idle TTL, so only abandoned tabs expire.
type SessionStorage struct {
	client  redis.UniversalClient
	prefix  string
	idleTTL time.Duration
}

var _ ports.SessionStorage = (*SessionStorage)(nil)

// NewSessionStorage creates a Redis-backed session storage.
func NewSessionStorage(client redis.UniversalClient, opts SessionStorageOptions) *SessionStorage {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &SessionStorage{
		client:  client,
		prefix:  prefix,
		idleTTL: opts.IdleTTL,
	}
}

func (s *SessionStorage) key(scope string) string { return s.prefix + scope }

func (s *SessionStorage) Get(ctx context.Context, scope, key string) (string, error) {
	if scope == "" || key == "" {
		return "", ports.ErrNotFound
	}

	k := s.key(scope)
	var get *redis.StringCmd
	_, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		get = pipe.HGet(ctx, k, key)
		if s.idleTTL > 0 {
			pipe.Expire(ctx, k, s.idleTTL)
		}
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("redis hget: %w", err)
	}
	v, err := get.Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ports.ErrNotFound
		}
		return "", fmt.Errorf("redis hget: %w", err)
	}
	return v, nil
}

func (s *SessionStorage) Set(ctx context.Context, scope, key, value string) error {
	if scope == "" {
		return errors.New("session scope cannot be empty")
	}
	if key == "" {
		return errors.New("session key cannot be empty")
	}

	k := s.key(scope)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, k, key, value)
		if s.idleTTL > 0 {
			pipe.Expire(ctx, k, s.idleTTL)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis hset: %w", err)
	}
	return nil
}

func (s *SessionStorage) Clear(ctx context.Context, scope, key string) error {
	if scope == "" || key == "" {
		return nil
	}
	if err := s.client.HDel(ctx, s.key(scope), key).Err(); err != nil {
		return fmt.Errorf("redis hdel: %w", err)
	}
	return nil
}

// Drop removes every value of a scope.
func (s *SessionStorage) Drop(ctx context.Context, scope string) error {
	if scope == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.key(scope)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
