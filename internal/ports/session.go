// Package ports defines interfaces (hexagonal ports) for session-related behavior.
// Implementations live in internal/adapters; orchestration in internal/domain and internal/service.
package ports

import (
	"context"
	"errors"
)

// ErrNotFound is returned by SessionStorage.Get when no value is stored for the key.
var ErrNotFound = errors.New("session value not found")

// SessionStorage is a small key/value capability partitioned by tab scope.
// A scope corresponds to one browser tab/session; values in one scope are
// never visible from another.
type SessionStorage interface {
	// Get returns the stored value or ErrNotFound.
	Get(ctx context.Context, scope, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, scope, key, value string) error
	// Clear removes the value. Clearing an absent key is not an error.
	Clear(ctx context.Context, scope, key string) error
	// Drop removes every value of a scope. Dropping an absent scope is not an error.
	Drop(ctx context.Context, scope string) error
}
