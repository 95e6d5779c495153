// Package memory provides in-process adapters used for development and tests.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/boardgamehub/boardgame-ui/internal/ports"
)

// SessionStorageOptions configures a SessionStorage.
type SessionStorageOptions struct {
	// IdleTTL drops a scope once it has not been read or written for this long. Zero disables expiry.
	IdleTTL time.Duration
	// Now overrides the clock. Defaults to time.Now.
	Now func() time.Time
}

type scopeEntry struct {
	values    map[string]string
	touchedAt time.Time
}

// SessionStorage is a mutex-guarded map of tab scopes. Values are lost on restart.
type SessionStorage struct {
	mu      sync.Mutex
	scopes  map[string]*scopeEntry
	idleTTL time.Duration
	now     func() time.Time
}

var _ ports.SessionStorage = (*SessionStorage)(nil)

// NewSessionStorage creates an empty in-memory session storage.
func NewSessionStorage(opts SessionStorageOptions) *SessionStorage {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &SessionStorage{
		scopes:  make(map[string]*scopeEntry),
		idleTTL: opts.IdleTTL,
		now:     now,
	}
}

func (s *SessionStorage) expired(e *scopeEntry, now time.Time) bool {
	return s.idleTTL > 0 && now.Sub(e.touchedAt) >= s.idleTTL
}

// lookup returns the live entry for scope, evicting it when idle too long. Caller holds mu.
func (s *SessionStorage) lookup(scope string, now time.Time) *scopeEntry {
	e, ok := s.scopes[scope]
	if !ok {
		return nil
	}
	if s.expired(e, now) {
		delete(s.scopes, scope)
		return nil
	}
	return e
}

func (s *SessionStorage) Get(_ context.Context, scope, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e := s.lookup(scope, now)
	if e == nil {
		return "", ports.ErrNotFound
	}
	e.touchedAt = now
	v, ok := e.values[key]
	if !ok {
		return "", ports.ErrNotFound
	}
	return v, nil
}

func (s *SessionStorage) Set(_ context.Context, scope, key, value string) error {
	if scope == "" {
		return errors.New("session scope cannot be empty")
	}
	if key == "" {
		return errors.New("session key cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e := s.lookup(scope, now)
	if e == nil {
		e = &scopeEntry{values: make(map[string]string)}
		s.scopes[scope] = e
	}
	e.values[key] = value
	e.touchedAt = now
	return nil
}

func (s *SessionStorage) Clear(_ context.Context, scope, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.lookup(scope, s.now())
	if e == nil {
		return nil
	}
	delete(e.values, key)
	if len(e.values) == 0 {
		delete(s.scopes, scope)
	}
	return nil
}

// Drop removes every value of a scope.
func (s *SessionStorage) Drop(_ context.Context, scope string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.scopes, scope)
	return nil
}

// Sweep evicts every idle scope and reports how many were removed.
func (s *SessionStorage) Sweep() int {
	if s.idleTTL <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for scope, e := range s.scopes {
		if s.expired(e, now) {
			delete(s.scopes, scope)
			removed++
		}
	}
	return removed
}

// Run sweeps idle scopes every interval until ctx is cancelled.
func (s *SessionStorage) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 || s.idleTTL <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Len reports the number of live scopes.
func (s *SessionStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.scopes)
}
