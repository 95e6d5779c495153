// Package session holds the per-tab authenticated-user identifier.
// It is free of HTTP concerns; callers bind a Holder to one tab scope and
// thread it explicitly to whatever needs identity.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/boardgamehub/boardgame-ui/internal/ports"
)

// IdentifierKey is the fixed storage key for the authenticated user identifier.
const IdentifierKey = "userAccountID"

// HolderOptions groups dependencies for a Holder.
type HolderOptions struct {
	Storage ports.SessionStorage
	Scope   string
	Logger  *slog.Logger
}

// Holder reads and writes the session identifier for a single tab scope.
// A nil Holder behaves as an empty, unauthenticated session.
type Holder struct {
	storage ports.SessionStorage
	scope   string
	logger  *slog.Logger
}

// NewHolder binds storage to a tab scope.
func NewHolder(opts HolderOptions) *Holder {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Holder{
		storage: opts.Storage,
		scope:   opts.Scope,
		logger:  logger,
	}
}

// Scope returns the tab scope this holder is bound to.
func (h *Holder) Scope() string {
	if h == nil {
		return ""
	}
	return h.scope
}

// SetIdentifier stores id as the authenticated user for this tab.
// The value is not validated.
func (h *Holder) SetIdentifier(ctx context.Context, id string) error {
	return h.Store(ctx, IdentifierKey, id)
}

// Identifier returns the stored identifier. Read failures are logged and
// reported as absent.
func (h *Holder) Identifier(ctx context.Context) (string, bool) {
	return h.Load(ctx, IdentifierKey)
}

// ClearIdentifier removes the identifier. Clearing an absent identifier is a no-op.
func (h *Holder) ClearIdentifier(ctx context.Context) error {
	return h.Remove(ctx, IdentifierKey)
}

// IsAuthenticated reports whether a non-empty identifier is present.
func (h *Holder) IsAuthenticated(ctx context.Context) bool {
	id, ok := h.Identifier(ctx)
	return ok && strings.TrimSpace(id) != ""
}

// Load returns an arbitrary tab-scoped value.
func (h *Holder) Load(ctx context.Context, key string) (string, bool) {
	if h == nil || h.storage == nil || h.scope == "" {
		return "", false
	}
	v, err := h.storage.Get(ctx, h.scope, key)
	if err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			h.logger.WarnContext(ctx, "session storage read failed",
				"key", key,
				"error", err)
		}
		return "", false
	}
	return v, true
}

// Store writes an arbitrary tab-scoped value.
func (h *Holder) Store(ctx context.Context, key, value string) error {
	if h == nil || h.storage == nil || h.scope == "" {
		return errNoScope
	}
	return h.storage.Set(ctx, h.scope, key, value)
}

// Remove deletes an arbitrary tab-scoped value.
func (h *Holder) Remove(ctx context.Context, key string) error {
	if h == nil || h.storage == nil || h.scope == "" {
		return nil
	}
	return h.storage.Clear(ctx, h.scope, key)
}

// Rebind returns a holder on the same storage bound to another tab scope.
func (h *Holder) Rebind(scope string) *Holder {
	if h == nil {
		return nil
	}
	return &Holder{storage: h.storage, scope: scope, logger: h.logger}
}

// Discard removes every value stored for this tab, identifier included.
func (h *Holder) Discard(ctx context.Context) error {
	if h == nil || h.storage == nil || h.scope == "" {
		return nil
	}
	return h.storage.Drop(ctx, h.scope)
}

var errNoScope = errors.New("session holder is not bound to a scope")
