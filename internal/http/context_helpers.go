package httpx

import (
	"context"

	"github.com/boardgamehub/boardgame-ui/internal/domain/session"
)

// Context keys are centralized in this file so handlers and middleware share them.
type (
	holderKey     struct{}
	viewInputsKey struct{}
)

// SetHolderInContext returns a child context that carries the tab's session holder.
// If holder is nil, the original ctx is returned unchanged.
func SetHolderInContext(ctx context.Context, holder *session.Holder) context.Context {
	if holder == nil {
		return ctx
	}
	return context.WithValue(ctx, holderKey{}, holder)
}

// HolderFromContext returns the tab's session holder and whether one is bound.
func HolderFromContext(ctx context.Context) (*session.Holder, bool) {
	h, ok := ctx.Value(holderKey{}).(*session.Holder)
	return h, ok && h != nil
}

// SessionIdentifier returns the authenticated user identifier of the current tab.
func SessionIdentifier(ctx context.Context) (string, bool) {
	h, ok := HolderFromContext(ctx)
	if !ok {
		return "", false
	}
	id, ok := h.Identifier(ctx)
	return id, ok && id != ""
}

// SetViewInputs stores the route's resolved view inputs.
func SetViewInputs(ctx context.Context, in map[string]string) context.Context {
	return context.WithValue(ctx, viewInputsKey{}, in)
}

// ViewInputs returns the view inputs resolved by the navigation middleware.
// The map is never nil.
func ViewInputs(ctx context.Context) map[string]string {
	if in, ok := ctx.Value(viewInputsKey{}).(map[string]string); ok && in != nil {
		return in
	}
	return map[string]string{}
}
