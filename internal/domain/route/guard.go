package route

import "context"

// Authenticator reports whether the current tab holds an authenticated session.
// *session.Holder satisfies it.
type Authenticator interface {
	IsAuthenticated(ctx context.Context) bool
}

// Outcome is the result kind of a navigation decision.
type Outcome int

const (
	// Proceed lets the navigation complete.
	Proceed Outcome = iota
	// Redirect sends the navigation to the landing route instead.
	Redirect
)

func (o Outcome) String() string {
	if o == Redirect {
		return "redirect"
	}
	return "proceed"
}

// Decision is the guard's verdict for one navigation.
type Decision struct {
	Outcome Outcome
	// RedirectTo is set when Outcome is Redirect.
	RedirectTo Descriptor
}

// Proceeds reports whether the navigation may complete.
func (d Decision) Proceeds() bool { return d.Outcome == Proceed }

// Navigation is a single transition evaluated by the guard.
type Navigation struct {
	Target Descriptor
	// Current is the route being navigated away from; zero when unknown.
	Current Descriptor
	// Session is the tab's session; nil is treated as unauthenticated.
	Session Authenticator
}

// Guard decides whether a navigation proceeds or is redirected to the landing route.
type Guard struct {
	landing Descriptor
}

// NewGuard creates a guard redirecting to the table's landing route.
func NewGuard(t *Table) *Guard {
	return &Guard{landing: t.Landing()}
}

// Landing returns the redirect target for unauthenticated navigations.
func (g *Guard) Landing() Descriptor { return g.landing }

// Evaluate resolves a navigation synchronously. Public targets always proceed;
// RequiresAuth targets proceed only with an authenticated session.
func (g *Guard) Evaluate(ctx context.Context, nav Navigation) Decision {
	if nav.Target.Access != RequiresAuth {
		return Decision{Outcome: Proceed}
	}
	if nav.Session != nil && nav.Session.IsAuthenticated(ctx) {
		return Decision{Outcome: Proceed}
	}
	return Decision{Outcome: Redirect, RedirectTo: g.landing}
}
