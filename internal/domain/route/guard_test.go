package route

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticAuth bool

func (s staticAuth) IsAuthenticated(context.Context) bool { return bool(s) }

// toggleAuth flips to authenticated once an identifier is set.
type toggleAuth struct{ id string }

func (a *toggleAuth) IsAuthenticated(context.Context) bool { return a.id != "" }

func TestGuard_PublicRoutesAlwaysProceed(t *testing.T) {
	table := DefaultTable()
	guard := NewGuard(table)
	ctx := context.Background()

	for _, d := range table.Routes() {
		if d.Access != Public {
			continue
		}
		for _, sess := range []Authenticator{nil, staticAuth(false), staticAuth(true)} {
			decision := guard.Evaluate(ctx, Navigation{Target: d, Session: sess})
			assert.True(t, decision.Proceeds(), "public route %s should proceed", d.Name)
		}
	}
}

func TestGuard_ProtectedRoutes(t *testing.T) {
	table := DefaultTable()
	guard := NewGuard(table)
	ctx := context.Background()

	for _, d := range table.Routes() {
		if d.Access != RequiresAuth {
			continue
		}

		denied := guard.Evaluate(ctx, Navigation{Target: d, Session: staticAuth(false)})
		assert.Equal(t, Redirect, denied.Outcome, "route %s", d.Name)
		assert.Equal(t, Secure, denied.RedirectTo.Name)

		noSession := guard.Evaluate(ctx, Navigation{Target: d})
		assert.Equal(t, Redirect, noSession.Outcome, "route %s", d.Name)

		allowed := guard.Evaluate(ctx, Navigation{Target: d, Session: staticAuth(true)})
		assert.True(t, allowed.Proceeds(), "route %s", d.Name)
		assert.True(t, allowed.RedirectTo.IsZero())
	}
}

func TestGuard_LoginThenRetry(t *testing.T) {
	table := DefaultTable()
	guard := NewGuard(table)
	ctx := context.Background()
	target, _ := table.Lookup(YourGames)
	sess := &toggleAuth{}

	first := guard.Evaluate(ctx, Navigation{Target: target, Session: sess})
	assert.Equal(t, Redirect, first.Outcome)
	assert.Equal(t, "/secure", first.RedirectTo.Pattern)

	sess.id = "42"
	second := guard.Evaluate(ctx, Navigation{Target: target, Session: sess})
	assert.Equal(t, Proceed, second.Outcome)
}

func TestGuard_AuthenticatedMayVisitLogin(t *testing.T) {
	table := DefaultTable()
	guard := NewGuard(table)
	login, _ := table.Lookup(Login)
	home, _ := table.Lookup(Home)

	decision := guard.Evaluate(context.Background(), Navigation{
		Target:  login,
		Current: home,
		Session: staticAuth(true),
	})
	assert.True(t, decision.Proceeds())
}

func TestGuard_LandingNeverRedirects(t *testing.T) {
	table := DefaultTable()
	guard := NewGuard(table)

	decision := guard.Evaluate(context.Background(), Navigation{Target: guard.Landing()})
	assert.True(t, decision.Proceeds())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "proceed", Proceed.String())
	assert.Equal(t, "redirect", Redirect.String())
}
