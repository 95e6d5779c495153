package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/boardgamehub/boardgame-ui/internal/domain/route"
	"github.com/boardgamehub/boardgame-ui/internal/domain/session"
	"github.com/boardgamehub/boardgame-ui/internal/ports"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &respWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *respWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// SessionScopeConfig configures the tab scope middleware.
type SessionScopeConfig struct {
	Storage ports.SessionStorage
	// CookieName defaults to TabCookieName.
	CookieName   string
	CookieDomain string
	Logger       *slog.Logger
}

// SessionScope returns a middleware that binds the tab's session holder to the
// request context. The tab is identified by a browser-session cookie holding a
// random scope ID; a missing or malformed cookie starts a new scope.
func SessionScope(cfg SessionScopeConfig) func(http.Handler) http.Handler {
	if cfg.Storage == nil {
		panic("SessionScope requires a SessionStorage")
	}
	if cfg.CookieName == "" {
		cfg.CookieName = TabCookieName
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope := tabScopeFromRequest(r, cfg.CookieName)
			if scope == "" {
				scope = uuid.NewString()
				setTabCookie(w, r, tabCookieParams{Name: cfg.CookieName, Domain: cfg.CookieDomain, Scope: scope})
			}

			holder := session.NewHolder(session.HolderOptions{
				Storage: cfg.Storage,
				Scope:   scope,
				Logger:  cfg.Logger,
			})
			next.ServeHTTP(w, r.WithContext(SetHolderInContext(r.Context(), holder)))
		})
	}
}

func tabScopeFromRequest(r *http.Request, cookieName string) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return ""
	}
	return id.String()
}

type tabCookieParams struct {
	Name   string
	Domain string
	Scope  string
}

// setTabCookie writes the scope cookie without Max-Age or Expires so it ends
// with the browsing session.
func setTabCookie(w http.ResponseWriter, r *http.Request, p tabCookieParams) {
	http.SetCookie(w, &http.Cookie{
		Name:     p.Name,
		Value:    p.Scope,
		Path:     "/",
		Domain:   p.Domain,
		HttpOnly: true,
		Secure:   r.TLS != nil || isForwardedHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// isForwardedHTTPS checks if the request was forwarded over HTTPS.
// Handles comma-separated values in X-Forwarded-Proto header.
func isForwardedHTTPS(r *http.Request) bool {
	for _, proto := range strings.Split(r.Header.Get("X-Forwarded-Proto"), ",") {
		if strings.EqualFold(strings.TrimSpace(proto), "https") {
			return true
		}
	}
	return false
}

// NavigationConfig holds the collaborators of the Navigate middleware.
type NavigationConfig struct {
	Table  *route.Table
	Guard  *route.Guard
	Logger *slog.Logger
}

// Navigate returns a middleware that runs the guard for target before next.
// On Proceed the route's view inputs are resolved into the request context.
// On Redirect the response depends on the client:
//   - API and JSON clients get 401 with an authentication_required error
//   - htmx requests get 200 with Hx-Redirect to the landing route
//   - browsers get 303 See Other to the landing route
func Navigate(cfg NavigationConfig, target route.Descriptor) func(http.Handler) http.Handler {
	if cfg.Table == nil || cfg.Guard == nil {
		panic("Navigate requires a route table and guard")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nav := route.Navigation{Target: target, Current: currentRoute(r, cfg.Table)}
			if holder, ok := HolderFromContext(r.Context()); ok {
				nav.Session = holder
			}

			decision := cfg.Guard.Evaluate(r.Context(), nav)
			if decision.Proceeds() {
				in := target.Inputs(r.PathValue, r.URL.Query())
				next.ServeHTTP(w, r.WithContext(SetViewInputs(r.Context(), in)))
				return
			}

			landing := cfg.Table.URLOrLanding(decision.RedirectTo.Name, nil)
			logger.InfoContext(r.Context(), "navigation redirected",
				slog.String("target", target.Name),
				slog.String("from", nav.Current.Name),
				slog.String("to", decision.RedirectTo.Name),
			)
			redirectToLanding(w, r, landing)
		})
	}
}

func redirectToLanding(w http.ResponseWriter, r *http.Request, landing string) {
	switch {
	case wantsJSON(r):
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
	case IsHTMX(r):
		SetHXRedirect(w, landing)
		w.WriteHeader(http.StatusOK)
	default:
		http.Redirect(w, r, landing, http.StatusSeeOther)
	}
}

// wantsJSON reports whether the client expects a JSON response rather than HTML.
func wantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	if IsHTMX(r) {
		return false
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

// currentRoute resolves the route being navigated away from using the
// Hx-Current-Url or Referer header. Cross-origin referers are ignored.
func currentRoute(r *http.Request, t *route.Table) route.Descriptor {
	raw := r.Header.Get("Hx-Current-Url")
	if raw == "" {
		raw = r.Header.Get("Referer")
	}
	if raw == "" {
		return route.Descriptor{}
	}
	u, err := url.Parse(raw)
	if err != nil {
		return route.Descriptor{}
	}
	if u.Host != "" && !strings.EqualFold(u.Host, r.Host) {
		return route.Descriptor{}
	}
	d, _ := t.Match(u.Path)
	return d
}
