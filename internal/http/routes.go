package httpx

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	boardgameui "github.com/boardgamehub/boardgame-ui"
	"github.com/boardgamehub/boardgame-ui/internal/domain/route"
	"github.com/boardgamehub/boardgame-ui/internal/ports"
	"github.com/boardgamehub/boardgame-ui/internal/service"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	// Routes defaults to route.DefaultTable().
	Routes  *route.Table
	Storage ports.SessionStorage

	Accounts  *service.AccountService
	Dashboard *service.DashboardService
	Games     *service.GameCopyService
	Catalog   *service.CatalogService
	Events    *service.EventBoardService
	Lending   *service.LendingService

	CookieDomain string
	// TemplateFS overrides the template source; tests point it at the source tree.
	TemplateFS fs.FS
	IsDev      bool         // Development mode: templates and static files are read from disk.
	Logger     *slog.Logger // Logger for template and HTTP errors (optional)
}

// action is a form endpoint owned by a route; the owner's access rule applies.
type action struct {
	Pattern string
	Owner   string
	Handler http.HandlerFunc
}

// NewRouter creates the HTTP handler serving every route of the table plus
// form actions, static assets and health endpoints.
func NewRouter(services RouterServices) (http.Handler, error) {
	if services.Storage == nil {
		return nil, errors.New("session storage is required")
	}
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	routes := services.Routes
	if routes == nil {
		routes = route.DefaultTable()
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateSource(services),
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create template renderer: %w", err)
	}

	h := &UIHandlers{
		T:         tr,
		Routes:    routes,
		Accounts:  services.Accounts,
		Dashboard: services.Dashboard,
		Games:     services.Games,
		Catalog:   services.Catalog,
		Events:    services.Events,
		Lending:   services.Lending,
		Logger:    logger,

		CookieDomain: services.CookieDomain,
	}

	scoped := SessionScope(SessionScopeConfig{
		Storage:      services.Storage,
		CookieDomain: services.CookieDomain,
		Logger:       logger,
	})
	nav := NavigationConfig{Table: routes, Guard: route.NewGuard(routes), Logger: logger}

	mux := http.NewServeMux()
	if err := registerPages(mux, routes, pageHandlers(h), func(d route.Descriptor, next http.Handler) http.Handler {
		return scoped(Navigate(nav, d)(next))
	}); err != nil {
		return nil, err
	}
	for _, a := range actions(h) {
		d, ok := routes.Lookup(a.Owner)
		if !ok {
			return nil, fmt.Errorf("action %s: unknown owner route %q", a.Pattern, a.Owner)
		}
		mux.Handle(a.Pattern, scoped(Navigate(nav, d)(a.Handler)))
	}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("GET /api/session", scoped(http.HandlerFunc(sessionStatus)))
	mux.Handle("GET /static/", staticHandler(services.IsDev, logger))
	mux.Handle("/", scoped(http.HandlerFunc(h.NotFound)))

	var handler http.Handler = mux
	handler = CSRFProtection(CSRFConfig{CookieDomain: services.CookieDomain})(handler)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler, nil
}

// pageHandlers maps route names to the handlers rendering their views.
func pageHandlers(h *UIHandlers) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		route.Home:          h.Home,
		route.YourGames:     h.YourGames,
		route.EditGame:      h.EditGamePage,
		route.AddGame:       h.AddGamePage,
		route.CreateEvent:   h.CreateEventPage,
		route.RegisterEvent: h.RegisterEventPage,
		route.GameCatalog:   h.GameCatalog,
		route.CreateAccount: h.CreateAccountPage,
		route.Login:         h.LoginPage,
		route.UpdateAccount: h.UpdateAccountPage,
		route.UserSettings:  h.UserSettingsPage,
		route.Secure:        h.Secure,
	}
}

// registerPages registers GET for every descriptor of the table. A descriptor
// without a handler is a configuration error.
func registerPages(
	mux *http.ServeMux,
	routes *route.Table,
	handlers map[string]http.HandlerFunc,
	wrap func(route.Descriptor, http.Handler) http.Handler,
) error {
	for _, d := range routes.Routes() {
		fn, ok := handlers[d.Name]
		if !ok {
			return fmt.Errorf("no handler for route %q", d.Name)
		}
		mux.Handle("GET "+d.MuxPattern(), wrap(d, fn))
	}
	return nil
}

func actions(h *UIHandlers) []action {
	return []action{
		{"POST /login", route.Login, h.Login},
		{"POST /logout", route.Login, h.Logout},
		{"POST /create", route.CreateAccount, h.CreateAccount},
		{"POST /update", route.UpdateAccount, h.UpdateAccount},
		{"POST /userSetting/delete", route.UserSettings, h.DeleteAccount},
		{"POST /your-games/{userId}/delete", route.YourGames, h.DeleteGames},
		{"POST /add-game/{userId}", route.AddGame, h.AddGame},
		{"POST /edit-game/{userId}/{title}", route.EditGame, h.EditGame},
		{"POST /create-event/{userId}", route.CreateEvent, h.CreateEvent},
		{"POST /register-event/join", route.RegisterEvent, h.JoinEvent},
		{"POST /register-event/cancel", route.RegisterEvent, h.CancelEvent},
		{"POST /register-event/sort", route.RegisterEvent, h.SortEvents},
		{"POST /borrow-requests/{requestId}/{decision}", route.Home, h.DecideBorrowRequest},
	}
}

// templateSource picks the template filesystem.
// Dev mode reads from disk for hot reloading; production uses the embedded copy.
func templateSource(services RouterServices) fs.FS {
	if services.TemplateFS != nil {
		return services.TemplateFS
	}
	if services.IsDev {
		return os.DirFS(TemplatePathFromRoot)
	}
	sub, err := fs.Sub(boardgameui.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		return os.DirFS(TemplatePathFromRoot)
	}
	return sub
}

// staticHandler serves /static/* assets.
// In dev mode (isDev=true), serves from disk for hot reloading.
// In production mode (isDev=false), serves from embedded FS.
func staticHandler(isDev bool, logger *slog.Logger) http.Handler {
	if isDev {
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir(StaticPathFromRoot))), false)
	}

	staticSub, err := fs.Sub(boardgameui.StaticFS, StaticPathFromRoot)
	if err != nil {
		logger.Error("failed to create sub-filesystem for static assets", slog.Any("error", err))
		// Fallback to disk serving if embed fails
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir(StaticPathFromRoot))), false)
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))), true)
}

// staticWithCacheHeaders wraps a static file handler to add cache headers.
// Embedded assets only change with a new build; disk assets are never cached.
func staticWithCacheHeaders(handler http.Handler, cacheable bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cacheable {
			w.Header().Set("Cache-Control", "public, max-age=3600")
		} else {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}
		handler.ServeHTTP(w, r)
	})
}
