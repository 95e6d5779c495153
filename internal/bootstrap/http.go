package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"

	"github.com/boardgamehub/boardgame-ui/config"
	httpx "github.com/boardgamehub/boardgame-ui/internal/http"
	"github.com/boardgamehub/boardgame-ui/internal/ports"
)

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Sessions ports.SessionStorage
	// TemplateFS overrides the template source (tests).
	TemplateFS fs.FS
	Logger     *slog.Logger
}

// BuildHTTPHandler wires the router to the application services.
func BuildHTTPHandler(cfg *HTTPServerConfig) (http.Handler, error) {
	if cfg == nil || cfg.Config == nil {
		return nil, errors.New("http server config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return httpx.NewRouter(httpx.RouterServices{
		Storage:      cfg.Sessions,
		Accounts:     cfg.Services.Accounts,
		Dashboard:    cfg.Services.Dashboard,
		Games:        cfg.Services.Games,
		Catalog:      cfg.Services.Catalog,
		Events:       cfg.Services.Events,
		Lending:      cfg.Services.Lending,
		CookieDomain: cfg.Config.HTTP.CookieDomain,
		TemplateFS:   cfg.TemplateFS,
		IsDev:        cfg.Config.IsDev,
		Logger:       logger,
	})
}

// StartHTTPServer creates the handler and starts serving in the background.
// Serve errors other than http.ErrServerClosed are sent to errCh.
func StartHTTPServer(ctx context.Context, cfg *HTTPServerConfig, errCh chan<- error) (*http.Server, error) {
	handler, err := BuildHTTPHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("build http handler: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	httpCfg := cfg.Config.HTTP

	server := &http.Server{
		Addr:         httpCfg.Addr,
		Handler:      handler,
		ReadTimeout:  httpCfg.ReadTimeout,
		WriteTimeout: httpCfg.WriteTimeout,
		IdleTimeout:  httpCfg.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", server.Addr, err)
	}

	go func() {
		logger.Info("starting HTTP server", "addr", ln.Addr().String())
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			select {
			case errCh <- fmt.Errorf("http server: %w", err):
			default:
				logger.Error("HTTP server failed", "error", err)
			}
		}
	}()

	return server, nil
}

// ShutdownConfig contains dependencies for HTTP server shutdown.
type ShutdownConfig struct {
	Context context.Context
	Server  *http.Server
	Logger  *slog.Logger
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(cfg ShutdownConfig) error {
	if cfg.Server == nil {
		return nil
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("shutting down HTTP server")
	}

	if err := cfg.Server.Shutdown(cfg.Context); err != nil {
		return err
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("HTTP server stopped")
	}

	return nil
}
