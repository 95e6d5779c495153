package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boardgamehub/boardgame-ui/config"
)

const shutdownWaitTimeout = 15 * time.Second

// RunConfig groups everything Run needs to serve the application.
type RunConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Storage  Storage
	Logger   *slog.Logger
	// Signals overrides the OS shutdown signals (tests).
	Signals <-chan os.Signal
}

// backgroundService is a long-running task stopped through its context.
type backgroundService struct {
	name  string
	start func(ctx context.Context) error
}

// backgroundServiceHandle tracks a started background service.
type backgroundServiceHandle struct {
	name string
	done <-chan struct{}
}

// Run starts the HTTP server and background services, then blocks until a
// shutdown signal arrives or a service fails.
func Run(ctx context.Context, cfg RunConfig) error {
	if cfg.Config == nil {
		return errors.New("run config missing AppConfig")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	serviceCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	errCh := make(chan error, 2)

	server, err := StartHTTPServer(serviceCtx, &HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Sessions: cfg.Storage.Sessions,
		Logger:   logger,
	}, errCh)
	if err != nil {
		return err
	}

	backgrounds := startBackgroundServices(serviceCtx, logger, errCh, []backgroundService{
		{
			name: "session sweeper",
			start: func(ctx context.Context) error {
				return cfg.Storage.RunSweeper(ctx, cfg.Config.Session)
			},
		},
	})

	quit := cfg.Signals
	if quit == nil {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sig)
		quit = sig
	}

	return waitForShutdown(shutdownConfig{
		ctx:             ctx,
		cancel:          cancel,
		quit:            quit,
		errCh:           errCh,
		httpServer:      server,
		shutdownTimeout: cfg.Config.HTTP.ShutdownTimeout,
		logger:          logger,
		backgrounds:     backgrounds,
	})
}

func startBackgroundServices(
	ctx context.Context,
	logger *slog.Logger,
	errCh chan<- error,
	services []backgroundService,
) []backgroundServiceHandle {
	handles := make([]backgroundServiceHandle, 0, len(services))
	for _, svc := range services {
		done := make(chan struct{})
		go func() {
			defer close(done)
			if err := svc.start(ctx); err != nil {
				errMsg := fmt.Errorf("%s failed: %w", svc.name, err)
				select {
				case errCh <- errMsg:
				case <-ctx.Done():
				default:
					logger.WarnContext(ctx, "dropping background service error", "service", svc.name, "error", errMsg)
				}
			}
		}()
		logger.InfoContext(ctx, "background service started", "service", svc.name)
		handles = append(handles, backgroundServiceHandle{name: svc.name, done: done})
	}
	return handles
}

// shutdownConfig contains dependencies for graceful shutdown.
type shutdownConfig struct {
	ctx             context.Context
	cancel          context.CancelFunc
	quit            <-chan os.Signal
	errCh           <-chan error
	httpServer      *http.Server
	shutdownTimeout time.Duration
	logger          *slog.Logger
	backgrounds     []backgroundServiceHandle
}

// waitForShutdown waits for shutdown signal, parent cancellation or service error.
func waitForShutdown(cfg shutdownConfig) error {
	select {
	case <-cfg.quit:
		cfg.logger.Info("shutting down services...")
		cfg.cancel()
		return gracefulStop(cfg)
	case <-cfg.ctx.Done():
		cfg.logger.Info("context cancelled, shutting down services...")
		cfg.cancel()
		return gracefulStop(cfg)
	case err := <-cfg.errCh:
		cfg.logger.Error("service error", "error", err)
		cfg.cancel()
		if stopErr := gracefulStop(cfg); stopErr != nil {
			cfg.logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
}

// gracefulStop attempts to gracefully stop all services.
func gracefulStop(cfg shutdownConfig) error {
	if cfg.httpServer != nil {
		timeout := cfg.shutdownTimeout
		if timeout <= 0 {
			timeout = shutdownWaitTimeout
		}
		// The parent context may already be cancelled; shutdown gets its own deadline.
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(cfg.ctx), timeout)
		defer cancel()

		if err := ShutdownHTTPServer(ShutdownConfig{
			Context: shutdownCtx,
			Server:  cfg.httpServer,
			Logger:  cfg.logger,
		}); err != nil {
			return err
		}
	}

	for _, svc := range cfg.backgrounds {
		waitForService(svc.done, svc.name, cfg.logger)
	}
	return nil
}

// waitForService waits for a service to finish with timeout.
func waitForService(done <-chan struct{}, name string, logger *slog.Logger) {
	if done == nil {
		return
	}
	select {
	case <-done:
		logger.Info(name + " stopped")
	case <-time.After(shutdownWaitTimeout):
		logger.Warn("timeout waiting for " + name + " to stop")
	}
}
