package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/boardgamehub/boardgame-ui/config"
	"github.com/boardgamehub/boardgame-ui/internal/adapters/boardgameapi"
	"github.com/boardgamehub/boardgame-ui/internal/core"
	"github.com/boardgamehub/boardgame-ui/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Accounts  *service.AccountService
	Dashboard *service.DashboardService
	Games     *service.GameCopyService
	Catalog   *service.CatalogService
	Events    *service.EventBoardService
	Lending   *service.LendingService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config *config.AppConfig
	// Cache backs the catalog game list; nil disables caching.
	Cache core.CacheRepository
	// HTTPClient overrides the backend transport (tests).
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewServices builds the backend client and every view-model service on top of it.
func NewServices(deps ServiceDeps) (ServiceContainer, error) {
	if deps.Config == nil {
		return ServiceContainer{}, errors.New("service config is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	client, err := boardgameapi.NewClient(boardgameapi.Config{
		BaseURL:        cfg.Backend.APIURL,
		AccountBaseURL: cfg.Backend.AccountAPIURL,
		Timeout:        cfg.Backend.Timeout,
		HTTPClient:     deps.HTTPClient,
		Logger:         logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create boardgame api client: %w", err)
	}

	users := client.Users()
	copies := client.GameCopies()
	events := client.Events()
	registrations := client.Registrations()
	borrows := client.BorrowRequests()
	games := service.NewCachedGameAPI(service.CachedGameAPIOptions{
		Games:  client.Games(),
		Cache:  deps.Cache,
		TTL:    cfg.Cache.TTL,
		Logger: logger,
	})

	return ServiceContainer{
		Accounts: service.NewAccountService(service.AccountServiceOptions{Users: users}),
		Dashboard: service.NewDashboardService(service.DashboardServiceOptions{
			APIs: service.DashboardAPIs{
				Users:          users,
				Registrations:  registrations,
				Events:         events,
				BorrowRequests: borrows,
				GameCopies:     copies,
			},
			Logger: logger,
		}),
		Games: service.NewGameCopyService(service.GameCopyServiceOptions{Copies: copies, Logger: logger}),
		Catalog: service.NewCatalogService(service.CatalogServiceOptions{
			Games:   games,
			Reviews: client.Reviews(),
			Logger:  logger,
		}),
		Events: service.NewEventBoardService(service.EventBoardServiceOptions{
			Events:        events,
			Registrations: registrations,
		}),
		Lending: service.NewLendingService(borrows),
	}, nil
}
