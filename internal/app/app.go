package app

import (
	"context"
	"time"

	"github.com/bigclaw/claw-portal/internal/common"
	"github.com/bigclaw/claw-portal/internal/config"
	"github.com/bigclaw/claw-portal/internal/dashboard"
	"github.com/bigclaw/claw-portal/internal/feed"
	"github.com/bigclaw/claw-portal/internal/handlers"
	"github.com/bigclaw/claw-portal/internal/mcp"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	Feed      *feed.Client
	Pipeline  *dashboard.Pipeline
	Scheduler *dashboard.Scheduler

	// HTTP handlers
	DashboardHandler *handlers.DashboardHandler
	FragmentHandler  *handlers.FragmentHandler
	StaticHandler    *handlers.StaticHandler
	HealthHandler    *handlers.HealthHandler
	VersionHandler   *handlers.VersionHandler
	StatusHandler    *handlers.StatusHandler
	RefreshHandler   *handlers.RefreshHandler
	MCPHandler       *mcp.Handler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	a.Feed = feed.New(cfg.Feed.BaseURL, time.Duration(cfg.Feed.TimeoutSeconds)*time.Second)

	store := dashboard.NewSnapshotStore()
	a.Pipeline = dashboard.NewPipeline(a.Feed, store, logger, dashboard.Options{
		News:               cfg.Sections.News,
		PortfolioStartDate: cfg.Sections.PortfolioStartDate,
	})

	a.Scheduler = dashboard.NewScheduler(cfg.Refresh, a.Pipeline.Refresh, logger)

	a.initHandlers()

	logger.Info().
		Str("feed_url", cfg.Feed.BaseURL).
		Msg("application initialization complete")

	return a, nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	store := a.Pipeline.Store()

	a.DashboardHandler = handlers.NewDashboardHandler(a.Logger, store)
	a.FragmentHandler = handlers.NewFragmentHandler(a.Logger, store)
	a.StaticHandler = handlers.NewStaticHandler(a.Logger)
	a.HealthHandler = handlers.NewHealthHandler(a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.StatusHandler = handlers.NewStatusHandler(a.Logger, store, a.Scheduler)
	a.RefreshHandler = handlers.NewRefreshHandler(a.Logger, a.Pipeline)
	a.MCPHandler = mcp.NewHandler(a.Feed, a.Pipeline, a.Scheduler, a.Logger)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Bootstrap runs the first full render pass and starts the refresh
// scheduler. The pass runs every section, chart probe included, so the
// page is complete before the server accepts traffic.
func (a *App) Bootstrap(ctx context.Context) {
	a.Pipeline.RunAll(ctx)
	a.Scheduler.Start()
}

// Close stops the scheduler and releases application resources.
func (a *App) Close() error {
	a.Scheduler.Stop()
	return nil
}
