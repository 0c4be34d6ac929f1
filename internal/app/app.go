package app

import (
	"context"
	"sync"

	"chatwidget/internal/config"
	"chatwidget/internal/host"
	"chatwidget/internal/infrastructure/logging"
	"chatwidget/internal/placement"
	"chatwidget/internal/platform"
)

// HostFactory builds the host once the shell hands over its context
type HostFactory func(ctx context.Context) host.Host

// App struct represents the main application and is bound to the front end
type App struct {
	cfg     *config.Config
	logger  logging.Logger
	newHost HostFactory

	mu        sync.RWMutex
	ctx       context.Context
	host      host.Host
	placement placement.Position
	moved     bool
}

// NewApp creates a new App backed by the Wails runtime
func NewApp(cfg *config.Config, logger logging.Logger) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	probe := platform.NewMonitorProbe()
	windowName := cfg.Window.Name

	return NewAppWithHost(cfg, logger, func(ctx context.Context) host.Host {
		return host.NewWailsHost(ctx, windowName, probe, logger)
	})
}

// NewAppWithHost creates an App with a custom host factory
func NewAppWithHost(cfg *config.Config, logger logging.Logger, newHost HostFactory) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &App{
		cfg:     cfg,
		logger:  logger,
		newHost: newHost,
	}
}

// Startup is called at application startup
func (a *App) Startup(ctx context.Context) {
	a.runStartup(ctx, a.startupSteps())
	a.logger.Info("Application started", "environment", a.cfg.Environment)
}

// DomReady is called after front-end resources have been loaded
func (a *App) DomReady(ctx context.Context) {
	a.logger.Debug("Front end ready")
}

// BeforeClose is called when the application is about to quit
func (a *App) BeforeClose(ctx context.Context) (prevent bool) {
	return false
}

// Shutdown is called at application termination
func (a *App) Shutdown(ctx context.Context) {
	a.logger.Info("Application shutdown completed")
	logging.Sync(a.logger)
}

// PlacementResult reports the startup placement to the front end
type PlacementResult struct {
	X     int  `json:"x"`
	Y     int  `json:"y"`
	Moved bool `json:"moved"`
}

// GetPlacement returns the position computed at startup and whether a move was requested
func (a *App) GetPlacement() PlacementResult {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return PlacementResult{X: a.placement.X, Y: a.placement.Y, Moved: a.moved}
}

// GetLogger returns the application's structured logger
func (a *App) GetLogger() logging.Logger {
	return a.logger
}

func (a *App) currentHost() host.Host {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.host
}

// mainWindow resolves the primary window, or nil before startup
func (a *App) mainWindow() host.Window {
	h := a.currentHost()
	if h == nil {
		return nil
	}
	w, ok := h.Window(a.cfg.Window.Name)
	if !ok {
		return nil
	}
	return w
}
