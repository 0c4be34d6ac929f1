package app

import (
	"context"
	"errors"
	"time"

	apperrors "chatwidget/internal/infrastructure/errors"
	"chatwidget/internal/infrastructure/logging"
	"chatwidget/internal/placement"
)

// startupStep is one named stage of the startup sequence
type startupStep struct {
	name string
	run  func(ctx context.Context) error
}

// startupSteps lists the startup sequence in execution order
func (a *App) startupSteps() []startupStep {
	return []startupStep{
		{name: "bind-context", run: a.bindContext},
		{name: "resolve-host", run: a.resolveHost},
		{name: "place-window", run: a.placeWindow},
	}
}

// runStartup executes steps in order. A failing step is logged and the
// remaining steps still run; none of them is fatal.
func (a *App) runStartup(ctx context.Context, steps []startupStep) {
	for _, step := range steps {
		start := time.Now()
		op := "startup." + step.name

		if err := step.run(ctx); err != nil {
			var appErr *apperrors.AppError
			if !errors.As(err, &appErr) {
				err = apperrors.New(op, err, apperrors.ClassifyError(err))
			}
			logging.LogError(a.logger, err, op, map[string]interface{}{"step": step.name})
			continue
		}

		logging.LogOperation(a.logger, op, time.Since(start), nil)
	}
}

func (a *App) bindContext(ctx context.Context) error {
	if ctx == nil {
		return apperrors.New("startup.bind-context", errors.New("nil startup context"), apperrors.ErrCodeStartup)
	}
	a.mu.Lock()
	a.ctx = ctx
	a.mu.Unlock()
	return nil
}

// resolveHost builds the host from the context bound in bind-context
func (a *App) resolveHost(context.Context) error {
	if a.newHost == nil {
		return apperrors.New("startup.resolve-host", errors.New("no host factory configured"), apperrors.ErrCodeInternal)
	}

	a.mu.RLock()
	ctx := a.ctx
	a.mu.RUnlock()
	if ctx == nil {
		return apperrors.New("startup.resolve-host", errors.New("no shell context bound"), apperrors.ErrCodeStartup)
	}

	h := a.newHost(ctx)
	if h == nil {
		return apperrors.New("startup.resolve-host", errors.New("host factory returned nil"), apperrors.ErrCodeStartup)
	}

	a.mu.Lock()
	a.host = h
	a.mu.Unlock()
	return nil
}

// placeWindow runs the one-shot widget placement; absence of the window
// or monitor is not an error
func (a *App) placeWindow(context.Context) error {
	h := a.currentHost()
	if h == nil {
		return nil
	}

	pos, moved := placement.NewPlacer(h, a.cfg.Window.Name, placement.DefaultWidgetSize(), a.logger).Place()

	a.mu.Lock()
	a.placement = pos
	a.moved = moved
	a.mu.Unlock()
	return nil
}
