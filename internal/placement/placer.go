package placement

import (
	"chatwidget/internal/host"
	"chatwidget/internal/infrastructure/logging"
)

// Placer runs the one-shot startup placement against the host
type Placer struct {
	host          host.Host
	windowName    string
	widget        Size
	logger        logging.Logger
	moveSupported bool
}

// NewPlacer creates a placer for the named primary window
func NewPlacer(h host.Host, windowName string, widget Size, logger logging.Logger) *Placer {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Placer{
		host:          h,
		windowName:    windowName,
		widget:        widget,
		logger:        logger,
		moveSupported: MoveSupported,
	}
}

// Place resolves window, then monitor, then computes the position and asks
// the host to move the window. Any missing link skips the move silently.
// It returns the computed position and whether a move was requested.
func (p *Placer) Place() (Position, bool) {
	if p.host == nil {
		return Position{}, false
	}

	win, ok := p.host.Window(p.windowName)
	if !ok {
		p.logger.Debug("Primary window not found, skipping placement", "window", p.windowName)
		return Position{}, false
	}

	monitor, ok, err := win.CurrentMonitor()
	if err != nil {
		p.logger.Debug("Current monitor lookup failed, skipping placement", "window", p.windowName, "error", err)
		return Position{}, false
	}
	if !ok {
		p.logger.Debug("No current monitor, skipping placement", "window", p.windowName)
		return Position{}, false
	}

	screen := Geometry{Width: float64(monitor.Width), Height: float64(monitor.Height)}
	pos := ComputePosition(screen, p.widget)

	p.logger.Info("Widget placement computed",
		"screen_width", monitor.Width,
		"screen_height", monitor.Height,
		"x", pos.X,
		"y", pos.Y)

	if !p.moveSupported {
		return pos, false
	}

	if err := win.SetPosition(pos.X, pos.Y); err != nil {
		p.logger.Debug("Window move failed", "window", p.windowName, "error", err)
	}
	return pos, true
}
