package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	apperrors "chatwidget/internal/infrastructure/errors"
	"chatwidget/internal/infrastructure/logging"
	"chatwidget/internal/platform"
)

// WailsHost implements Host on the Wails runtime. Wails v2 has a single
// window, reachable through the context handed to OnStartup.
type WailsHost struct {
	ctx        context.Context
	mainWindow string
	probe      platform.MonitorProbe
	logger     logging.Logger
}

// NewWailsHost creates a host bound to the Wails startup context.
// probe may be nil, in which case a failed screen query means no monitor.
func NewWailsHost(ctx context.Context, mainWindow string, probe platform.MonitorProbe, logger logging.Logger) *WailsHost {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &WailsHost{
		ctx:        ctx,
		mainWindow: mainWindow,
		probe:      probe,
		logger:     logger,
	}
}

// Window returns the main window when name matches its well-known identifier
func (h *WailsHost) Window(name string) (Window, bool) {
	if h.ctx == nil || name != h.mainWindow {
		return nil, false
	}
	return &wailsWindow{host: h}, true
}

// OpenURL opens the URL in the default browser or handler
func (h *WailsHost) OpenURL(url string) error {
	if h.ctx == nil {
		return apperrors.New("host.open_url", errors.New("runtime not started"), apperrors.ErrCodeStartup)
	}
	runtime.BrowserOpenURL(h.ctx, url)
	return nil
}

type wailsWindow struct {
	host *WailsHost
}

// CurrentMonitor asks the shell first; the native probe only answers when
// the shell query itself fails.
func (w *wailsWindow) CurrentMonitor() (Monitor, bool, error) {
	screens, err := runtime.ScreenGetAll(w.host.ctx)
	if err != nil {
		w.host.logger.Debug("Screen query failed, trying native probe", "error", err)
		return w.probeMonitor()
	}

	infos := make([]screenInfo, 0, len(screens))
	for _, s := range screens {
		infos = append(infos, screenInfo{
			current:        s.IsCurrent,
			primary:        s.IsPrimary,
			width:          s.Size.Width,
			height:         s.Size.Height,
			physicalWidth:  s.PhysicalSize.Width,
			physicalHeight: s.PhysicalSize.Height,
		})
	}

	m, ok := currentMonitor(infos, positionInPhysicalUnits)
	return m, ok, nil
}

func (w *wailsWindow) probeMonitor() (Monitor, bool, error) {
	if w.host.probe == nil {
		return Monitor{}, false, nil
	}

	width, height, err := w.host.probe.MonitorSize()
	if errors.Is(err, platform.ErrProbeUnavailable) {
		return Monitor{}, false, nil
	}
	if err != nil {
		return Monitor{}, false, apperrors.New("host.current_monitor",
			fmt.Errorf("native monitor probe: %w", err), apperrors.ErrCodePlatform)
	}
	return Monitor{Width: width, Height: height}, true, nil
}

func (w *wailsWindow) SetPosition(x, y int) error {
	runtime.WindowSetPosition(w.host.ctx, x, y)
	return nil
}

func (w *wailsWindow) ToggleFullscreen() bool {
	if runtime.WindowIsFullscreen(w.host.ctx) {
		runtime.WindowUnfullscreen(w.host.ctx)
		return false
	}
	runtime.WindowFullscreen(w.host.ctx)
	return true
}

func (w *wailsWindow) IsFullscreen() bool {
	return runtime.WindowIsFullscreen(w.host.ctx)
}

func (w *wailsWindow) Close() {
	runtime.Quit(w.host.ctx)
}

// screenInfo mirrors the fields of runtime.Screen we read
type screenInfo struct {
	current        bool
	primary        bool
	width          int
	height         int
	physicalWidth  int
	physicalHeight int
}

// currentMonitor picks the screen flagged current and reports its size in
// the units WindowSetPosition expects. A zero physical size falls back to
// the logical one.
func currentMonitor(screens []screenInfo, physical bool) (Monitor, bool) {
	for _, s := range screens {
		if !s.current {
			continue
		}
		width, height := s.width, s.height
		if physical && s.physicalWidth > 0 && s.physicalHeight > 0 {
			width, height = s.physicalWidth, s.physicalHeight
		}
		return Monitor{Width: width, Height: height, Primary: s.primary}, true
	}
	return Monitor{}, false
}
