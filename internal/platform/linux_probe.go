//go:build linux

package platform

import (
	"fmt"
	"os"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// X11Probe implements MonitorProbe using XRandR
type X11Probe struct{}

// NewX11Probe creates a new X11 monitor probe
func NewX11Probe() *X11Probe {
	return &X11Probe{}
}

// NewMonitorProbe creates the MonitorProbe for Linux
func NewMonitorProbe() MonitorProbe {
	return NewX11Probe()
}

// MonitorSize opens a short-lived X connection and reads the CRTC layout.
// CRTC sizes are device pixels; GTK positions windows in logical units,
// so the result is divided by GDK_SCALE.
func (p *X11Probe) MonitorSize() (int, int, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		// No X server (Wayland-only session, headless)
		return 0, 0, fmt.Errorf("%w: %v", ErrProbeUnavailable, err)
	}
	defer xu.Conn().Close()

	monitors, err := activeMonitors(xu)
	if err != nil {
		return 0, 0, err
	}

	x, y, havePoint := activeWindowCenter(xu)
	m, ok := pickMonitor(monitors, x, y, havePoint)
	if !ok {
		return 0, 0, fmt.Errorf("no active monitors found")
	}
	width, height := logicalSize(m.Width, m.Height, parseScale(os.Getenv("GDK_SCALE")))
	return width, height, nil
}

func activeMonitors(xu *xgbutil.XUtil) ([]Rect, error) {
	if err := randr.Init(xu.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(xu.Conn(), xu.RootWin()).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var primary randr.Output
	if reply, err := randr.GetOutputPrimary(xu.Conn(), xu.RootWin()).Reply(); err == nil {
		primary = reply.Output
	}

	var monitors []Rect
	for _, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(xu.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		monitors = append(monitors, Rect{
			X:       int(info.X),
			Y:       int(info.Y),
			Width:   int(info.Width),
			Height:  int(info.Height),
			Primary: primary != 0 && hasOutput(info.Outputs, primary),
		})
	}

	return monitors, nil
}

func hasOutput(outputs []randr.Output, want randr.Output) bool {
	for _, o := range outputs {
		if o == want {
			return true
		}
	}
	return false
}

// activeWindowCenter returns the centre of the EWMH active window
func activeWindowCenter(xu *xgbutil.XUtil) (int, int, bool) {
	win, err := ewmh.ActiveWindowGet(xu)
	if err != nil || win == 0 {
		return 0, 0, false
	}

	geom, err := xwindow.New(xu, win).DecorGeometry()
	if err != nil {
		return 0, 0, false
	}

	return geom.X() + geom.Width()/2, geom.Y() + geom.Height()/2, true
}
