package platform

import (
	"errors"
	"strconv"
	"strings"
)

// ErrProbeUnavailable is returned when the platform has no native monitor query
var ErrProbeUnavailable = errors.New("native monitor probe unavailable")

// MonitorProbe queries the OS for display geometry without going through the shell
type MonitorProbe interface {
	// MonitorSize returns the size of the monitor the window most likely
	// opens on, in the units the shell positions windows with.
	MonitorSize() (width, height int, err error)
}

// Rect is a monitor rectangle in root-window coordinates
type Rect struct {
	X       int
	Y       int
	Width   int
	Height  int
	Primary bool
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// pickMonitor prefers the primary monitor, then the one containing the
// point, then the first. ok is false only when monitors is empty.
// At startup the focused window usually belongs to another application,
// so the point only matters when no output is marked primary.
func pickMonitor(monitors []Rect, x, y int, havePoint bool) (Rect, bool) {
	if len(monitors) == 0 {
		return Rect{}, false
	}
	for _, m := range monitors {
		if m.Primary {
			return m, true
		}
	}
	if havePoint {
		for _, m := range monitors {
			if m.Contains(x, y) {
				return m, true
			}
		}
	}
	return monitors[0], true
}

// parseScale reads an integer window scale such as GDK_SCALE; anything
// missing or below 1 means unscaled
func parseScale(value string) int {
	scale, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || scale < 1 {
		return 1
	}
	return scale
}

// logicalSize converts device pixels to logical units for the given scale
func logicalSize(width, height, scale int) (int, int) {
	if scale < 1 {
		scale = 1
	}
	return width / scale, height / scale
}
