// Package host defines the narrow slice of the host windowing layer the
// application consumes, and its Wails-backed implementation.
package host

// Monitor is a snapshot of a display's size, in the same units
// SetPosition takes on the running platform
type Monitor struct {
	Width   int
	Height  int
	Primary bool
}

// Window is a top-level window owned by the host shell
type Window interface {
	// CurrentMonitor returns the monitor the window is on. ok is false when
	// the host reports no current monitor.
	CurrentMonitor() (monitor Monitor, ok bool, err error)
	// SetPosition moves the window's top-left corner. Units are logical
	// on linux and darwin, physical on windows.
	SetPosition(x, y int) error
	ToggleFullscreen() bool
	IsFullscreen() bool
	Close()
}

// Host resolves windows and delegates shell actions
type Host interface {
	// Window looks up a window by its well-known name
	Window(name string) (Window, bool)
	// OpenURL opens the URL with the system handler
	OpenURL(url string) error
}
