// Package hosttest provides an in-memory host for tests.
package hosttest

import (
	"sync"

	"chatwidget/internal/host"
)

// Move records a SetPosition call
type Move struct {
	X, Y int
}

// FakeWindow is a scripted host.Window
type FakeWindow struct {
	mu sync.Mutex

	Monitor    host.Monitor
	HasMonitor bool
	MonitorErr error
	MoveErr    error

	Moves      []Move
	fullscreen bool
	closed     bool
}

// NewFakeWindow returns a window on a monitor of the given size
func NewFakeWindow(width, height int) *FakeWindow {
	return &FakeWindow{
		Monitor:    host.Monitor{Width: width, Height: height, Primary: true},
		HasMonitor: true,
	}
}

func (w *FakeWindow) CurrentMonitor() (host.Monitor, bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.MonitorErr != nil {
		return host.Monitor{}, false, w.MonitorErr
	}
	return w.Monitor, w.HasMonitor, nil
}

func (w *FakeWindow) SetPosition(x, y int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.Moves = append(w.Moves, Move{X: x, Y: y})
	return w.MoveErr
}

func (w *FakeWindow) ToggleFullscreen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.fullscreen = !w.fullscreen
	return w.fullscreen
}

func (w *FakeWindow) IsFullscreen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fullscreen
}

func (w *FakeWindow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
}

// Closed reports whether Close was called
func (w *FakeWindow) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// MoveCount returns the number of SetPosition calls
func (w *FakeWindow) MoveCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.Moves)
}

// FakeHost is a scripted host.Host
type FakeHost struct {
	mu sync.Mutex

	Windows    map[string]*FakeWindow
	OpenErr    error
	OpenedURLs []string
	Lookups    []string
}

// NewFakeHost returns a host with a single window registered under name
func NewFakeHost(name string, w *FakeWindow) *FakeHost {
	h := &FakeHost{Windows: map[string]*FakeWindow{}}
	if w != nil {
		h.Windows[name] = w
	}
	return h
}

func (h *FakeHost) Window(name string) (host.Window, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Lookups = append(h.Lookups, name)
	w, ok := h.Windows[name]
	if !ok {
		return nil, false
	}
	return w, true
}

func (h *FakeHost) OpenURL(url string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.OpenErr != nil {
		return h.OpenErr
	}
	h.OpenedURLs = append(h.OpenedURLs, url)
	return nil
}

var (
	_ host.Host   = (*FakeHost)(nil)
	_ host.Window = (*FakeWindow)(nil)
)
