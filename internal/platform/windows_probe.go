//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
)

const (
	smCxScreen = 0
	smCyScreen = 1
)

// WindowsProbe implements MonitorProbe using GetSystemMetrics
type WindowsProbe struct{}

// NewWindowsProbe creates a new Windows monitor probe
func NewWindowsProbe() *WindowsProbe {
	return &WindowsProbe{}
}

// NewMonitorProbe creates the MonitorProbe for Windows
func NewMonitorProbe() MonitorProbe {
	return NewWindowsProbe()
}

// MonitorSize returns the primary display size in pixels
func (w *WindowsProbe) MonitorSize() (int, int, error) {
	if err := procGetSystemMetrics.Find(); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrProbeUnavailable, err)
	}

	cx, _, _ := procGetSystemMetrics.Call(smCxScreen)
	cy, _, _ := procGetSystemMetrics.Call(smCyScreen)

	width, height := int(int32(cx)), int(int32(cy))
	if width == 0 || height == 0 {
		return 0, 0, fmt.Errorf("GetSystemMetrics returned empty screen size")
	}
	return width, height, nil
}
